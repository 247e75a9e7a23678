package response

import (
	"encoding/json"
	"fieldservice/internal/domain/entities"
	"strings"
	"testing"
)

func TestList_NilBecomesEmptyArray(t *testing.T) {
	b, err := json.Marshal(List[UserResponse](nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"items":[],"total":0}` {
		t.Fatalf("unexpected body: %s", b)
	}
}

func TestFromUser_OmitsCredentials(t *testing.T) {
	u := entities.User{ID: "u-1", Name: "Administrador", Username: "administrador", Email: "admin@example.com", Role: "Admin", Status: entities.UserStatusActive}
	b, err := json.Marshal(FromUser(u))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(strings.ToLower(string(b)), "password") {
		t.Fatalf("response leaked a password field: %s", b)
	}
	if !strings.Contains(string(b), `"nomeCompleto":"Administrador"`) {
		t.Fatalf("expected nomeCompleto in body: %s", b)
	}
}
