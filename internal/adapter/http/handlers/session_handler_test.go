package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/adapter/http/handlers/mocks"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/infrastructure/auth"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSessionRouter(t *testing.T) (*gin.Engine, *mocks.MockIAuthUseCase, *mocks.MockTokenIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAuthUseCase(ctrl)
	tokens := mocks.NewMockTokenIssuer(ctrl)

	r := gin.New()
	r.POST("/v1/sessions", NewSessionHandler(uc, tokens).Login)
	users := NewUserHandler(uc)
	r.POST("/v1/users", users.RegisterUser)
	r.GET("/v1/users", users.ListUsers)
	return r, uc, tokens
}

func TestSessionHandler_Login(t *testing.T) {
	t.Run("opens session", func(t *testing.T) {
		r, uc, tokens := newSessionRouter(t)
		admin := entities.User{ID: "user-1", Name: "Administrador do Sistema", Username: "administrador", Status: entities.UserStatusActive}
		expires := time.Date(2024, 7, 1, 20, 0, 0, 0, time.UTC)

		uc.EXPECT().Authenticate(gomock.Any(), "administrador", "112233").Return(admin, nil)
		tokens.EXPECT().Generate(admin).Return(auth.Token{AccessToken: "jwt", TokenType: "Bearer", ExpiresAt: expires}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString(`{"username":"  administrador ","password":"112233"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body response.SessionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.AccessToken != "jwt" || body.User.NomeCompleto != "Administrador do Sistema" || !body.ExpiresAt.Equal(expires) {
			t.Fatalf("unexpected session %+v", body)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"missing credentials", usecase.ErrMissingCredentials, http.StatusBadRequest, "MissingCredentials"},
		{"wrong password", usecase.ErrInvalidCredentials, http.StatusUnauthorized, "InvalidCredentials"},
		{"inactive user", usecase.ErrUserInactive, http.StatusForbidden, "UserInactive"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc, _ := newSessionRouter(t)
			uc.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.User{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString(`{"username":"administrador","password":"x"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if kind := decodeError(t, w)["kind"]; kind != tc.kind {
				t.Fatalf("expected kind %q, got %q", tc.kind, kind)
			}
		})
	}

	t.Run("token signing failure is internal", func(t *testing.T) {
		r, uc, tokens := newSessionRouter(t)
		uc.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.User{ID: "user-1"}, nil)
		tokens.EXPECT().Generate(gomock.Any()).Return(auth.Token{}, errors.New("sign"))

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString(`{"username":"a","password":"b"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestUserHandler(t *testing.T) {
	t.Run("register maps nomeCompleto", func(t *testing.T) {
		r, uc, _ := newSessionRouter(t)
		uc.EXPECT().
			RegisterUser(gomock.Any(), usecase.RegisterUserInput{
				Name:     "Maria Souza",
				Username: "maria",
				Email:    "maria@example.com",
				Role:     "Técnico",
				Password: "segredo",
			}).
			Return(entities.User{ID: "user-2", Name: "Maria Souza", Username: "maria"}, nil)

		body := `{"nomeCompleto":"Maria Souza","username":"maria","email":"maria@example.com","role":"Técnico","password":"segredo"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("segredo")) {
			t.Fatalf("password leaked in response: %s", w.Body.String())
		}
	})

	t.Run("register taken username", func(t *testing.T) {
		r, uc, _ := newSessionRouter(t)
		uc.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(entities.User{}, usecase.ErrUsernameTaken)

		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(`{"username":"administrador"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		r, uc, _ := newSessionRouter(t)
		uc.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Body.String(); got != `{"items":[],"total":0}` {
			t.Fatalf("unexpected body %s", got)
		}
	})
}
