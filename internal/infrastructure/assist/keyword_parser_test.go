package assist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordParser(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name        string
		description string
		wantType    string
		wantNotes   string
	}{
		{
			name:        "installation",
			description: "Cliente solicitou a instalação de 4 câmeras na frente da casa. Acesso pela garagem.",
			wantType:    CategoryInstallation,
			wantNotes:   "Cliente solicitou a instalação de 4 câmeras na frente da casa",
		},
		{
			name:        "repair",
			description: "Sinal de Wi-Fi está muito fraco e caindo toda hora",
			wantType:    CategoryRepair,
			wantNotes:   "Sinal de Wi-Fi está muito fraco e caindo toda hora",
		},
		{
			name:        "maintenance",
			description: "Servidor principal apresentando lentidão, fazer limpeza de logs",
			wantType:    CategoryMaintenance,
		},
		{
			name:        "fallback",
			description: "Reunião com o cliente",
			wantType:    CategoryOther,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := KeywordParser{}.Parse(ctx, tc.description)
			require.NoError(t, err)
			require.NotNil(t, s)
			assert.Equal(t, tc.wantType, s.ServiceType)
			if tc.wantNotes != "" {
				assert.Equal(t, tc.wantNotes, s.Notes)
			}
		})
	}

	t.Run("blank description yields no suggestion", func(t *testing.T) {
		s, err := KeywordParser{}.Parse(ctx, "   ")
		require.NoError(t, err)
		assert.Nil(t, s)
	})
}
