// Package assist holds the offline service-request classifier used for
// service type suggestions.
package assist

import (
	"context"
	"strings"
	"unicode"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	CategoryInstallation = "Instalação"
	CategoryMaintenance  = "Manutenção"
	CategoryRepair       = "Reparo"
	CategoryUpgrade      = "Upgrade"
	CategoryConsulting   = "Consultoria"
	CategoryOther        = "Outro"

	maxNotesLen = 160
)

// Keywords are matched against the accent-folded, lowercased description.
// Earlier categories win ties.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{CategoryRepair, []string{"repar", "conserto", "consertar", "quebr", "defeito", "nao funciona", "parou", "caindo", "falha", "fraco"}},
	{CategoryInstallation, []string{"instala", "montagem", "montar", "implant", "novo ponto", "novas cameras"}},
	{CategoryMaintenance, []string{"manutenc", "preventiva", "limpeza", "lentidao", "revisao", "verificar"}},
	{CategoryUpgrade, []string{"upgrade", "atualiza", "substitui", "trocar", "migra", "expandir", "ampliar"}},
	{CategoryConsulting, []string{"consult", "orienta", "avaliacao", "projeto", "planejamento", "auditoria"}},
}

// KeywordParser classifies requests into one of the fixed categories and
// condenses the first sentence into technical notes.
type KeywordParser struct{}

var _ interfaces.IServiceRequestParser = KeywordParser{}

func (KeywordParser) Parse(_ context.Context, description string) (*entities.ServiceSuggestion, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, nil
	}
	folded := fold(description)

	best, bestHits := CategoryOther, 0
	for _, c := range categoryKeywords {
		hits := 0
		for _, k := range c.keywords {
			hits += strings.Count(folded, k)
		}
		if hits > bestHits {
			best, bestHits = c.category, hits
		}
	}
	return &entities.ServiceSuggestion{ServiceType: best, Notes: notes(description)}, nil
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

func notes(description string) string {
	first := description
	if i := strings.IndexAny(description, ".!?\n"); i > 0 {
		first = description[:i]
	}
	first = strings.TrimSpace(first)
	if r := []rune(first); len(r) > maxNotesLen {
		first = strings.TrimSpace(string(r[:maxNotesLen])) + "..."
	}
	return first
}
