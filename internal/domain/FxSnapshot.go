package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FxRates é o mapa de cotações base de um snapshot, chaveado por par em
// minúsculas ("usd_cop"). Persistido como JSONB.
type FxRates map[string]decimal.Decimal

// FxSnapshot é uma fotografia imutável da tabela de câmbio. Lotes de CPA
// referenciam o snapshot usado; nunca é atualizado depois de criado.
type FxSnapshot struct {
	ID           int64           `json:"id"`
	Rates        FxRates         `json:"rates"`
	FxPercentage decimal.Decimal `json:"fx_percentage"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Rate devolve a cotação efetiva de from para to, já com a margem global
// aplicada. Moedas iguais convertem a 1, sem margem.
func (s *FxSnapshot) Rate(from, to string) (decimal.Decimal, error) {
	from = strings.ToLower(strings.TrimSpace(from))
	to = strings.ToLower(strings.TrimSpace(to))

	if from == to {
		return decimal.NewFromInt(1), nil
	}

	base, ok := s.Rates[from+"_"+to]
	if !ok {
		return decimal.Zero, fmt.Errorf("par de câmbio %s_%s ausente no snapshot %d", from, to, s.ID)
	}

	return base.Mul(s.FxPercentage), nil
}
