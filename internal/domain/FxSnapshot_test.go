package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFxSnapshot_Rate(t *testing.T) {
	snapshot := &FxSnapshot{
		ID: 77,
		Rates: FxRates{
			"usd_cop": decimal.NewFromInt(4000),
			"eur_usd": decimal.RequireFromString("1.08"),
		},
		FxPercentage: decimal.RequireFromString("0.95"),
	}

	tests := []struct {
		name     string
		from     string
		to       string
		expected string
		wantErr  bool
	}{
		{
			name:     "par cadastrado aplica a margem",
			from:     "USD",
			to:       "COP",
			expected: "3800",
		},
		{
			name:     "moedas iguais convertem a 1 sem margem",
			from:     "USD",
			to:       "usd",
			expected: "1",
		},
		{
			name:     "espaços e caixa são normalizados",
			from:     " eur ",
			to:       "USD",
			expected: "1.026",
		},
		{
			name:    "par ausente é erro",
			from:    "USD",
			to:      "BRL",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := snapshot.Rate(tt.from, tt.to)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(rate),
				"esperado %s, obtido %s", tt.expected, rate)
		})
	}
}
