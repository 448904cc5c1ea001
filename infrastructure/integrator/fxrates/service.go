package fxrates

import (
	"strings"

	"github.com/betenlace/partners-cpa-api/infrastructure/integrator/fxrates/fxratesclient"
	"github.com/betenlace/partners-cpa-api/internal/domain"
	"github.com/pkg/errors"
)

type Integrator interface {
	// FetchPairs busca as cotações base dos pares configurados ("usd_cop")
	// e devolve o mapa pronto para virar snapshot.
	FetchPairs(pairs []string) (domain.FxRates, error)
}

type Service struct {
	Client fxratesclient.Client
}

func New(client fxratesclient.Client) Integrator {
	return &Service{
		Client: client,
	}
}

func (s *Service) FetchPairs(pairs []string) (domain.FxRates, error) {
	symbolsByBase := make(map[string][]string)
	for _, pair := range pairs {
		parts := strings.SplitN(strings.ToLower(strings.TrimSpace(pair)), "_", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, errors.Errorf("par de câmbio inválido: %q", pair)
		}
		symbolsByBase[parts[0]] = append(symbolsByBase[parts[0]], parts[1])
	}

	rates := make(domain.FxRates)
	for base, symbols := range symbolsByBase {
		fetched, err := s.Client.LatestRates(base, symbols)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao buscar cotações com base %s", base)
		}

		for _, symbol := range symbols {
			rate, ok := fetched[symbol]
			if !ok {
				return nil, errors.Errorf("fonte não devolveu a cotação %s_%s", base, symbol)
			}
			rates[base+"_"+symbol] = rate
		}
	}

	return rates, nil
}
