package fxratesclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/betenlace/partners-cpa-api/internal/config"
	"github.com/shopspring/decimal"
)

type Client interface {
	LatestRates(base string, symbols []string) (map[string]decimal.Decimal, error)
}

type FxRatesClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &FxRatesClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

type latestRatesResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// LatestRates busca as cotações vigentes de base para cada símbolo.
func (c *FxRatesClient) LatestRates(base string, symbols []string) (map[string]decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.FxSnapshotSync.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	query := endpoint.Query()
	query.Set("app_id", c.config.FxSnapshotSync.SourceToken)
	query.Set("base", strings.ToUpper(base))
	query.Set("symbols", strings.ToUpper(strings.Join(symbols, ",")))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response latestRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	rates := make(map[string]decimal.Decimal, len(response.Rates))
	for symbol, rate := range response.Rates {
		rates[strings.ToLower(symbol)] = rate
	}

	return rates, nil
}
