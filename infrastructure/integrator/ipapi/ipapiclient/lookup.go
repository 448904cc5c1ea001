package ipapiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// LookupResponse espelha o payload da fonte de enriquecimento.
type LookupResponse struct {
	IP      string `json:"ip"`
	RIR     string `json:"rir"`
	IsTor   bool   `json:"is_tor"`
	IsSpam  bool   `json:"is_abuser"`
	IsBogon bool   `json:"is_bogon"`

	Location struct {
		CountryCode string `json:"country_code"`
		Country     string `json:"country"`
		City        string `json:"city"`
	} `json:"location"`

	ASN struct {
		ASN     int64  `json:"asn"`
		Org     string `json:"org"`
		Route   string `json:"route"`
		Created string `json:"created"`
		Updated string `json:"updated"`
		Active  int64  `json:"active"`
	} `json:"asn"`
}

func (c *IPAPIClient) Lookup(ip string) (*LookupResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("erro ao aguardar o limiter: %w", err)
	}

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.IPAPI.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	query := endpoint.Query()
	query.Set("q", ip)
	if c.config.IPAPI.Token != "" {
		query.Set("key", c.config.IPAPI.Token)
	}
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

	var response LookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}
