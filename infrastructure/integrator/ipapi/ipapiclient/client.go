package ipapiclient

import (
	"net/http"
	"time"

	"github.com/betenlace/partners-cpa-api/internal/config"
	"golang.org/x/time/rate"
)

type Client interface {
	Lookup(ip string) (*LookupResponse, error)
}

type IPAPIClient struct {
	httpClient *http.Client
	config     *config.Config
	limiter    *rate.Limiter
}

// NewClient cria o cliente da fonte de enriquecimento. O limiter protege a
// fonte de rajadas de cliques; o burst acompanha a taxa configurada.
func NewClient(cfg *config.Config) Client {
	perSecond := cfg.IPAPI.RatePerSecond
	if perSecond <= 0 {
		perSecond = 1
	}

	timeout := time.Duration(cfg.IPAPI.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &IPAPIClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config:  cfg,
		limiter: rate.NewLimiter(rate.Limit(perSecond), perSecond),
	}
}
