package retry

import (
	"context"
	"math/rand"
	"time"

	"github.com/betenlace/partners-cpa-api/pkg/log"
)

// Config controla a política de retentativas para erros transitórios de IO.
type Config struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64
}

func DefaultConfig() Config {
	return Config{
		MaxAttempts:    5,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     30 * time.Second,
		Multiplier:     2,
	}
}

// Do executa fn até suceder, esgotar as tentativas ou o contexto encerrar.
// retryable decide se o erro vale nova tentativa; erros não transitórios
// retornam imediatamente. O backoff é exponencial com jitter.
func Do(ctx context.Context, cfg Config, logger log.Logger, operation string, retryable func(error) bool, fn func() error) error {
	backoff := cfg.InitialBackoff

	var err error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		if !retryable(err) {
			return err
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		wait := jitter(backoff)
		logger.WithError(err).WithFields(log.Fields{
			"operation": operation,
			"attempt":   attempt,
			"wait":      wait.String(),
		}).Warn("Erro transitório, aguardando nova tentativa")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}

		backoff = time.Duration(float64(backoff) * cfg.Multiplier)
		if backoff > cfg.MaxBackoff {
			backoff = cfg.MaxBackoff
		}
	}

	return err
}

// jitter espalha o backoff entre 50% e 100% do valor nominal.
func jitter(d time.Duration) time.Duration {
	half := d / 2
	return half + time.Duration(rand.Int63n(int64(half)+1))
}
