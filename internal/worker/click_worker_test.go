package worker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/betenlace/partners-cpa-api/internal/domain"
	"github.com/betenlace/partners-cpa-api/internal/usecases/clicking"
	"github.com/betenlace/partners-cpa-api/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIngester struct {
	calls int
	fn    func(call int) error
}

func (f *fakeIngester) ProcessTask(_ context.Context, _ domain.ClickTask) error {
	f.calls++
	return f.fn(f.calls)
}

func fastRetryConfig() retry.Config {
	return retry.Config{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		Multiplier:     2,
	}
}

func TestClickWorker_handle(t *testing.T) {
	task := domain.ClickTask{LinkID: 10, ClientIP: "200.1.2.3"}

	tests := []struct {
		name          string
		ingester      *fakeIngester
		wantErr       bool
		expectedCalls int
	}{
		{
			name: "Tarefa processada na primeira tentativa",
			ingester: &fakeIngester{fn: func(int) error {
				return nil
			}},
			expectedCalls: 1,
		},
		{
			name: "Falha transitória sucede na retentativa",
			ingester: &fakeIngester{fn: func(call int) error {
				if call == 1 {
					return fmt.Errorf("%w: connection refused", clicking.ErrTransient)
				}
				return nil
			}},
			expectedCalls: 2,
		},
		{
			name: "Erro definitivo descarta sem retentar",
			ingester: &fakeIngester{fn: func(int) error {
				return errors.New("payload inválido")
			}},
			wantErr:       true,
			expectedCalls: 1,
		},
		{
			name: "Transitório persistente esgota as tentativas",
			ingester: &fakeIngester{fn: func(int) error {
				return fmt.Errorf("%w: connection refused", clicking.ErrTransient)
			}},
			wantErr:       true,
			expectedCalls: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			worker := &ClickWorker{
				ingester: tt.ingester,
				retryCfg: fastRetryConfig(),
			}

			err := worker.handle(context.Background(), task)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expectedCalls, tt.ingester.calls)
		})
	}
}
