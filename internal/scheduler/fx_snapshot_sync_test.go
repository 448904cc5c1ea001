package scheduler

import (
	"testing"

	fxmocks "github.com/betenlace/partners-cpa-api/infrastructure/integrator/fxrates/mocks"
	"github.com/betenlace/partners-cpa-api/infrastructure/repository/mocks"
	"github.com/betenlace/partners-cpa-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestFxSnapshotSyncService_syncSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFxService := fxmocks.NewMockIntegrator(ctrl)
	mockSnapshotRepo := mocks.NewMockFxSnapshotRepository(ctrl)

	service := &FxSnapshotSyncService{
		config: FxSnapshotSyncConfig{
			Pairs:        []string{"usd_cop", "eur_cop"},
			FxPercentage: decimal.RequireFromString("0.95"),
			SyncEnabled:  true,
		},
		fxService:    mockFxService,
		snapshotRepo: mockSnapshotRepo,
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T)
	}{
		{
			name: "Cotações buscadas geram um novo snapshot com a margem configurada",
			setup: func() {
				rates := domain.FxRates{
					"usd_cop": decimal.NewFromInt(4000),
					"eur_cop": decimal.NewFromInt(4300),
				}

				mockFxService.EXPECT().
					FetchPairs([]string{"usd_cop", "eur_cop"}).
					Return(rates, nil)

				mockSnapshotRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(snapshot *domain.FxSnapshot) error {
						assert.Len(t, snapshot.Rates, 2)
						assert.True(t, decimal.RequireFromString("0.95").Equal(snapshot.FxPercentage))
						snapshot.ID = 77
						return nil
					})
			},
			validate: func(t *testing.T) {
				assert.False(t, service.lastSyncCompletedAt.IsZero())
			},
		},
		{
			name: "Falha no provedor não grava snapshot",
			setup: func() {
				mockFxService.EXPECT().
					FetchPairs([]string{"usd_cop", "eur_cop"}).
					Return(nil, assert.AnError)
				// Nenhum Create esperado: o lote seguinte usa o snapshot anterior.
			},
			validate: func(t *testing.T) {
				assert.False(t, service.lastSyncStartedAt.IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service.syncSnapshot()

			if tt.validate != nil {
				tt.validate(t)
			}
		})
	}
}

func TestClickRetentionService_purgeOldClicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClickRepo := mocks.NewMockClickTrackingRepository(ctrl)

	service := &ClickRetentionService{
		config: ClickRetentionConfig{
			RetentionDays: 90,
			Enabled:       true,
		},
		clickRepo: mockClickRepo,
	}

	mockClickRepo.EXPECT().DeleteOlderThan(90).Return(int64(1234), nil)

	service.purgeOldClicks()

	assert.Equal(t, int64(1234), service.lastRunDeleted)
	assert.False(t, service.lastRunCompletedAt.IsZero())

	status := service.GetStatus()
	assert.Equal(t, int64(1234), status["last_run_deleted"])
	assert.Equal(t, 90, status["retention_days"])
}
