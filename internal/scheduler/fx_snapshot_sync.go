package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/betenlace/partners-cpa-api/infrastructure/integrator/fxrates"
	"github.com/betenlace/partners-cpa-api/infrastructure/repository"
	"github.com/betenlace/partners-cpa-api/internal/config"
	"github.com/betenlace/partners-cpa-api/internal/domain"
	"github.com/go-co-op/gocron"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// FxSnapshotSyncConfig representa a configuração do agendador de snapshots de câmbio
type FxSnapshotSyncConfig struct {
	CronSchedule string
	Pairs        []string
	FxPercentage decimal.Decimal
	SyncEnabled  bool
}

// FxSnapshotSyncService busca as cotações do dia no provedor externo e grava
// um snapshot imutável. Os lotes de CPA do dia seguinte selecionam este
// snapshot; falha na sincronização deixa os lotes caírem no snapshot anterior.
type FxSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              FxSnapshotSyncConfig
	fxService           fxrates.Integrator
	snapshotRepo        repository.FxSnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewFxSnapshotSyncService cria uma nova instância do serviço de sincronização de câmbio
func NewFxSnapshotSyncService(
	fxService fxrates.Integrator,
	snapshotRepo repository.FxSnapshotRepository,
	appConfig *config.Config,
) *FxSnapshotSyncService {
	syncConfig := FxSnapshotSyncConfig{
		CronSchedule: appConfig.FxSnapshotSync.CronSchedule,
		Pairs:        appConfig.FxSnapshotSync.Pairs,
		FxPercentage: decimal.NewFromFloat(appConfig.FxSnapshotSync.FxPercentage),
		SyncEnabled:  appConfig.FxSnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"pairs":         syncConfig.Pairs,
		"fx_percentage": syncConfig.FxPercentage.String(),
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de câmbio carregada")

	return &FxSnapshotSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		fxService:    fxService,
		snapshotRepo: snapshotRepo,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *FxSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots de câmbio desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de câmbio")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSnapshot()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots de câmbio: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de câmbio")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSnapshot busca as cotações configuradas e grava um novo snapshot
func (s *FxSnapshotSyncService) syncSnapshot() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots de câmbio já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithField("pairs", s.config.Pairs).Info("Iniciando sincronização de snapshot de câmbio")

	rates, err := s.fxService.FetchPairs(s.config.Pairs)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar cotações no provedor de câmbio")
		return
	}

	snapshot := &domain.FxSnapshot{
		Rates:        rates,
		FxPercentage: s.config.FxPercentage,
	}

	if err := s.snapshotRepo.Create(snapshot); err != nil {
		logrus.WithError(err).Error("Erro ao gravar snapshot de câmbio")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"pairs":       len(rates),
		"duration":    duration.String(),
	}).Info("Snapshot de câmbio gravado com sucesso")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização de snapshot de câmbio
func (s *FxSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots de câmbio já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshot de câmbio")
	go s.syncSnapshot()
}

// GetStatus retorna o status atual do agendador
func (s *FxSnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_pairs":             s.config.Pairs,
		"fx_percentage":          s.config.FxPercentage.String(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
