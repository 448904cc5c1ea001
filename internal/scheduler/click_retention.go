package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/betenlace/partners-cpa-api/infrastructure/repository"
	"github.com/betenlace/partners-cpa-api/internal/config"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// ClickRetentionConfig representa a configuração do agendador de retenção de cliques
type ClickRetentionConfig struct {
	CronSchedule  string
	RetentionDays int
	Enabled       bool
}

// ClickRetentionService apaga fingerprints de clique mais antigas que a
// janela de retenção. Os contadores diários agregados não são tocados.
type ClickRetentionService struct {
	scheduler          *gocron.Scheduler
	config             ClickRetentionConfig
	clickRepo          repository.ClickTrackingRepository
	runRunning         bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunDeleted     int64
}

// NewClickRetentionService cria uma nova instância do serviço de retenção de cliques
func NewClickRetentionService(
	clickRepo repository.ClickTrackingRepository,
	appConfig *config.Config,
) *ClickRetentionService {
	retentionConfig := ClickRetentionConfig{
		CronSchedule:  appConfig.ClickRetention.CronSchedule,
		RetentionDays: appConfig.ClickRetention.RetentionDays,
		Enabled:       appConfig.ClickRetention.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.RetentionDays,
		"enabled":        retentionConfig.Enabled,
	}).Info("Configuração do agendador de retenção de cliques carregada")

	return &ClickRetentionService{
		scheduler:  scheduler,
		config:     retentionConfig,
		clickRepo:  clickRepo,
		runRunning: false,
	}
}

// Start inicia o agendador
func (s *ClickRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Retenção de cliques desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retenção de cliques")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.purgeOldClicks()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retenção de cliques: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção de cliques")
		s.scheduler.Stop()
	}()

	return nil
}

// purgeOldClicks remove as fingerprints fora da janela de retenção
func (s *ClickRetentionService) purgeOldClicks() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Retenção de cliques já em andamento, ignorando")
		return
	}
	s.runRunning = true
	s.runMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.runMutex.Unlock()
	}()

	logrus.WithField("retention_days", s.config.RetentionDays).Info("Iniciando expurgo de fingerprints de clique")

	deleted, err := s.clickRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao expurgar fingerprints de clique")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"deleted":  deleted,
		"duration": duration.String(),
	}).Info("Expurgo de fingerprints de clique concluído")

	s.lastRunDeleted = deleted
	s.lastRunCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente um expurgo de fingerprints
func (s *ClickRetentionService) TriggerManualSync() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Retenção de cliques já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando expurgo manual de fingerprints de clique")
	go s.purgeOldClicks()
}

// GetStatus retorna o status atual do agendador
func (s *ClickRetentionService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"retention_days":        s.config.RetentionDays,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_run_deleted":      s.lastRunDeleted,
	}
}
