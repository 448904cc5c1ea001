package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/betenlace/partners-cpa-api/infrastructure/database/postgres"
	"github.com/betenlace/partners-cpa-api/infrastructure/integrator/fxrates"
	"github.com/betenlace/partners-cpa-api/infrastructure/integrator/fxrates/fxratesclient"
	"github.com/betenlace/partners-cpa-api/infrastructure/integrator/ipapi"
	"github.com/betenlace/partners-cpa-api/infrastructure/integrator/ipapi/ipapiclient"
	"github.com/betenlace/partners-cpa-api/infrastructure/queue/clickqueue"
	"github.com/betenlace/partners-cpa-api/infrastructure/repository"
	"github.com/betenlace/partners-cpa-api/internal/api"
	"github.com/betenlace/partners-cpa-api/internal/config"
	"github.com/betenlace/partners-cpa-api/internal/scheduler"
	"github.com/betenlace/partners-cpa-api/internal/usecases/authenticating"
	"github.com/betenlace/partners-cpa-api/internal/usecases/clicking"
	"github.com/betenlace/partners-cpa-api/internal/usecases/cpaposting"
	"github.com/betenlace/partners-cpa-api/internal/usecases/linking"
	"github.com/betenlace/partners-cpa-api/internal/usecases/redirecting"
	"github.com/betenlace/partners-cpa-api/internal/worker"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	aliasRepo := repository.NewCampaignAliasRepository(pgConn)
	linkRepo := repository.NewLinkRepository(pgConn)
	partnerRepo := repository.NewPartnerRepository(pgConn)
	partnerLinkRepo := repository.NewPartnerLinkRepository(pgConn)
	betenlaceCPARepo := repository.NewBetenlaceCPARepository()
	betenlaceDailyRepo := repository.NewBetenlaceDailyRepository(pgConn)
	partnerDailyRepo := repository.NewPartnerLinkDailyRepository(pgConn)
	fxSnapshotRepo := repository.NewFxSnapshotRepository(pgConn)
	clickRepo := repository.NewClickTrackingRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	ipapiClient := ipapiclient.NewClient(cfg)
	ipEnricher := ipapi.New(ipapiClient)

	fxClient := fxratesclient.NewClient(cfg)
	fxIntegrator := fxrates.New(fxClient)

	clickQueue := newClickQueue(cfg)
	defer clickQueue.Close()

	cpaService := cpaposting.NewService(
		pgConn,
		linkRepo,
		campaignRepo,
		partnerRepo,
		partnerLinkRepo,
		betenlaceCPARepo,
		betenlaceDailyRepo,
		partnerDailyRepo,
		fxSnapshotRepo,
		cfg,
	)

	clickService := clicking.NewService(
		betenlaceDailyRepo,
		partnerDailyRepo,
		clickRepo,
		partnerLinkRepo,
		campaignRepo,
		partnerRepo,
		ipEnricher,
		cfg,
	)
	linkService := linking.NewService(campaignRepo, linkRepo, partnerRepo, partnerLinkRepo)

	redirectService, err := redirecting.NewService(campaignRepo, aliasRepo, linkRepo, clickQueue, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o serviço de redirecionamento")
	}

	// Worker da fila de cliques
	clickWorker := worker.NewClickWorker(clickQueue, clickService)
	go func() {
		if err := clickWorker.Start(ctx); err != nil {
			logrus.WithError(err).Error("Worker de cliques encerrado com erro")
		}
	}()

	// Agendadores
	fxSyncService := scheduler.NewFxSnapshotSyncService(fxIntegrator, fxSnapshotRepo, cfg)
	clickRetentionService := scheduler.NewClickRetentionService(clickRepo, cfg)

	if err := fxSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de câmbio")
	} else {
		logrus.Info("Agendador de snapshots de câmbio iniciado com sucesso")
	}

	if err := clickRetentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção de cliques")
	} else {
		logrus.Info("Agendador de retenção de cliques iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		cpaService,
		clickService,
		linkService,
		redirectService,
		fxSyncService,
		clickRetentionService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// clickQueue é publisher e consumer ao mesmo tempo
type clickQueueBroker interface {
	clickqueue.Publisher
	clickqueue.Consumer
}

// newClickQueue conecta ao RabbitMQ quando configurado; sem URL, usa a fila
// em memória (perde tarefas no restart, suficiente para desenvolvimento).
func newClickQueue(cfg *config.Config) clickQueueBroker {
	if cfg.AMQP.URL == "" {
		logrus.Warn("AMQP_URL ausente, usando fila de cliques em memória")
		return clickqueue.NewMemoryQueue(0)
	}

	queue, err := clickqueue.NewAMQPQueue(cfg.AMQP)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao RabbitMQ")
	}

	logrus.Info("Conexão com RabbitMQ estabelecida com sucesso")
	return queue
}
