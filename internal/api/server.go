package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/betenlace/partners-cpa-api/internal/api/handler"
	"github.com/betenlace/partners-cpa-api/internal/api/handler/router"
	"github.com/betenlace/partners-cpa-api/internal/config"
	"github.com/betenlace/partners-cpa-api/internal/scheduler"
	"github.com/betenlace/partners-cpa-api/internal/usecases/authenticating"
	"github.com/betenlace/partners-cpa-api/internal/usecases/clicking"
	"github.com/betenlace/partners-cpa-api/internal/usecases/cpaposting"
	"github.com/betenlace/partners-cpa-api/internal/usecases/linking"
	"github.com/betenlace/partners-cpa-api/internal/usecases/redirecting"
	"github.com/betenlace/partners-cpa-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	cpaService cpaposting.Poster,
	clickService clicking.Lister,
	linkService linking.Manager,
	redirectService redirecting.Resolver,
	fxSyncService *scheduler.FxSnapshotSyncService,
	clickRetentionService *scheduler.ClickRetentionService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		FxSnapshotSyncService: fxSyncService,
		ClickRetentionService: clickRetentionService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Cpas(cpaService)...),
		router.WithRoutes(handler.Clicks(clickService)...),
		router.WithRoutes(handler.Links(linkService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
		router.WithNotFound(handler.Redirect(redirectService)),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
