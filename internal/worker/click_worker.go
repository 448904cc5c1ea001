package worker

import (
	"context"

	"github.com/betenlace/partners-cpa-api/infrastructure/queue/clickqueue"
	"github.com/betenlace/partners-cpa-api/internal/domain"
	"github.com/betenlace/partners-cpa-api/internal/usecases/clicking"
	"github.com/betenlace/partners-cpa-api/pkg/log"
	"github.com/betenlace/partners-cpa-api/pkg/retry"
)

// ClickWorker consome a fila de cliques e entrega cada tarefa ao ingestor,
// com retentativas para falhas transitórias de IO. Erro definitivo descarta a
// tarefa: clique é métrica de funil, não registro contábil.
type ClickWorker struct {
	consumer clickqueue.Consumer
	ingester clicking.Ingester
	retryCfg retry.Config
}

func NewClickWorker(consumer clickqueue.Consumer, ingester clicking.Ingester) *ClickWorker {
	return &ClickWorker{
		consumer: consumer,
		ingester: ingester,
		retryCfg: retry.DefaultConfig(),
	}
}

func (w *ClickWorker) Start(ctx context.Context) error {
	return w.consumer.Start(ctx, w.handle)
}

func (w *ClickWorker) Close() error {
	return w.consumer.Close()
}

func (w *ClickWorker) handle(ctx context.Context, task domain.ClickTask) error {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"link_id":   task.LinkID,
		"client_ip": task.ClientIP,
	})

	err := retry.Do(ctx, w.retryCfg, logger, "click_ingest", clicking.IsTransient, func() error {
		return w.ingester.ProcessTask(ctx, task)
	})
	if err != nil {
		logger.WithError(err).Error("Tarefa de clique descartada")
		return err
	}

	return nil
}
