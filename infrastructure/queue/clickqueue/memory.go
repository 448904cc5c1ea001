package clickqueue

import (
	"context"
	"sync"

	"github.com/betenlace/partners-cpa-api/internal/domain"
	"github.com/betenlace/partners-cpa-api/pkg/log"
)

// MemoryQueue é a implementação em canal para execução local e testes,
// quando não há broker disponível.
type MemoryQueue struct {
	tasks chan domain.ClickTask

	closeOnce sync.Once
	wg        sync.WaitGroup
}

func NewMemoryQueue(buffer int) *MemoryQueue {
	if buffer <= 0 {
		buffer = 1024
	}

	return &MemoryQueue{
		tasks: make(chan domain.ClickTask, buffer),
	}
}

// Publish enfileira sem bloquear; com o buffer cheio a tarefa é descartada,
// o clique é métrica de funil e não vale travar o redirect.
func (q *MemoryQueue) Publish(_ context.Context, task domain.ClickTask) error {
	select {
	case q.tasks <- task:
	default:
		log.L.WithField("link_id", task.LinkID).Warn("Fila de cliques cheia, tarefa descartada")
	}
	return nil
}

func (q *MemoryQueue) Start(ctx context.Context, handler Handler) error {
	q.wg.Add(1)
	defer q.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return nil
		case task, ok := <-q.tasks:
			if !ok {
				return nil
			}
			if err := handler(ctx, task); err != nil {
				log.L.WithError(err).WithField("link_id", task.LinkID).Error("Falha ao processar tarefa de clique")
			}
		}
	}
}

func (q *MemoryQueue) Close() error {
	q.closeOnce.Do(func() {
		close(q.tasks)
	})
	q.wg.Wait()
	return nil
}
