package clickqueue

import (
	"context"

	"github.com/betenlace/partners-cpa-api/internal/domain"
)

// Handler processa uma tarefa de clique. Erro devolvido descarta a mensagem
// sem refileirar; retentativas de IO transitório acontecem dentro do handler.
type Handler func(ctx context.Context, task domain.ClickTask) error

// Publisher enfileira tarefas de clique do lado da superfície de
// redirecionamento.
type Publisher interface {
	Publish(ctx context.Context, task domain.ClickTask) error
	Close() error
}

// Consumer entrega tarefas ao worker com paralelismo limitado.
type Consumer interface {
	Start(ctx context.Context, handler Handler) error
	Close() error
}
