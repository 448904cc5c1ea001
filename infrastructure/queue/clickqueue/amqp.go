package clickqueue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/betenlace/partners-cpa-api/internal/config"
	"github.com/betenlace/partners-cpa-api/internal/domain"
	"github.com/betenlace/partners-cpa-api/pkg/log"
	jsoniter "github.com/json-iterator/go"
	amqp "github.com/rabbitmq/amqp091-go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	reconnectDelay       = 5 * time.Second
	maxReconnectAttempts = 10
	handleTimeout        = 2 * time.Minute
)

// AMQPQueue publica e consome tarefas de clique numa fila durável.
type AMQPQueue struct {
	cfg config.AMQP

	conn    *amqp.Connection
	channel *amqp.Channel
	mu      sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewAMQPQueue(cfg config.AMQP) (*AMQPQueue, error) {
	ctx, cancel := context.WithCancel(context.Background())

	q := &AMQPQueue{
		cfg:    cfg,
		ctx:    ctx,
		cancel: cancel,
	}

	if err := q.connect(); err != nil {
		cancel()
		return nil, fmt.Errorf("erro ao conectar no broker: %w", err)
	}

	return q, nil
}

func (q *AMQPQueue) connect() error {
	conn, err := amqp.Dial(q.cfg.URL)
	if err != nil {
		return fmt.Errorf("erro ao abrir conexão AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("erro ao abrir canal AMQP: %w", err)
	}

	if _, err := ch.QueueDeclare(
		q.cfg.ClickQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("erro ao declarar a fila: %w", err)
	}

	if err := ch.Qos(q.cfg.PrefetchCount, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("erro ao configurar QoS: %w", err)
	}

	q.mu.Lock()
	q.conn = conn
	q.channel = ch
	q.mu.Unlock()

	log.L.WithField("queue", q.cfg.ClickQueue).Info("Conectado ao broker AMQP")

	go q.monitorConnection()

	return nil
}

func (q *AMQPQueue) monitorConnection() {
	q.mu.RLock()
	conn := q.conn
	q.mu.RUnlock()

	if conn == nil {
		return
	}

	notifyClose := conn.NotifyClose(make(chan *amqp.Error))

	select {
	case err := <-notifyClose:
		if err != nil {
			log.L.WithError(err).Error("Conexão AMQP encerrada inesperadamente")
			q.reconnect()
		}
	case <-q.ctx.Done():
		return
	}
}

func (q *AMQPQueue) reconnect() {
	q.mu.Lock()
	if q.channel != nil {
		q.channel.Close()
		q.channel = nil
	}
	if q.conn != nil {
		q.conn.Close()
		q.conn = nil
	}
	q.mu.Unlock()

	for attempt := 1; attempt <= maxReconnectAttempts; attempt++ {
		log.L.WithField("attempt", attempt).Info("Tentando reconectar ao broker AMQP")

		if err := q.connect(); err == nil {
			log.L.Info("Reconectado ao broker AMQP")
			return
		}

		delay := reconnectDelay * time.Duration(attempt)
		log.L.WithFields(log.Fields{
			"attempt": attempt,
			"delay":   delay.String(),
		}).Warn("Reconexão falhou, aguardando nova tentativa")

		select {
		case <-time.After(delay):
		case <-q.ctx.Done():
			return
		}
	}

	log.L.Error("Máximo de tentativas de reconexão atingido")
}

func (q *AMQPQueue) Publish(ctx context.Context, task domain.ClickTask) error {
	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("erro ao serializar tarefa de clique: %w", err)
	}

	q.mu.RLock()
	channel := q.channel
	q.mu.RUnlock()

	if channel == nil {
		return fmt.Errorf("canal AMQP não inicializado")
	}

	return channel.PublishWithContext(ctx,
		"",               // exchange
		q.cfg.ClickQueue, // routing key
		false,            // mandatory
		false,            // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// Start consome a fila com Workers goroutines até o contexto encerrar.
func (q *AMQPQueue) Start(ctx context.Context, handler Handler) error {
	q.mu.RLock()
	channel := q.channel
	q.mu.RUnlock()

	if channel == nil {
		return fmt.Errorf("canal AMQP não inicializado")
	}

	msgs, err := channel.Consume(
		q.cfg.ClickQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("erro ao iniciar o consumo: %w", err)
	}

	log.L.WithField("workers", q.cfg.Workers).Info("Iniciando workers de clique")

	for i := 0; i < q.cfg.Workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx, msgs, handler, i)
	}

	<-ctx.Done()
	log.L.Info("Encerrando workers de clique")
	q.wg.Wait()

	return nil
}

func (q *AMQPQueue) worker(ctx context.Context, msgs <-chan amqp.Delivery, handler Handler, workerID int) {
	defer q.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return

		case msg, ok := <-msgs:
			if !ok {
				log.L.WithField("worker_id", workerID).Warn("Canal de mensagens fechado")
				return
			}

			q.processMessage(ctx, msg, handler, workerID)
		}
	}
}

func (q *AMQPQueue) processMessage(ctx context.Context, msg amqp.Delivery, handler Handler, workerID int) {
	ctx, cancel := context.WithTimeout(ctx, handleTimeout)
	defer cancel()

	var task domain.ClickTask
	if err := json.Unmarshal(msg.Body, &task); err != nil {
		log.L.WithFields(log.Fields{
			"worker_id": workerID,
			"error":     err,
			"body":      string(msg.Body),
		}).Error("Mensagem malformada, descartando")

		_ = msg.Nack(false, false)
		return
	}

	if task.LinkID == 0 {
		log.L.WithFields(log.Fields{
			"worker_id": workerID,
			"body":      string(msg.Body),
		}).Error("Tarefa sem link_id, descartando")
		_ = msg.Nack(false, false)
		return
	}

	if err := handler(ctx, task); err != nil {
		log.L.WithError(err).WithFields(log.Fields{
			"worker_id": workerID,
			"link_id":   task.LinkID,
		}).Error("Falha ao processar tarefa de clique")
		_ = msg.Nack(false, false)
		return
	}

	_ = msg.Ack(false)
}

func (q *AMQPQueue) Close() error {
	q.cancel()
	q.wg.Wait()

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.channel != nil {
		q.channel.Close()
		q.channel = nil
	}

	if q.conn != nil {
		q.conn.Close()
		q.conn = nil
	}

	return nil
}
