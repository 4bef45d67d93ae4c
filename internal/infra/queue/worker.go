package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/produtora-site/internal/infra/http/middleware"
	"github.com/xavierca1/produtora-site/internal/logger"
	"github.com/xavierca1/produtora-site/internal/usecase"
)

type consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

// Worker entrega as notificações publicadas pelo formulário. Não há
// retentativa automática: falhas vão para a DLQ.
type Worker struct {
	Channel  consumer
	Notifier usecase.LeadNotifier
	Driver   string
}

func NewWorker(ch *amqp.Channel, notifier usecase.LeadNotifier, driver string) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
		Driver:   driver,
	}
}

// Start consome até o contexto ser cancelado ou o canal fechar.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor RabbitMQ: %w", err)
	}

	log := logger.Component("queue-worker")
	log.Info().Str("queue", queueName).Msg("worker aguardando notificações")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("worker encerrado")
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("canal de consumo fechado")
			}
			w.handle(ctx, d)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	log := logger.Component("queue-worker")

	var n usecase.LeadNotification
	if err := json.Unmarshal(d.Body, &n); err != nil {
		log.Error().Err(err).Msg("JSON inválido; mensagem enviada para a DLQ")
		d.Nack(false, false)
		return
	}

	err := w.Notifier.NotifyLeadCreated(ctx, n)
	middleware.RecordNotification(w.Driver, err)
	if err != nil {
		log.Error().Err(err).Str("lead_id", n.LeadID).Msg("falha ao notificar lead")
		d.Nack(false, false)
		return
	}

	log.Info().Str("lead_id", n.LeadID).Msg("notificação de lead enviada")
	d.Ack(false)
}
