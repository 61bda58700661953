package notify

import (
	"context"
	"fmt"
	"sync"

	"cinema-ebooking/pkg/mq"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AMQPNotifier publishes emails to a durable queue drained by the mail worker.
type AMQPNotifier struct {
	mu    sync.Mutex // amqp channels are not safe for concurrent publish
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
	log   *zap.Logger
}

func NewAMQPNotifier(url, queue string, log *zap.Logger) (*AMQPNotifier, error) {
	conn, err := mq.NewMQConn(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := mq.NewChannel(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := mq.SetupImmediateQueue(ch, queue); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	return &AMQPNotifier{
		conn:  conn,
		ch:    ch,
		queue: queue,
		log:   log.With(zap.String("notifier", "amqp")),
	}, nil
}

func (n *AMQPNotifier) Send(ctx context.Context, email Email) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := mq.PublishJSON(ctx, n.ch, n.queue, email); err != nil {
		return fmt.Errorf("publish %s email: %w", email.Kind, err)
	}

	n.log.Debug("Email queued",
		zap.String("kind", string(email.Kind)),
		zap.String("to", email.To),
	)
	return nil
}

func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.ch.Close(); err != nil {
		n.conn.Close()
		return err
	}
	return n.conn.Close()
}
