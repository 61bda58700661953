package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogNotifier only records the email. Used when no broker is configured.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log.With(zap.String("notifier", "log"))}
}

func (n *LogNotifier) Send(ctx context.Context, email Email) error {
	n.log.Info("Email not delivered, no broker configured",
		zap.String("kind", string(email.Kind)),
		zap.String("to", email.To),
		zap.String("subject", email.Subject),
	)
	return nil
}
