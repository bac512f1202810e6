package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bookhaven/catalog-api/internal/core/ports"
)

// AuditSink writes each review activity entry to the structured log. It is
// the default dispatcher sink; mutations themselves are never persisted,
// only their trail is observable.
type AuditSink struct {
	log zerolog.Logger
}

func NewAuditSink(log zerolog.Logger) *AuditSink {
	return &AuditSink{log: log}
}

func (s *AuditSink) Process(_ context.Context, activity ports.ReviewActivity) error {
	s.log.Info().
		Str("isbn", activity.ISBN).
		Str("username", activity.Username).
		Str("action", activity.Action).
		Time("at", activity.At).
		Msg("review activity")
	return nil
}
