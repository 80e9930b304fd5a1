package worker

import (
	"context"
	"encoding/json"

	"hotelier/internal/infra"

	"github.com/rs/zerolog/log"
)

// EmailWorker sends queued confirmation mail through the SMTP mailer.
type EmailWorker struct {
	mailer *infra.Mailer
}

func NewEmailWorker(mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

func (w *EmailWorker) Handle(ctx context.Context, payload json.RawMessage) error {
	var job EmailJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return err
	}
	if err := w.mailer.Send(job.To, job.Subject, job.Body); err != nil {
		return err
	}
	log.Info().Str("to", job.To).Msg("confirmation mail sent")
	return nil
}
