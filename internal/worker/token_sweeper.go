package worker

import (
	"context"
	"time"

	"hotelier/internal/repository"

	"github.com/rs/zerolog/log"
)

// StartTokenSweeper periodically marks active tokens past their expiry as
// expired in the store. Validation also checks expiry on every request, so
// the sweeper only keeps the table honest; a missed tick never extends a
// session.
func StartTokenSweeper(ctx context.Context, tokens repository.TokenRepository, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("token sweeper shutting down")
				return
			case <-ticker.C:
				n, err := tokens.ExpireStale(ctx)
				if err != nil {
					log.Error().Err(err).Msg("token sweep failed")
					continue
				}
				if n > 0 {
					log.Info().Int64("expired", n).Msg("token sweep")
				}
			}
		}
	}()
}
