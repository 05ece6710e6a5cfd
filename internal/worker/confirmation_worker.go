package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/config"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/service"
)

// ConfirmationWorker consumes the confirmation email queue and sends one
// receipt per finalized submission. Email is best-effort: a submission is
// never rolled back because its receipt could not be sent.
type ConfirmationWorker struct {
	cfg *config.Config
	rdb *redis.Client
	log zerolog.Logger

	// send is swappable for tests.
	send func(job *service.ConfirmationJob) error
	// retryDelay throttles retries after a send failure.
	retryDelay time.Duration
}

// NewConfirmationWorker creates a new ConfirmationWorker.
func NewConfirmationWorker(cfg *config.Config, rdb *redis.Client, log zerolog.Logger) *ConfirmationWorker {
	w := &ConfirmationWorker{
		cfg: cfg,
		rdb: rdb,
		log: log.With().Str("component", "confirmation_worker").Logger(),
	}
	w.send = w.sendSMTP
	w.retryDelay = 5 * time.Second
	return w
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *ConfirmationWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			// Drain remaining items before exit.
			w.drain(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *ConfirmationWorker) processNext(ctx context.Context) {
	// BLPop blocks until an item is available or timeout (1 second).
	result, err := w.rdb.BLPop(ctx, time.Second, config.CacheKey.ConfirmationQueueKey()).Result()
	if err != nil {
		if err != redis.Nil && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}

	if len(result) < 2 {
		return
	}

	if err := w.handle(result[1]); err != nil {
		w.log.Error().Err(err).Msg("Send error, requeueing")
		// Push back to queue for retry.
		w.rdb.RPush(ctx, config.CacheKey.ConfirmationQueueKey(), result[1])
		time.Sleep(w.retryDelay)
	}
}

func (w *ConfirmationWorker) handle(raw string) error {
	var job service.ConfirmationJob
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		// A malformed job can never succeed; drop it.
		w.log.Error().Err(err).Msg("Unmarshal error, dropping job")
		return nil
	}

	if w.cfg.SMTPHost == "" {
		w.log.Info().Str("email", job.Email).Msg("SMTP disabled, dropping confirmation")
		return nil
	}

	if err := w.send(&job); err != nil {
		return err
	}

	w.log.Info().Str("email", job.Email).Msg("confirmation sent")
	return nil
}

func (w *ConfirmationWorker) sendSMTP(job *service.ConfirmationJob) error {
	addr := w.cfg.SMTPHost + ":" + w.cfg.SMTPPort

	var auth smtp.Auth
	if w.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", w.cfg.SMTPUser, w.cfg.SMTPPass, w.cfg.SMTPHost)
	}

	body := fmt.Sprintf(
		"Hola %s:\r\n\r\n"+
			"Recibimos tu evaluación docente del período %s (%s).\r\n"+
			"Se registraron %d evaluaciones.\r\n\r\n"+
			"Gracias por tu participación.\r\n",
		job.FirstName, job.PeriodName, job.ProgramName, job.Count,
	)

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Confirmación de evaluación docente\r\n"+
			"MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		w.cfg.SMTPFrom, job.Email, body,
	)

	return smtp.SendMail(addr, auth, w.cfg.SMTPFrom, []string{job.Email}, []byte(msg))
}

// drain processes all remaining items in the queue before shutdown.
func (w *ConfirmationWorker) drain(ctx context.Context) {
	drained := 0
	for {
		result, err := w.rdb.LPop(ctx, config.CacheKey.ConfirmationQueueKey()).Result()
		if err != nil {
			break
		}
		if err := w.handle(result); err != nil {
			w.log.Error().Err(err).Msg("Drain send error")
			w.rdb.RPush(ctx, config.CacheKey.ConfirmationQueueKey(), result)
			break
		}
		drained++
	}

	if drained > 0 {
		w.log.Info().Int("count", drained).Msg("Drained remaining items")
	}
}
