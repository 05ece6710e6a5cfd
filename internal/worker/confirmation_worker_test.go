package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/config"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T) (*ConfirmationWorker, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := &config.Config{SMTPHost: "smtp.test", SMTPPort: "587", SMTPFrom: "noreply@test"}
	w := NewConfirmationWorker(cfg, rdb, zerolog.Nop())
	w.retryDelay = 0
	return w, rdb
}

func enqueueJob(t *testing.T, rdb *redis.Client, job service.ConfirmationJob) {
	t.Helper()
	data, err := json.Marshal(job)
	require.NoError(t, err)
	require.NoError(t, rdb.RPush(context.Background(), config.CacheKey.ConfirmationQueueKey(), data).Err())
}

func TestWorkerSendsQueuedJob(t *testing.T) {
	ctx := context.Background()
	w, rdb := newTestWorker(t)

	var sent []service.ConfirmationJob
	w.send = func(job *service.ConfirmationJob) error {
		sent = append(sent, *job)
		return nil
	}

	enqueueJob(t, rdb, service.ConfirmationJob{
		Email:       "maria@example.com",
		FirstName:   "María",
		ProgramName: "Psicoterapia",
		PeriodName:  "2026-A",
		Count:       3,
		SubmittedAt: time.Now(),
	})

	w.processNext(ctx)

	require.Len(t, sent, 1)
	assert.Equal(t, "maria@example.com", sent[0].Email)
	assert.Equal(t, 3, sent[0].Count)

	n, err := rdb.LLen(ctx, config.CacheKey.ConfirmationQueueKey()).Result()
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestWorkerRequeuesOnSendFailure(t *testing.T) {
	ctx := context.Background()
	w, rdb := newTestWorker(t)

	w.send = func(job *service.ConfirmationJob) error {
		return errors.New("smtp down")
	}

	enqueueJob(t, rdb, service.ConfirmationJob{Email: "maria@example.com"})

	w.processNext(ctx)

	n, err := rdb.LLen(ctx, config.CacheKey.ConfirmationQueueKey()).Result()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestWorkerDropsMalformedJob(t *testing.T) {
	ctx := context.Background()
	w, rdb := newTestWorker(t)

	called := false
	w.send = func(job *service.ConfirmationJob) error {
		called = true
		return nil
	}

	require.NoError(t, rdb.RPush(ctx, config.CacheKey.ConfirmationQueueKey(), "{not json").Err())

	w.processNext(ctx)

	assert.False(t, called)
	n, err := rdb.LLen(ctx, config.CacheKey.ConfirmationQueueKey()).Result()
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestWorkerDrain(t *testing.T) {
	ctx := context.Background()
	w, rdb := newTestWorker(t)

	var sent int
	w.send = func(job *service.ConfirmationJob) error {
		sent++
		return nil
	}

	enqueueJob(t, rdb, service.ConfirmationJob{Email: "a@example.com"})
	enqueueJob(t, rdb, service.ConfirmationJob{Email: "b@example.com"})

	w.drain(ctx)

	assert.Equal(t, 2, sent)
	n, err := rdb.LLen(ctx, config.CacheKey.ConfirmationQueueKey()).Result()
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}
