package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/config"
	"github.com/salvadorfernandezm/Evaluacion-Docente/internal/service"
)

const (
	refreshInterval   = 30 * time.Second
	keepAliveInterval = 30 * time.Second
	refreshTimeout    = 5 * time.Second // prevent slow queries from blocking the SSE loop
)

// MonitorHandler streams live submission activity to the admin console
// over SSE. Events come straight from the Redis submission channel;
// periodic refreshes re-read the dashboard counters.
type MonitorHandler struct {
	rdb              *redis.Client
	dashboardService *service.DashboardService
	log              zerolog.Logger
}

func NewMonitorHandler(rdb *redis.Client, dashboardService *service.DashboardService, log zerolog.Logger) *MonitorHandler {
	return &MonitorHandler{
		rdb:              rdb,
		dashboardService: dashboardService,
		log:              log.With().Str("component", "monitor_handler").Logger(),
	}
}

// SubmissionsSSE godoc
// GET /api/v1/admin/monitor
func (h *MonitorHandler) SubmissionsSSE(c *gin.Context) {
	reqCtx := c.Request.Context()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	h.sendSnapshot(c, reqCtx)

	pubsub := h.rdb.Subscribe(reqCtx, config.CacheKey.SubmissionMonitorChannel())
	defer pubsub.Close()

	ch := pubsub.Channel()

	keepAliveTicker := time.NewTicker(keepAliveInterval)
	defer keepAliveTicker.Stop()

	refreshTicker := time.NewTicker(refreshInterval)
	defer refreshTicker.Stop()

	// Refresh counters only when something actually arrived.
	dirty := false

	h.log.Info().Msg("admin attached to submission monitor SSE")

	pingPayload, _ := json.Marshal(map[string]string{"type": "ping"})

	for {
		select {
		case <-reqCtx.Done():
			h.log.Info().Msg("admin disconnected from submission monitor SSE")
			return

		case msg := <-ch:
			// Forward raw JSON directly, no deserialization needed
			c.Writer.Write([]byte("data: "))
			c.Writer.Write([]byte(msg.Payload))
			c.Writer.Write([]byte("\n\n"))
			c.Writer.Flush()
			dirty = true

		case <-refreshTicker.C:
			if !dirty {
				continue
			}
			h.sendSnapshot(c, reqCtx)
			dirty = false

		case <-keepAliveTicker.C:
			c.Writer.Write([]byte("data: "))
			c.Writer.Write(pingPayload)
			c.Writer.Write([]byte("\n\n"))
			c.Writer.Flush()
		}
	}
}

// sendSnapshot writes the current dashboard counters as one SSE event.
func (h *MonitorHandler) sendSnapshot(c *gin.Context, parentCtx context.Context) {
	ctx, cancel := context.WithTimeout(parentCtx, refreshTimeout)
	defer cancel()

	counts, err := h.dashboardService.GetCounts(ctx)
	if err != nil {
		h.log.Warn().Err(err).Msg("failed to fetch dashboard counts for snapshot")
		return
	}

	c.SSEvent("message", map[string]interface{}{
		"type": "snapshot",
		"data": counts,
	})
	c.Writer.Flush()
}
