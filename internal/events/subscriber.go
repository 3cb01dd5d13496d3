package events

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/NotKing22/BigData-Project/internal/insights"
	"github.com/NotKing22/BigData-Project/internal/telemetry"
)

const postingsUpdatedSubject = "postings.updated"

var tracer = telemetry.GetTracer("bigdata-project/events")

// Handler listens for scrape-completed notifications and refreshes the
// dataset cache so the dashboard serves fresh data without a restart.
type Handler struct {
	logger  *zap.Logger
	nc      *nats.Conn
	service *insights.Service
	sub     *nats.Subscription
}

func NewHandler(logger *zap.Logger, nc *nats.Conn, service *insights.Service) *Handler {
	return &Handler{
		logger:  logger,
		nc:      nc,
		service: service,
	}
}

func (h *Handler) RegisterSubscriptions(lc fx.Lifecycle) error {
	sub, err := h.nc.QueueSubscribe(postingsUpdatedSubject, "insights-service", h.handlePostingsUpdated)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", postingsUpdatedSubject, err)
	}

	h.sub = sub
	h.logger.Info("Registered NATS subscriptions")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return h.sub.Unsubscribe()
		},
	})

	return nil
}

func (h *Handler) handlePostingsUpdated(msg *nats.Msg) {
	ctx, span := tracer.Start(context.Background(), "handlePostingsUpdated")
	defer span.End()

	if err := h.service.Refresh(ctx); err != nil {
		span.RecordError(err)
		h.logger.Error("Failed to refresh datasets",
			zap.Error(err),
			zap.String("subject", msg.Subject),
		)
		return
	}

	h.logger.Info("Refreshed datasets after postings update",
		zap.String("subject", msg.Subject),
	)
}
