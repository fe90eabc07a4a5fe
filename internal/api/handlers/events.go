package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coolbreeze/storefront/internal/api/middleware"
	"github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/events"
	"github.com/coolbreeze/storefront/internal/utils/response"
)

const defaultKeepAlive = 25 * time.Second

type EventHandler struct {
	subscriber events.Subscriber
	keepAlive  time.Duration
	closing    chan struct{}
	closeOnce  sync.Once
}

func NewEventHandler(subscriber events.Subscriber) *EventHandler {
	return &EventHandler{subscriber: subscriber, keepAlive: defaultKeepAlive, closing: make(chan struct{})}
}

// Shutdown ends every open stream. Streams never go idle on their own, so
// register it with http.Server.RegisterOnShutdown.
func (h *EventHandler) Shutdown() {
	h.closeOnce.Do(func() { close(h.closing) })
}

// WithKeepAlive sets the interval between ": ping" comments.
func (h *EventHandler) WithKeepAlive(d time.Duration) *EventHandler {
	h.keepAlive = d

	return h
}

// OrderStream godoc
//
//	@Summary		Live order events
//	@Description	Server-Sent Events stream of order.created, order.status_changed and order.paid events.
//	@Tags			Admin
//	@Produce		text/event-stream
//	@Success		200	{object}	events.OrderEvent
//	@Security		BearerAuth
//	@Router			/admin/orders/stream [get]
func (h *EventHandler) OrderStream() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())
		rc := http.NewResponseController(w)

		stream, err := h.subscriber.Subscribe(r.Context())
		if err != nil {
			logger.Error("Failed to subscribe to order events", slog.String("error", err.Error()))
			response.Error(w, errors.InternalError("Event stream unavailable").WithError(err))

			return
		}

		// Streams outlive the server write timeout.
		_ = rc.SetWriteDeadline(time.Time{})

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")
		w.WriteHeader(http.StatusOK)

		if err := rc.Flush(); err != nil {
			logger.Error("Streaming not supported", slog.String("error", err.Error()))

			return
		}

		logger.Info("Order event stream opened")
		defer logger.Info("Order event stream closed")

		ticker := time.NewTicker(h.keepAlive)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case <-h.closing:
				return
			case <-ticker.C:
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
			case event, ok := <-stream:
				if !ok {
					return
				}

				data, err := json.Marshal(event)
				if err != nil {
					logger.Warn("Failed to encode order event", slog.String("error", err.Error()))

					continue
				}

				if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, data); err != nil {
					return
				}
			}

			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}
