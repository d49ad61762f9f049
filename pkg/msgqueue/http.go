package msgqueue

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bitnation/pangea-core/pkg/apperrors"
	apphttp "github.com/bitnation/pangea-core/pkg/app/http"
)

const defaultFetchCount = 25

// HTTP wraps the Queue to provide HTTP endpoints
type HTTP struct {
	queue  *Queue
	logger *zap.Logger
}

// RegisterRoutes registers message endpoints on the given chi router
func RegisterRoutes(r chi.Router, queue *Queue, logger *zap.Logger) {
	h := &HTTP{
		queue:  queue,
		logger: logger,
	}

	r.Route("/messages", func(r chi.Router) {
		r.Get("/", apphttp.HandleError(h.fetch))
		r.Delete("/{id}", apphttp.HandleError(h.remove))
	})
}

func (h *HTTP) fetch(w http.ResponseWriter, r *http.Request) error {
	count := defaultFetchCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return apperrors.BadRequest(fmt.Errorf("invalid count %q", raw))
		}
		count = parsed
	}

	messages, err := h.queue.FetchMessages(r.Context(), count)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, messages)
	return nil
}

func (h *HTTP) remove(w http.ResponseWriter, r *http.Request) error {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return apperrors.BadRequest(fmt.Errorf("invalid message id: %w", err))
	}
	if err := h.queue.RemoveJob(r.Context(), id); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
