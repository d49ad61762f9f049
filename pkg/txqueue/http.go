package txqueue

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bitnation/pangea-core/pkg/apperrors"
	apphttp "github.com/bitnation/pangea-core/pkg/app/http"
	"github.com/bitnation/pangea-core/pkg/db"
)

// HTTP wraps the Queue to provide HTTP endpoints
type HTTP struct {
	queue  *Queue
	logger *zap.Logger
}

// TrackRequest asks the queue to watch an already broadcast transaction.
// The wallet UI submits plain ether transfers itself and only hands the
// resulting hash over for receipt tracking.
type TrackRequest struct {
	TxHash string `json:"txHash"`
	Type   string `json:"type"`
}

// RegisterRoutes registers transaction endpoints on the given chi router
func RegisterRoutes(r chi.Router, queue *Queue, logger *zap.Logger) {
	h := &HTTP{
		queue:  queue,
		logger: logger,
	}

	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", apphttp.HandleError(h.pending))
		r.Post("/", apphttp.HandleError(h.track))
	})
}

func (h *HTTP) pending(w http.ResponseWriter, r *http.Request) error {
	apphttp.WriteJSON(w, http.StatusOK, h.queue.Pending())
	return nil
}

func (h *HTTP) track(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.BadRequest(err)
	}
	var req TrackRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequest(err)
	}

	job, err := JobFactory(req.TxHash, db.JobType(req.Type))
	if err != nil {
		return err
	}
	stored, err := h.queue.SaveJob(r.Context(), job)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, stored)
	return nil
}
