package nation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bitnation/pangea-core/pkg/apperrors"
	apphttp "github.com/bitnation/pangea-core/pkg/app/http"
	"github.com/bitnation/pangea-core/pkg/db"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service *Service
	logger  *zap.Logger
}

// RegisterRoutes registers nation endpoints on the given chi router
func RegisterRoutes(r chi.Router, service *Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/nations", func(r chi.Router) {
		r.Get("/", apphttp.HandleError(h.all))
		r.Post("/", apphttp.HandleError(h.saveDraft))
		r.Post("/submit", apphttp.HandleError(h.saveAndSubmit))
		r.Get("/{id}", apphttp.HandleError(h.get))
		r.Put("/{id}", apphttp.HandleError(h.updateDraft))
		r.Delete("/{id}", apphttp.HandleError(h.deleteDraft))
		r.Post("/{id}/submit", apphttp.HandleError(h.submitDraft))
		r.Post("/{id}/join", apphttp.HandleError(h.join))
		r.Post("/{id}/leave", apphttp.HandleError(h.leave))
	})
}

func (h *HTTP) all(w http.ResponseWriter, r *http.Request) error {
	nations, err := h.service.All(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, nations)
	return nil
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	n, err := h.service.Get(r.Context(), id)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, n)
	return nil
}

func (h *HTTP) saveDraft(w http.ResponseWriter, r *http.Request) error {
	input, err := decodeDraft(r)
	if err != nil {
		return err
	}
	n, err := h.service.SaveDraft(r.Context(), input)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, n)
	return nil
}

func (h *HTTP) saveAndSubmit(w http.ResponseWriter, r *http.Request) error {
	input, err := decodeDraft(r)
	if err != nil {
		return err
	}
	n, err := h.service.SaveAndSubmit(r.Context(), input)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, n)
	return nil
}

func (h *HTTP) updateDraft(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	input, err := decodeDraft(r)
	if err != nil {
		return err
	}
	n, err := h.service.UpdateDraft(r.Context(), id, input)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, n)
	return nil
}

func (h *HTTP) deleteDraft(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	if err := h.service.DeleteDraft(r.Context(), id); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *HTTP) submitDraft(w http.ResponseWriter, r *http.Request) error {
	return h.mutate(w, r, h.service.SubmitDraft)
}

func (h *HTTP) join(w http.ResponseWriter, r *http.Request) error {
	return h.mutate(w, r, h.service.JoinNation)
}

func (h *HTTP) leave(w http.ResponseWriter, r *http.Request) error {
	return h.mutate(w, r, h.service.LeaveNation)
}

func (h *HTTP) mutate(w http.ResponseWriter, r *http.Request, op func(context.Context, int64) (*db.Nation, error)) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	n, err := op(r.Context(), id)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, n)
	return nil
}

func decodeDraft(r *http.Request) (*DraftInput, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return nil, apperrors.BadRequest(err)
	}
	input := &DraftInput{}
	if err := json.Unmarshal(body, input); err != nil {
		return nil, apperrors.BadRequest(err)
	}
	return input, nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apperrors.BadRequest(fmt.Errorf("invalid nation id: %w", err))
	}
	return id, nil
}
