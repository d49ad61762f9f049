package nation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bitnation/pangea-core/pkg/db"
)

func newTestRouter(store Store, chain ChainClient, txq TransactionQueue) chi.Router {
	r := chi.NewRouter()
	RegisterRoutes(r, newTestService(store, chain, txq), zap.NewNop())
	return r
}

func TestHTTP_SaveDraft(t *testing.T) {
	store := &MockStore{
		CreateNationFunc: func(ctx context.Context, n *db.Nation) error {
			n.ID = 1
			return nil
		},
	}
	router := newTestRouter(store, &MockChain{}, &MockTxQueue{})

	body := `{"nationName":"Atlantis","nationDescription":"an underwater nation"}`
	req := httptest.NewRequest(http.MethodPost, "/nations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var n db.Nation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
	require.Equal(t, int64(1), n.ID)
	require.Equal(t, int64(-1), n.IDInSmartContract)
	require.Equal(t, "Atlantis", n.NationName)
}

func TestHTTP_SaveDraftValidation(t *testing.T) {
	router := newTestRouter(&MockStore{}, &MockChain{}, &MockTxQueue{})

	req := httptest.NewRequest(http.MethodPost, "/nations", strings.NewReader(`{"nationName":""}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "nation.draft.saved_failed", resp["transKey"])
}

func TestHTTP_GetNation(t *testing.T) {
	store := &MockStore{
		NationByIDFunc: func(ctx context.Context, id int64) (*db.Nation, error) {
			if id == 7 {
				return &db.Nation{ID: 7, IDInSmartContract: -1, NationName: "Atlantis"}, nil
			}
			return nil, nil
		},
	}
	router := newTestRouter(store, &MockChain{}, &MockTxQueue{})

	req := httptest.NewRequest(http.MethodGet, "/nations/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/nations/42", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "system_error.nation.does_not_exist", resp["transKey"])
}

func TestHTTP_SubmitDraftConflicts(t *testing.T) {
	store := &MockStore{
		NationByIDFunc: func(ctx context.Context, id int64) (*db.Nation, error) {
			return &db.Nation{ID: 1, IDInSmartContract: 9, StateMutateAllowed: true}, nil
		},
	}
	router := newTestRouter(store, &MockChain{}, &MockTxQueue{})

	req := httptest.NewRequest(http.MethodPost, "/nations/1/submit", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestHTTP_JoinNation(t *testing.T) {
	store := &MockStore{
		NationByIDFunc: func(ctx context.Context, id int64) (*db.Nation, error) {
			return &db.Nation{ID: 1, IDInSmartContract: 9, Created: true, StateMutateAllowed: true}, nil
		},
	}
	chain := &MockChain{
		JoinNationFunc: func(ctx context.Context, contractID int64) (string, error) {
			return testHash(0x01), nil
		},
	}
	txq := &MockTxQueue{}
	router := newTestRouter(store, chain, txq)

	req := httptest.NewRequest(http.MethodPost, "/nations/1/join", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, txq.Saved, 1)
	require.Equal(t, db.JobTypeNationJoin, txq.Saved[0].Type)
}

func TestHTTP_BadID(t *testing.T) {
	router := newTestRouter(&MockStore{}, &MockChain{}, &MockTxQueue{})

	req := httptest.NewRequest(http.MethodGet, "/nations/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
