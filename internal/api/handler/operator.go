package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"relay/pkg/domain"
	"relay/pkg/serrors"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// Operator serves the JWT-protected read/admin API under /v1.
type Operator struct {
	deps Deps
}

// NewOperator constructs the operator handler.
func NewOperator(deps Deps) *Operator {
	return &Operator{deps: deps}
}

// receiptsResponse is a page of receipts.
type receiptsResponse struct {
	Receipts   []domain.Receipt `json:"receipts"`
	NextCursor string           `json:"nextCursor,omitempty"`
}

// queriesResponse is a page of queries.
type queriesResponse struct {
	Queries    []domain.Query `json:"queries"`
	NextCursor string         `json:"nextCursor,omitempty"`
}

// eventsResponse is the recent audit trail.
type eventsResponse struct {
	Events []domain.Event `json:"events"`
}

func pageParams(r *http.Request) (cursor string, limit uint, err error) {
	cursor = r.URL.Query().Get("cursor")

	limit = defaultPageSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, parseErr := strconv.ParseUint(raw, 10, 32)
		if parseErr != nil {
			return "", 0, serrors.Wrap(serrors.ErrBadRequest, parseErr, "invalid limit")
		}
		limit = uint(parsed)
	}
	if limit == 0 || limit > maxPageSize {
		limit = maxPageSize
	}

	return cursor, limit, nil
}

func receiptID(r *http.Request) (domain.ReceiptID, error) {
	raw, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return domain.ReceiptID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid receipt id")
	}

	return domain.ReceiptID(raw), nil
}

// Receipts handles GET /v1/receipts.
func (o *Operator) Receipts(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := pageParams(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	receipts, next, err := o.deps.Relay.Receipts(r.Context(), cursor, limit)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, receiptsResponse{Receipts: receipts, NextCursor: next})
}

// Receipt handles GET /v1/receipts/{id}.
func (o *Operator) Receipt(w http.ResponseWriter, r *http.Request) {
	id, err := receiptID(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	receipt, err := o.deps.Relay.Receipt(r.Context(), id)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, receipt)
}

// Media handles GET /v1/receipts/{id}/media, streaming the decrypted media
// as a download.
func (o *Operator) Media(w http.ResponseWriter, r *http.Request) {
	id, err := receiptID(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	receipt, data, err := o.deps.Relay.OpenMedia(r.Context(), id)
	if err != nil {
		respondError(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+receipt.MediaName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

// DeleteReceipt handles DELETE /v1/receipts/{id}.
func (o *Operator) DeleteReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := receiptID(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	if err := o.deps.Relay.DeleteReceipt(r.Context(), id); err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Queries handles GET /v1/queries.
func (o *Operator) Queries(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := pageParams(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	queries, next, err := o.deps.Relay.Queries(r.Context(), cursor, limit)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, queriesResponse{Queries: queries, NextCursor: next})
}

// Events handles GET /v1/events.
func (o *Operator) Events(w http.ResponseWriter, r *http.Request) {
	_, limit, err := pageParams(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	events, err := o.deps.Relay.Events(r.Context(), limit)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, eventsResponse{Events: events})
}
