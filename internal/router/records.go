package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (r *router) statusHandler(w http.ResponseWriter, req *http.Request) {
	summary, err := r.ledger.Status(req.Context())
	if err != nil {
		r.fail(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatusResponse(summary, r.currency))
}

func (r *router) listHandler(w http.ResponseWriter, req *http.Request) {
	records, err := r.ledger.ListAll(req.Context(), tableFrom(req.Context()))
	if err != nil {
		r.fail(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordDTOs(records))
}

func (r *router) createHandler(w http.ResponseWriter, req *http.Request) {
	table := tableFrom(req.Context())

	var body createRecordRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	record, err := r.ledger.Add(req.Context(), table, body.Name, body.Category, string(body.Amount))
	if err != nil {
		r.fail(w, req, err)
		return
	}

	writeJSON(w, http.StatusCreated, recordDTO(record))
}

func (r *router) deleteHandler(w http.ResponseWriter, req *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid id %q", chi.URLParam(req, "id")))
		return
	}

	deleted, err := r.ledger.DeleteByID(req.Context(), tableFrom(req.Context()), id)
	if err != nil {
		r.fail(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{Deleted: deleted})
}

func (r *router) clearHandler(w http.ResponseWriter, req *http.Request) {
	cleared, err := r.ledger.Clear(req.Context(), tableFrom(req.Context()))
	if err != nil {
		r.fail(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, clearResponse{Cleared: cleared})
}

func (r *router) totalHandler(w http.ResponseWriter, req *http.Request) {
	table := tableFrom(req.Context())

	total, err := r.ledger.Total(req.Context(), table)
	if err != nil {
		r.fail(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, formatTotal(table, total, r.currency))
}
