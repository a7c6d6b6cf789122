package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hirepipe/hirepipe/internal/domain"
	"github.com/hirepipe/hirepipe/internal/query"
)

// parseListParams reads the list query string. Unknown or malformed values
// fall through to the query engine's defaults instead of erroring.
func parseListParams(r *http.Request) domain.ListParams {
	q := r.URL.Query()
	p := domain.ListParams{
		Page:      1,
		PageSize:  query.DefaultPageSize,
		Sort:      domain.SortKey(q.Get("sort")),
		Direction: domain.SortDirection(q.Get("direction")),
		Search:    q.Get("search"),
		Archived:  domain.ArchivedFilter(q.Get("archived")),
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 1 {
		p.Page = v
	}
	if v, err := strconv.Atoi(q.Get("pageSize")); err == nil && v >= 1 {
		p.PageSize = v
		if p.PageSize > query.MaxPageSize {
			p.PageSize = query.MaxPageSize
		}
	}
	p.TestNames = splitCSV(q.Get("testNames"))
	for _, s := range splitCSV(q.Get("states")) {
		p.States = append(p.States, domain.TestState(s))
	}
	p.ReviewStatusNames = splitCSV(q.Get("reviewStatusNames"))
	return p
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// GET /api/take-home/responses
func (rt *Router) handleListResponses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rt.responses.List(parseListParams(r)))
}

// GET /api/take-home/responses/{id}
func (rt *Router) handleGetResponse(w http.ResponseWriter, r *http.Request) {
	rec, err := rt.responses.FindByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// PATCH /api/take-home/responses/{id}
// Body: { reviewStatusId?: string|null, archivedAt?: string|null }
func (rt *Router) handleUpdateResponse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var u domain.ResponseUpdate
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, err.Error())
		return
	}
	count, err := rt.responses.Update(id, u)
	if err != nil {
		writeError(w, err)
		return
	}
	if count == 0 {
		writeErrorMsg(w, http.StatusNotFound, "Response not found")
		return
	}
	rec, err := rt.responses.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// PATCH /api/take-home/responses
// Body: { ids: string[], updates: { reviewStatusId?, archivedAt? } }
//
// Applies updateMany without a transaction: a mid-batch failure leaves the
// earlier updates in place, exactly as documented for the data layer.
func (rt *Router) handleBulkUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs     []string        `json:"ids"`
		Updates json.RawMessage `json:"updates"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.IDs) == 0 {
		writeErrorMsg(w, http.StatusBadRequest, "ids must be a non-empty array")
		return
	}
	if len(req.IDs) > maxBulkIDs {
		writeErrorMsg(w, http.StatusBadRequest, "Maximum 100 items per batch")
		return
	}
	var u domain.ResponseUpdate
	if !isJSONObject(req.Updates) || json.Unmarshal(req.Updates, &u) != nil {
		writeErrorMsg(w, http.StatusBadRequest, "updates must be an object")
		return
	}
	count, err := rt.responses.UpdateMany(req.IDs, u)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"updatedCount": count})
}

func isJSONObject(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return strings.HasPrefix(s, "{")
}

// POST /api/update-status
// Body: { responseId: string, reviewStatusId: string|null }
func (rt *Router) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ResponseID     string  `json:"responseId"`
		ReviewStatusID *string `json:"reviewStatusId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ResponseID == "" {
		writeErrorMsg(w, http.StatusBadRequest, "responseId is required")
		return
	}
	u := domain.ResponseUpdate{ReviewStatusID: domain.Field{Set: true, Value: req.ReviewStatusID}}
	count, err := rt.responses.Update(req.ResponseID, u)
	if err != nil {
		writeError(w, err)
		return
	}
	if count == 0 {
		writeErrorMsg(w, http.StatusNotFound, "Response not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "updated": count})
}

// POST /api/bulk-status
// Body: { ids: string[], reviewStatusId: string|null }
//
// Unlike the raw bulk PATCH this endpoint wraps the batch in a transaction,
// so a failure rolls every id back.
func (rt *Router) handleBulkStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs            []string `json:"ids"`
		ReviewStatusID *string  `json:"reviewStatusId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.IDs) == 0 {
		writeErrorMsg(w, http.StatusBadRequest, "ids array is required")
		return
	}
	if len(req.IDs) > maxBulkIDs {
		writeErrorMsg(w, http.StatusBadRequest, "Maximum 100 items per batch")
		return
	}
	count, err := rt.responses.BulkSetStatus(req.IDs, req.ReviewStatusID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "updated": count})
}
