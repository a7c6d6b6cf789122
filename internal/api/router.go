package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/hirepipe/hirepipe/internal/middleware"
	"github.com/hirepipe/hirepipe/internal/services"
)

// maxBulkIDs caps the id list accepted by bulk endpoints.
const maxBulkIDs = 100

// Router wires the JSON handlers to the services layer. It holds no state
// of its own; everything interesting lives below it.
type Router struct {
	responses *services.ResponseService
	auth      *services.AuthService
	tokens    *mw.TokenAuth
	tenant    string
}

// NewRouter builds the API router for the given services.
func NewRouter(responses *services.ResponseService, auth *services.AuthService, tokens *mw.TokenAuth, tenant string) *Router {
	return &Router{responses: responses, auth: auth, tokens: tokens, tenant: tenant}
}

// Routes returns the /api subtree. Every route sits behind the tenant gate;
// mutations additionally require a reviewer bearer token.
func (rt *Router) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(mw.RequireTenant(rt.tenant))
	r.Use(rt.tokens.WithAuth)

	r.Post("/auth/register", rt.handleRegister)
	r.Post("/auth/login", rt.handleLogin)

	r.Route("/take-home", func(r chi.Router) {
		r.Get("/responses", rt.handleListResponses)
		r.With(mw.RequireAuth).Patch("/responses", rt.handleBulkUpdate)
		r.Get("/responses/{id}", rt.handleGetResponse)
		r.With(mw.RequireAuth).Patch("/responses/{id}", rt.handleUpdateResponse)
		r.Get("/review-statuses", rt.handleListStatuses)
		r.Get("/review-statuses/{id}", rt.handleGetStatus)
		r.Get("/test-names", rt.handleTestNames)
		r.Get("/stats", rt.handleStats)
	})

	r.With(mw.RequireAuth).Post("/update-status", rt.handleUpdateStatus)
	r.With(mw.RequireAuth).Post("/bulk-status", rt.handleBulkStatus)

	return r
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorMsg(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeError maps service error codes onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	if se, ok := services.AsServiceError(err); ok {
		switch se.Code {
		case services.ErrorInvalid:
			writeErrorMsg(w, http.StatusBadRequest, se.Message)
		case services.ErrorNotFound:
			writeErrorMsg(w, http.StatusNotFound, se.Message)
		case services.ErrorUnauthorized:
			writeErrorMsg(w, http.StatusUnauthorized, se.Message)
		case services.ErrorForbidden:
			writeErrorMsg(w, http.StatusForbidden, se.Message)
		case services.ErrorConflict:
			writeErrorMsg(w, http.StatusConflict, se.Message)
		default:
			writeErrorMsg(w, http.StatusInternalServerError, se.Message)
		}
		return
	}
	writeErrorMsg(w, http.StatusInternalServerError, err.Error())
}
