package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"deskcalc/internal/auth"
	"deskcalc/internal/models"
	"deskcalc/internal/session"
)

// SessionHandler обслуживает сессии калькуляторов.
type SessionHandler struct {
	mgr *session.Manager
}

func NewSessionHandler(mgr *session.Manager) *SessionHandler {
	return &SessionHandler{mgr: mgr}
}

func sessionResponse(s *session.Session, display, label string) models.SessionResponse {
	return models.SessionResponse{ID: s.ID, Display: display, ClearLabel: label}
}

// Create создаёт новый калькулятор и возвращает его начальный дисплей.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		SendErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	s := h.mgr.Create(userID)
	rs := s.Render()
	SendJSONResponse(w, http.StatusCreated, sessionResponse(s, rs.DisplayText, rs.ClearLabel))
}

// Render возвращает текущий дисплей сессии, не обрабатывая событий.
func (h *SessionHandler) Render(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		SendErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	s, err := h.mgr.Get(chi.URLParam(r, "id"), userID)
	if err != nil {
		SendErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	rs := s.Render()
	SendJSONResponse(w, http.StatusOK, sessionResponse(s, rs.DisplayText, rs.ClearLabel))
}

// PressKey доставляет сессии одну клавишу и возвращает новый дисплей.
func (h *SessionHandler) PressKey(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		SendErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	s, err := h.mgr.Get(chi.URLParam(r, "id"), userID)
	if err != nil {
		SendErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		SendErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var req models.KeyRequest
	if err := json.Unmarshal(body, &req); err != nil {
		SendErrorResponse(w, http.StatusUnprocessableEntity, "Key is not valid")
		return
	}
	if strings.TrimSpace(req.Key) == "" {
		SendErrorResponse(w, http.StatusUnprocessableEntity, "Key is not valid")
		return
	}

	rs, err := s.Apply(req.Key)
	if err != nil {
		SendErrorResponse(w, http.StatusUnprocessableEntity, "Key is not valid")
		return
	}

	SendJSONResponse(w, http.StatusOK, sessionResponse(s, rs.DisplayText, rs.ClearLabel))
}

// Remove закрывает сессию.
func (h *SessionHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		SendErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.mgr.Remove(chi.URLParam(r, "id"), userID); err != nil {
		SendErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
