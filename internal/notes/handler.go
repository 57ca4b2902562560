package notes

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
)

type Handler struct {
	svc *Service
	log *slog.Logger
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register mounts the REST API on mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/notes", h.CreateNote)
	mux.HandleFunc("GET /api/notes", h.ListNotes)
	mux.HandleFunc("GET /api/notes/{id}", h.GetNote)
	mux.HandleFunc("GET /api/subjects", h.ListSubjects)
}

// CreateNote handles POST /api/notes
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var draft Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	note, err := h.svc.Submit(draft)
	var verr *ValidationError
	if errors.As(err, &verr) {
		h.jsonResponse(w, map[string]any{
			"error":    verr.Error(),
			"fields":   verr.Fields,
			"messages": verr.Messages,
		}, http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		h.log.Error("failed to create note", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.log.Info("note shared", "id", note.ID, "subject", note.Subject)
	h.jsonResponse(w, note, http.StatusCreated)
}

// GetNote handles GET /api/notes/{id}
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.svc.GetByID(r.PathValue("id"))
	if errors.Is(err, ErrInvalidID) {
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, ErrNoteNotFound) {
		h.jsonError(w, "note not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error("failed to get note", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.jsonResponse(w, note, http.StatusOK)
}

// ListNotes handles GET /api/notes
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	q := SearchQuery{
		Query:   r.URL.Query().Get("q"),
		Subject: r.URL.Query().Get("subject"),
		Grade:   Grade(r.URL.Query().Get("grade")),
		Limit:   h.parseInt(r.URL.Query().Get("limit"), defaultLimit),
		Offset:  h.parseInt(r.URL.Query().Get("offset"), 0),
	}
	if q.Grade != "" && !q.Grade.Valid() {
		h.jsonError(w, "unknown grade", http.StatusBadRequest)
		return
	}

	h.jsonResponse(w, h.svc.Search(q), http.StatusOK)
}

// ListSubjects handles GET /api/subjects
func (h *Handler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects := h.svc.Subjects()
	if subjects == nil {
		subjects = []Subject{}
	}
	h.jsonResponse(w, subjects, http.StatusOK)
}

// --- Helper methods ---

func (h *Handler) jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) jsonError(w http.ResponseWriter, message string, status int) {
	h.jsonResponse(w, map[string]string{"error": message}, status)
}

func (h *Handler) parseInt(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
