package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"studyshare/internal/notes"
	"studyshare/internal/session"
	"studyshare/views/components"
	"studyshare/views/models"
	"studyshare/views/pages"
)

const sessionCookie = "studyshare_session"

// Handler serves the HTMX web UI. Every request is routed through the
// caller's session controller.
type Handler struct {
	svc      *notes.Service
	sessions *session.Store
	log      *slog.Logger
}

func NewHandler(svc *notes.Service, sessions *session.Store, log *slog.Logger) *Handler {
	return &Handler{svc: svc, sessions: sessions, log: log}
}

// Register mounts the web UI on mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /", h.BrowsePage)
	mux.HandleFunc("GET /share", h.SharePage)
	mux.HandleFunc("POST /share", h.SubmitShare)
	mux.HandleFunc("GET /fragments/notes", h.NotesFragment)
	mux.HandleFunc("POST /select/{id}", h.SelectNote)
	mux.HandleFunc("POST /overlay/dismiss", h.DismissOverlay)
}

// BrowsePage handles GET /
func (h *Handler) BrowsePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	ctrl := h.session(w, r)
	if err := ctrl.Fire(session.BrowseNotes); err != nil {
		h.log.Error("failed to switch to browsing", "error", err)
	}
	if r.URL.Query().Has("q") {
		ctrl.SetQuery(r.URL.Query().Get("q"))
	}
	query := ctrl.Query()

	results := notes.Search(h.svc.All(), query)
	h.render(w, r, http.StatusOK, pages.BrowsePage(query, notesToViews(results), h.detail(ctrl)))
}

// SharePage handles GET /share
func (h *Handler) SharePage(w http.ResponseWriter, r *http.Request) {
	ctrl := h.session(w, r)
	if err := ctrl.Fire(session.ShareNotes); err != nil {
		h.log.Error("failed to switch to authoring", "error", err)
	}

	draft, errs := ctrl.Draft()
	h.render(w, r, http.StatusOK, pages.SharePage(formView(draft, errs)))
}

// SubmitShare handles POST /share
func (h *Handler) SubmitShare(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	ctrl := h.session(w, r)
	if ctrl.State() != session.Authoring {
		if err := ctrl.Fire(session.ShareNotes); err != nil {
			h.log.Error("failed to switch to authoring", "error", err)
		}
	}
	ctrl.SetDraft(notes.Draft{
		Title:       r.PostForm.Get("title"),
		Subject:     r.PostForm.Get("subject"),
		Helper:      r.PostForm.Get("helper"),
		Description: r.PostForm.Get("description"),
		Grade:       notes.Grade(r.PostForm.Get("grade")),
	})

	note, err := ctrl.Submit(h.svc)
	var verr *notes.ValidationError
	if errors.As(err, &verr) {
		draft, _ := ctrl.Draft()
		h.render(w, r, http.StatusUnprocessableEntity, pages.SharePage(formView(draft, verr)))
		return
	}
	if err != nil {
		h.log.Error("failed to share note", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.log.Info("note shared", "id", note.ID, "subject", note.Subject)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// NotesFragment handles GET /fragments/notes (HTMX partial)
func (h *Handler) NotesFragment(w http.ResponseWriter, r *http.Request) {
	ctrl := h.session(w, r)
	query := r.URL.Query().Get("q")
	ctrl.SetQuery(query)

	results := notes.Search(h.svc.All(), query)
	h.render(w, r, http.StatusOK, components.NoteGrid(notesToViews(results), query))
}

// SelectNote handles POST /select/{id} and returns the overlay
func (h *Handler) SelectNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.svc.GetByID(r.PathValue("id"))
	if errors.Is(err, notes.ErrInvalidID) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, notes.ErrNoteNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.log.Error("failed to get note", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	ctrl := h.session(w, r)
	ctrl.Select(note)
	h.render(w, r, http.StatusOK, components.DetailOverlay(h.detail(ctrl)))
}

// DismissOverlay handles POST /overlay/dismiss. The overlay is re-rendered
// when the intent came from inside it.
func (h *Handler) DismissOverlay(w http.ResponseWriter, r *http.Request) {
	ctrl := h.session(w, r)
	ctrl.Dismiss(session.ParseSource(r.URL.Query().Get("source")))
	h.render(w, r, http.StatusOK, components.DetailOverlay(h.detail(ctrl)))
}

// --- Helper methods ---

// session returns the caller's controller, starting a new session and
// setting its cookie when the request carries none
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *session.Controller {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if ctrl, ok := h.sessions.Get(c.Value); ok {
			return ctrl
		}
	}

	id, ctrl := h.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.log.Debug("session started", "session", id)
	return ctrl
}

func (h *Handler) detail(ctrl *session.Controller) *models.DetailView {
	note, ok := ctrl.Selection()
	if !ok {
		return nil
	}
	return &models.DetailView{
		Note:            noteToView(note),
		DescriptionHTML: h.svc.RenderMarkdown(note.Description),
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		h.log.Error("failed to render", "path", r.URL.Path, "error", err)
	}
}
