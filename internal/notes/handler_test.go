package notes

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(t *testing.T) (*http.ServeMux, *Service) {
	t.Helper()
	svc := newTestService(t)
	mux := http.NewServeMux()
	NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(mux)
	return mux, svc
}

func TestHandler_ListNotes(t *testing.T) {
	mux, _ := newTestMux(t)

	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantIDs    []int64
	}{
		{name: "all", url: "/api/notes", wantStatus: http.StatusOK, wantIDs: []int64{1, 2, 3, 4}},
		{name: "query", url: "/api/notes?q=sarah", wantStatus: http.StatusOK, wantIDs: []int64{1}},
		{name: "grade", url: "/api/notes?grade=High+School", wantStatus: http.StatusOK, wantIDs: []int64{2, 3}},
		{name: "paging", url: "/api/notes?limit=1&offset=1", wantStatus: http.StatusOK, wantIDs: []int64{2}},
		{name: "no matches", url: "/api/notes?q=zzz", wantStatus: http.StatusOK, wantIDs: []int64{}},
		{name: "unknown grade", url: "/api/notes?grade=Preschool", wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantIDs == nil {
				return
			}
			var got []Note
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestHandler_GetNote(t *testing.T) {
	mux, _ := newTestMux(t)

	tests := []struct {
		url        string
		wantStatus int
	}{
		{url: "/api/notes/3", wantStatus: http.StatusOK},
		{url: "/api/notes/30", wantStatus: http.StatusNotFound},
		{url: "/api/notes/abc", wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_CreateNote(t *testing.T) {
	mux, svc := newTestMux(t)

	body := `{"title":"Organic Chemistry","subject":"Chemistry","helper":"Alex","description":"","grade":"University"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var created Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, created, svc.All()[0])
}

func TestHandler_CreateNoteValidationFailure(t *testing.T) {
	mux, svc := newTestMux(t)

	body := `{"title":"Organic Chemistry","subject":"Chemistry","helper":"","grade":"University"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(body)))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp struct {
		Error    string            `json:"error"`
		Fields   []string          `json:"fields"`
		Messages map[string]string `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"helper"}, resp.Fields)
	assert.Equal(t, "helper is required", resp.Messages["helper"])
	assert.Equal(t, 4, svc.Count(""))

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ListSubjects(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/subjects", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []Subject
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 4)
	assert.Equal(t, Subject{Name: "Mathematics", Count: 1, Newest: 1}, got[0])
}
