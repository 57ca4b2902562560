package notes

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
)

type Service struct {
	catalog   *Catalog
	validator *Validator
	md        goldmark.Markdown
}

func NewService(catalog *Catalog, validator *Validator) *Service {
	return &Service{
		catalog:   catalog,
		validator: validator,
		md:        goldmark.New(),
	}
}

// Open wires a service over the catalog loaded from seedPath
func Open(seedPath string) (*Service, error) {
	catalog, err := OpenCatalog(seedPath)
	if err != nil {
		return nil, err
	}
	v, err := NewValidator()
	if err != nil {
		return nil, err
	}
	return NewService(catalog, v), nil
}

// Submit validates d and, if it passes, inserts the resulting note
func (s *Service) Submit(d Draft) (Note, error) {
	note, err := s.validator.Validate(d, s.catalog)
	if err != nil {
		return Note{}, err
	}
	return s.catalog.Insert(note), nil
}

// All returns every note, newest submission first
func (s *Service) All() []Note {
	return s.catalog.All()
}

// Search filters the catalog by q
func (s *Service) Search(q SearchQuery) []Note {
	return q.apply(s.catalog.All())
}

// Recent returns the newest limit notes
func (s *Service) Recent(limit int) []Note {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return SearchQuery{Limit: limit}.apply(s.catalog.All())
}

// GetByID retrieves a note by its decimal ID
func (s *Service) GetByID(id string) (Note, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil || n <= 0 {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	note, ok := s.catalog.Lookup(n)
	if !ok {
		return Note{}, ErrNoteNotFound
	}
	return note, nil
}

// Lookup resolves a note id against the catalog
func (s *Service) Lookup(id int64) (Note, bool) {
	return s.catalog.Lookup(id)
}

// Subjects returns every subject with its note count, ordered by first
// appearance in the catalog
func (s *Service) Subjects() []Subject {
	var subjects []Subject
	index := make(map[string]int)
	for _, n := range s.catalog.All() {
		key := strings.ToLower(n.Subject)
		i, ok := index[key]
		if !ok {
			index[key] = len(subjects)
			subjects = append(subjects, Subject{Name: n.Subject})
			i = len(subjects) - 1
		}
		subjects[i].Count++
		if n.ID > subjects[i].Newest {
			subjects[i].Newest = n.ID
		}
	}
	return subjects
}

// Count returns the number of notes, optionally filtered by subject
func (s *Service) Count(subject string) int {
	if subject == "" {
		return s.catalog.Len()
	}
	count := 0
	for _, n := range s.catalog.All() {
		if strings.EqualFold(n.Subject, subject) {
			count++
		}
	}
	return count
}

// RenderMarkdown converts markdown content to HTML
func (s *Service) RenderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(content), &buf); err != nil {
		return content // Return raw content on error
	}
	return buf.String()
}
