package notes

import "strings"

// Matches reports whether query is a case-insensitive substring of the
// note's title, subject or helper. An empty query matches every note.
func Matches(n Note, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Subject), q) ||
		strings.Contains(strings.ToLower(n.Helper), q)
}

// Search returns, in their original order, the notes that match query
func Search(notes []Note, query string) []Note {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if Matches(n, query) {
			out = append(out, n)
		}
	}
	return out
}

// apply runs the full query: predicate, optional filters, then paging
func (q SearchQuery) apply(notes []Note) []Note {
	// API callers get a trimmed query, so " " matches everything here
	// while Search treats it as a literal substring.
	matched := Search(notes, strings.TrimSpace(q.Query))

	filtered := matched[:0]
	for _, n := range matched {
		if q.Subject != "" && !strings.EqualFold(n.Subject, strings.TrimSpace(q.Subject)) {
			continue
		}
		if q.Grade != "" && n.Grade != q.Grade {
			continue
		}
		filtered = append(filtered, n)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(filtered) {
		return []Note{}
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end]
}
