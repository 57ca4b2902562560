package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	note := Note{Title: "Calculus I - Complete Notes", Subject: "Mathematics", Helper: "Sarah Chen", Description: "limits"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "empty query", query: "", want: true},
		{name: "title", query: "calculus", want: true},
		{name: "subject upper case", query: "MATH", want: true},
		{name: "subject lower case", query: "math", want: true},
		{name: "helper", query: "sarah", want: true},
		{name: "across words", query: "i - complete", want: true},
		{name: "description is not searched", query: "limits", want: false},
		{name: "no match", query: "biology", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(note, tt.query))
		})
	}
}

func TestSearch(t *testing.T) {
	all := seedCatalog(t).All()

	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{name: "empty query returns everything", query: "", want: []int64{1, 2, 3, 4}},
		{name: "helper name", query: "sarah", want: []int64{1}},
		{name: "title word", query: "notes", want: []int64{1, 4}},
		{name: "subject", query: "ENGLISH", want: []int64{3}},
		{name: "no matches", query: "astronomy", want: []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(all, tt.query)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSearch_IsPureAndOrderPreserving(t *testing.T) {
	all := seedCatalog(t).All()
	snapshot := append([]Note(nil), all...)

	first := Search(all, "e")
	second := Search(all, "e")

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, all)

	// every result appears in all, in the same relative order
	pos := 0
	for _, n := range first {
		for pos < len(all) && all[pos].ID != n.ID {
			pos++
		}
		assert.Less(t, pos, len(all), "note %d out of order", n.ID)
	}
}

func TestSearchQuery_Apply(t *testing.T) {
	all := seedCatalog(t).All()

	tests := []struct {
		name string
		q    SearchQuery
		want []int64
	}{
		{name: "zero query", q: SearchQuery{}, want: []int64{1, 2, 3, 4}},
		{name: "whitespace query is trimmed", q: SearchQuery{Query: "  notes "}, want: []int64{1, 4}},
		{name: "grade filter", q: SearchQuery{Grade: GradeHighSchool}, want: []int64{2, 3}},
		{name: "subject filter ignores case", q: SearchQuery{Subject: "physics"}, want: []int64{4}},
		{name: "query and grade", q: SearchQuery{Query: "notes", Grade: GradeUniversity}, want: []int64{1, 4}},
		{name: "limit", q: SearchQuery{Limit: 2}, want: []int64{1, 2}},
		{name: "offset", q: SearchQuery{Offset: 3}, want: []int64{4}},
		{name: "offset past end", q: SearchQuery{Offset: 10}, want: []int64{}},
		{name: "negative offset", q: SearchQuery{Offset: -1, Limit: 1}, want: []int64{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.q.apply(all)))
		})
	}
}

func TestSearchQuery_TrimsQuery(t *testing.T) {
	list := []Note{
		{ID: 2, Title: "Algebra", Subject: "Maths", Helper: "Omar"},
		{ID: 1, Title: "Cell Biology", Subject: "Biology", Helper: "John Smith"},
	}

	assert.Equal(t, []int64{1}, ids(Search(list, " ")))
	assert.Equal(t, []int64{2, 1}, ids(SearchQuery{Query: " "}.apply(list)))
}
