package notes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIDs int64

func (f fixedIDs) NextID() int64 { return int64(f) }

func validDraft() Draft {
	return Draft{
		Title:   "Organic Chemistry",
		Subject: "Chemistry",
		Helper:  "Alex",
		Grade:   GradeUniversity,
	}
}

func TestValidator_Validate(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name       string
		draft      func(d *Draft)
		wantFields []string
	}{
		{name: "valid draft", draft: func(d *Draft) {}},
		{name: "blank title", draft: func(d *Draft) { d.Title = "   " }, wantFields: []string{"title"}},
		{name: "empty helper", draft: func(d *Draft) { d.Helper = "" }, wantFields: []string{"helper"}},
		{
			name:       "blank subject and helper",
			draft:      func(d *Draft) { d.Subject = "\t"; d.Helper = "" },
			wantFields: []string{"subject", "helper"},
		},
		{
			name:       "everything missing",
			draft:      func(d *Draft) { *d = Draft{} },
			wantFields: []string{"title", "subject", "helper", "grade"},
		},
		{name: "grade outside the enumeration", draft: func(d *Draft) { d.Grade = "Kindergarten" }, wantFields: []string{"grade"}},
		{name: "grade with wrong case", draft: func(d *Draft) { d.Grade = "university" }, wantFields: []string{"grade"}},
		{name: "empty grade", draft: func(d *Draft) { d.Grade = "" }, wantFields: []string{"grade"}},
		{name: "blank description is fine", draft: func(d *Draft) { d.Description = "  " }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.draft(&d)

			note, err := v.Validate(d, fixedIDs(5))
			if tt.wantFields == nil {
				require.NoError(t, err)
				assert.Equal(t, int64(5), note.ID)
				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantFields, verr.Fields)
			for _, f := range tt.wantFields {
				assert.True(t, verr.Has(f))
				assert.NotEmpty(t, verr.Messages[f])
			}
			assert.Equal(t, Note{}, note)
		})
	}
}

func TestValidator_PopulatesNote(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	d := Draft{
		Title:       "  Organic Chemistry ",
		Subject:     "Chemistry",
		Helper:      " Alex",
		Description: "Reactions\n",
		Grade:       GradeUniversity,
	}
	note, err := v.Validate(d, fixedIDs(12))
	require.NoError(t, err)

	assert.Equal(t, Note{
		ID:          12,
		Title:       "Organic Chemistry",
		Subject:     "Chemistry",
		Helper:      "Alex",
		Description: "Reactions",
		Grade:       GradeUniversity,
		Image:       PlaceholderImage,
	}, note)

	d.Image = "🧪"
	note, err = v.Validate(d, fixedIDs(12))
	require.NoError(t, err)
	assert.Equal(t, "🧪", note.Image)
}

func TestValidationError_Error(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	d := validDraft()
	d.Helper = ""
	d.Grade = "Kindergarten"
	_, err = v.Validate(d, fixedIDs(1))
	require.Error(t, err)

	assert.Equal(t, "invalid note: helper is required, grade must be one of High School, University, Middle School", err.Error())
}
