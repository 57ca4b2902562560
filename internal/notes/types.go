package notes

// Grade is the schooling tier a note targets
type Grade string

const (
	GradeMiddleSchool Grade = "Middle School"
	GradeHighSchool   Grade = "High School"
	GradeUniversity   Grade = "University"
)

// Grades lists the accepted grade levels in the order the share form offers them
var Grades = []Grade{GradeHighSchool, GradeUniversity, GradeMiddleSchool}

// Valid reports whether g is one of the enumerated grade levels
func (g Grade) Valid() bool {
	switch g {
	case GradeMiddleSchool, GradeHighSchool, GradeUniversity:
		return true
	}
	return false
}

// PlaceholderImage is the icon given to user-submitted notes
const PlaceholderImage = "📄"

// Note represents one shared study note
type Note struct {
	ID          int64  `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Subject     string `json:"subject" yaml:"subject"`
	Helper      string `json:"helper" yaml:"helper"`
	Description string `json:"description" yaml:"description"`
	Grade       Grade  `json:"grade" yaml:"grade"`
	Image       string `json:"image" yaml:"image"`
}

// Draft holds the not-yet-validated values of a note submission
type Draft struct {
	Title       string `json:"title" validate:"nonblank"`
	Subject     string `json:"subject" validate:"nonblank"`
	Helper      string `json:"helper" validate:"nonblank"`
	Description string `json:"description"`
	Grade       Grade  `json:"grade" validate:"grade"`
	Image       string `json:"image,omitempty"`
}

// Subject represents aggregated subject info
type Subject struct {
	Name   string `json:"name"`
	Count  int    `json:"count"`
	Newest int64  `json:"newestId"`
}

// SearchQuery represents search parameters
type SearchQuery struct {
	Query   string // substring of title, subject or helper
	Subject string // filter by subject
	Grade   Grade  // filter by grade
	Limit   int
	Offset  int
}

const (
	defaultLimit = 50
	maxLimit     = 200
)
