package notes

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// ValidationError reports the draft fields that failed validation.
// Fields are ordered title, subject, helper, grade.
type ValidationError struct {
	Fields   []string          `json:"fields"`
	Messages map[string]string `json:"messages"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, e.Messages[f])
	}
	return "invalid note: " + strings.Join(msgs, ", ")
}

// Has reports whether field failed validation
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// IDSource supplies the id a validated note will carry
type IDSource interface {
	NextID() int64
}

// Validator turns drafts into notes
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func NewValidator() (*Validator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("nonblank", isNonBlank); err != nil {
		return nil, fmt.Errorf("register nonblank validation: %w", err)
	}
	if err := validate.RegisterValidation("grade", isGrade); err != nil {
		return nil, fmt.Errorf("register grade validation: %w", err)
	}

	translations := map[string]string{
		"nonblank": "{0} is required",
		"grade":    "{0} must be one of " + gradeList(),
	}
	for tag, text := range translations {
		tag, text := tag, text
		err := validate.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		})
		if err != nil {
			return nil, fmt.Errorf("register %s translation: %w", tag, err)
		}
	}

	return &Validator{validate: validate, translator: trans}, nil
}

// Validate checks d and returns the note it describes. The note is not
// inserted anywhere; its id comes from ids.
func (v *Validator) Validate(d Draft, ids IDSource) (Note, error) {
	if err := v.validate.Struct(d); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return Note{}, fmt.Errorf("validate draft: %w", err)
		}
		verr := &ValidationError{Messages: make(map[string]string, len(fieldErrs))}
		for _, fe := range fieldErrs {
			verr.Fields = append(verr.Fields, fe.Field())
			verr.Messages[fe.Field()] = fe.Translate(v.translator)
		}
		return Note{}, verr
	}

	image := strings.TrimSpace(d.Image)
	if image == "" {
		image = PlaceholderImage
	}

	return Note{
		ID:          ids.NextID(),
		Title:       strings.TrimSpace(d.Title),
		Subject:     strings.TrimSpace(d.Subject),
		Helper:      strings.TrimSpace(d.Helper),
		Description: strings.TrimSpace(d.Description),
		Grade:       d.Grade,
		Image:       image,
	}, nil
}

func isNonBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func isGrade(fl validator.FieldLevel) bool {
	return Grade(fl.Field().String()).Valid()
}

func gradeList() string {
	names := make([]string, len(Grades))
	for i, g := range Grades {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}
