package movies

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// SlugLookup is the one read capability the validator needs. It is
// deliberately narrower than Repository so the validator cannot mutate
// anything.
type SlugLookup interface {
	GetBySlug(slug string) (*Movie, error)
}

// Validator checks a movie against the field rules and the slug-uniqueness
// rule before any write reaches the repository.
type Validator struct {
	lookup   SlugLookup
	validate *validator.Validate
}

func NewValidator(lookup SlugLookup) *Validator {
	v := validator.New()
	v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= int64(time.Now().Year())
	})
	return &Validator{lookup: lookup, validate: v}
}

// Validate returns a *ValidationError listing every violation, or nil.
// The slug check passes when no movie owns the slug, or when the owner is
// the candidate itself (update of a movie to its own current title/year).
//
// The check-then-write window is not closed here; the unique constraint on
// the slug column is the authoritative guard.
func (v *Validator) Validate(m *Movie) error {
	verr := &ValidationError{}

	if err := v.validate.Struct(m); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			verr.add(fieldName(fe), fieldMessage(fe))
		}
	}

	existing, err := v.lookup.GetBySlug(m.Slug())
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != m.ID {
		verr.add("slug", "this movie already exists in the system")
	}

	if len(verr.Violations) > 0 {
		return verr
	}
	return nil
}

func fieldName(fe validator.FieldError) string {
	name := fe.StructField()
	switch {
	case name == "ID":
		return "id"
	case name == "Title":
		return "title"
	case name == "ReleaseYear":
		return "releaseYear"
	case strings.HasPrefix(name, "Genres"):
		// covers both the collection rule and dived elements like Genres[1]
		return "genres"
	}
	return name
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "min":
		return "must contain at least one entry"
	case "notfuture":
		return "must not be later than the current year"
	}
	return "is invalid"
}
