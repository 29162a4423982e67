package movies

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockLookup struct {
	existing *Movie
	err      error
}

func (m *mockLookup) GetBySlug(slug string) (*Movie, error) {
	return m.existing, m.err
}

func validMovie() *Movie {
	return &Movie{
		ID:          uuid.New(),
		Title:       "The Matrix",
		ReleaseYear: 1999,
		Genres:      []string{"Action", "Sci-Fi"},
	}
}

func violationFields(t *testing.T, err error) map[string]bool {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	fields := make(map[string]bool)
	for _, v := range verr.Violations {
		fields[v.Field] = true
	}
	return fields
}

func TestValidator(t *testing.T) {
	t.Run("ValidMoviePasses", func(t *testing.T) {
		v := NewValidator(&mockLookup{})
		if err := v.Validate(validMovie()); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("MissingID", func(t *testing.T) {
		v := NewValidator(&mockLookup{})
		m := validMovie()
		m.ID = uuid.Nil
		fields := violationFields(t, v.Validate(m))
		if !fields["id"] {
			t.Error("expected a violation on id")
		}
	})

	t.Run("EmptyTitle", func(t *testing.T) {
		v := NewValidator(&mockLookup{})
		m := validMovie()
		m.Title = ""
		fields := violationFields(t, v.Validate(m))
		if !fields["title"] {
			t.Error("expected a violation on title")
		}
	})

	t.Run("FutureReleaseYear", func(t *testing.T) {
		v := NewValidator(&mockLookup{})
		m := validMovie()
		m.ReleaseYear = time.Now().Year() + 1
		fields := violationFields(t, v.Validate(m))
		if !fields["releaseYear"] {
			t.Error("expected a violation on releaseYear")
		}
	})

	t.Run("CurrentYearAllowed", func(t *testing.T) {
		v := NewValidator(&mockLookup{})
		m := validMovie()
		m.ReleaseYear = time.Now().Year()
		if err := v.Validate(m); err != nil {
			t.Errorf("current year should pass, got %v", err)
		}
	})

	t.Run("EmptyGenreList", func(t *testing.T) {
		v := NewValidator(&mockLookup{})
		m := validMovie()
		m.Genres = []string{}
		fields := violationFields(t, v.Validate(m))
		if !fields["genres"] {
			t.Error("expected a violation on genres")
		}
	})

	t.Run("BlankGenreEntry", func(t *testing.T) {
		v := NewValidator(&mockLookup{})
		m := validMovie()
		m.Genres = []string{"Action", ""}
		fields := violationFields(t, v.Validate(m))
		if !fields["genres"] {
			t.Error("expected a violation on genres")
		}
	})

	t.Run("AggregatesAllViolations", func(t *testing.T) {
		v := NewValidator(&mockLookup{})
		m := &Movie{
			Title:       "Blade Runner",
			ReleaseYear: time.Now().Year() + 5,
		}
		fields := violationFields(t, v.Validate(m))
		for _, want := range []string{"id", "releaseYear", "genres"} {
			if !fields[want] {
				t.Errorf("expected a violation on %s", want)
			}
		}
	})

	t.Run("SlugTakenByOtherMovie", func(t *testing.T) {
		other := validMovie()
		v := NewValidator(&mockLookup{existing: other})
		m := validMovie() // same title/year, different id
		fields := violationFields(t, v.Validate(m))
		if !fields["slug"] {
			t.Error("expected a violation on slug")
		}
	})

	t.Run("SlugOwnedBySameMovie", func(t *testing.T) {
		m := validMovie()
		v := NewValidator(&mockLookup{existing: m})
		if err := v.Validate(m); err != nil {
			t.Errorf("updating a movie to its own slug should pass, got %v", err)
		}
	})

	t.Run("LookupErrorPropagates", func(t *testing.T) {
		lookupErr := errors.New("connection refused")
		v := NewValidator(&mockLookup{err: lookupErr})
		err := v.Validate(validMovie())
		if !errors.Is(err, lookupErr) {
			t.Errorf("expected lookup error, got %v", err)
		}
	})
}
