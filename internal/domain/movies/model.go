package movies

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Movie is the aggregate: one movie row plus its genre rows. It is always
// created, updated and deleted as one unit.
type Movie struct {
	ID          uuid.UUID `validate:"required"`
	Title       string    `validate:"required"`
	ReleaseYear int       `validate:"notfuture"`
	Genres      []string  `validate:"required,min=1,dive,required"`
}

// Slug is derived from title + release year, never stored input.
// Example: "The Matrix" / 1999 -> "the-matrix-1999".
// The slug column in the store is a lookup convenience kept in sync by the
// write path; this function is the source of truth.
func (m Movie) Slug() string {
	return Slugify(m.Title, m.ReleaseYear)
}

// Slugify builds the URL-safe lookup key for a title/year pair.
func Slugify(title string, year int) string {
	s := strings.ReplaceAll(strings.TrimSpace(title), " ", "-")
	return strings.ToLower(fmt.Sprintf("%s-%d", s, year))
}
