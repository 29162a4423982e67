package movies

import (
	"strings"

	"github.com/google/uuid"

	domain "movies-api/internal/domain/movies"
)

// ---------- requests

type CreateMovieRequest struct {
	Title       string   `json:"title"`
	ReleaseYear int      `json:"releaseYear"`
	Genres      []string `json:"genres"`
}

type UpdateMovieRequest struct {
	Title       string   `json:"title"`
	ReleaseYear int      `json:"releaseYear"`
	Genres      []string `json:"genres"`
}

// No binding tags on purpose: the domain validator owns the rules and
// reports every violation in one response, which gin's binding would
// pre-empt field by field.

// ---------- responses

type MovieResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	ReleaseYear int       `json:"releaseYear"`
	Genres      []string  `json:"genres"`
}

type ValidationErrorResponse struct {
	Errors []domain.Violation `json:"errors"`
}

// ---------- mapping

// toMovie builds the aggregate for a create: fresh id, trimmed title.
func (r CreateMovieRequest) toMovie() *domain.Movie {
	return &domain.Movie{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(r.Title),
		ReleaseYear: r.ReleaseYear,
		Genres:      r.Genres,
	}
}

// toMovie builds the aggregate for an update: id comes from the path.
func (r UpdateMovieRequest) toMovie(id uuid.UUID) *domain.Movie {
	return &domain.Movie{
		ID:          id,
		Title:       strings.TrimSpace(r.Title),
		ReleaseYear: r.ReleaseYear,
		Genres:      r.Genres,
	}
}

func toResponse(m *domain.Movie) MovieResponse {
	genres := m.Genres
	if genres == nil {
		genres = []string{}
	}
	return MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug(),
		ReleaseYear: m.ReleaseYear,
		Genres:      genres,
	}
}
