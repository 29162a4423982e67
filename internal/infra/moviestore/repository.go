// package moviestore is the Postgres-backed movie repository. It owns every
// SQL statement in the codebase; nothing above it touches the database.
package moviestore

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"movies-api/internal/app/logging"
	"movies-api/internal/domain/movies"
)

type Repository struct {
	db  *gorm.DB
	log *log.Logger
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db, log: logging.L.With("component", "moviestore")}
}

// movieRow mirrors the movies table; genres are loaded separately and
// attached in Go.
type movieRow struct {
	ID          uuid.UUID
	Title       string
	Slug        string
	ReleaseYear int
}

// genreRow mirrors the genres table.
type genreRow struct {
	MovieID uuid.UUID
	Name    string
}

// Create inserts the movie row and all genre rows in one transaction.
// Failure means the whole insert was rolled back; readers never see a
// partial aggregate.
func (r *Repository) Create(m *movies.Movie) bool {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			`INSERT INTO movies (id, title, slug, release_year) VALUES (?, ?, ?, ?)`,
			m.ID, m.Title, m.Slug(), m.ReleaseYear,
		).Error; err != nil {
			return err
		}
		return insertGenres(tx, m.ID, m.Genres)
	})
	if err != nil {
		r.log.Error("create rolled back", "movie_id", m.ID, "err", err)
		return false
	}
	return true
}

func (r *Repository) GetByID(id uuid.UUID) (*movies.Movie, error) {
	return r.getOne(`SELECT id, title, slug, release_year FROM movies WHERE id = ?`, id)
}

func (r *Repository) GetBySlug(slug string) (*movies.Movie, error) {
	return r.getOne(`SELECT id, title, slug, release_year FROM movies WHERE slug = ?`, slug)
}

func (r *Repository) getOne(query string, arg any) (*movies.Movie, error) {
	var rows []movieRow
	if err := r.db.Raw(query, arg).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	row := rows[0]

	var names []string
	if err := r.db.Raw(
		`SELECT name FROM genres WHERE movie_id = ?`, row.ID,
	).Scan(&names).Error; err != nil {
		return nil, err
	}

	return &movies.Movie{
		ID:          row.ID,
		Title:       row.Title,
		ReleaseYear: row.ReleaseYear,
		Genres:      names,
	}, nil
}

// GetAll fetches movies and genres as two flat result sets and joins them
// in memory by movie id, instead of one genre query per movie. No ORDER BY:
// row order is whatever the store returns.
func (r *Repository) GetAll() ([]movies.Movie, error) {
	var mrows []movieRow
	if err := r.db.Raw(`SELECT id, title, slug, release_year FROM movies`).Scan(&mrows).Error; err != nil {
		return nil, err
	}

	var grows []genreRow
	if err := r.db.Raw(`SELECT movie_id, name FROM genres`).Scan(&grows).Error; err != nil {
		return nil, err
	}

	byMovie := make(map[uuid.UUID][]string, len(mrows))
	for _, g := range grows {
		byMovie[g.MovieID] = append(byMovie[g.MovieID], g.Name)
	}

	out := make([]movies.Movie, 0, len(mrows))
	for _, row := range mrows {
		out = append(out, movies.Movie{
			ID:          row.ID,
			Title:       row.Title,
			ReleaseYear: row.ReleaseYear,
			Genres:      byMovie[row.ID],
		})
	}
	return out, nil
}

// Update rewrites the movie row (slug recomputed from the new title/year)
// and fully replaces the genre set: delete all prior rows, insert the new
// ones. One transaction, so the aggregate never half-changes.
func (r *Repository) Update(m *movies.Movie) bool {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			`UPDATE movies SET title = ?, slug = ?, release_year = ? WHERE id = ?`,
			m.Title, m.Slug(), m.ReleaseYear, m.ID,
		).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM genres WHERE movie_id = ?`, m.ID).Error; err != nil {
			return err
		}
		return insertGenres(tx, m.ID, m.Genres)
	})
	if err != nil {
		r.log.Error("update rolled back", "movie_id", m.ID, "err", err)
		return false
	}
	return true
}

// DeleteByID removes the genre rows then the movie row. The rows-affected
// count on the movie delete tells a missing id apart from a write error.
func (r *Repository) DeleteByID(id uuid.UUID) movies.DeleteResult {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM genres WHERE movie_id = ?`, id).Error; err != nil {
			return err
		}
		res := tx.Exec(`DELETE FROM movies WHERE id = ?`, id)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		r.log.Error("delete rolled back", "movie_id", id, "err", err)
		return movies.DeleteFailed
	}
	if affected == 0 {
		return movies.DeleteMissing
	}
	return movies.Deleted
}

func (r *Repository) ExistsByID(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Raw(`SELECT count(1) FROM movies WHERE id = ?`, id).Scan(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func insertGenres(tx *gorm.DB, movieID uuid.UUID, genres []string) error {
	for _, name := range genres {
		if err := tx.Exec(
			`INSERT INTO genres (movie_id, name) VALUES (?, ?)`, movieID, name,
		).Error; err != nil {
			return err
		}
	}
	return nil
}
