package movies

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"movies-api/internal/app/logging"
	domain "movies-api/internal/domain/movies"
)

// MovieService is the slice of the movie service the handlers use.
type MovieService interface {
	Create(m *domain.Movie) error
	GetByID(id uuid.UUID) (*domain.Movie, error)
	GetBySlug(slug string) (*domain.Movie, error)
	GetAll() ([]domain.Movie, error)
	Update(m *domain.Movie) error
	DeleteByID(id uuid.UUID) error
}

type Handler struct {
	svc MovieService
}

func NewHandler(svc MovieService) *Handler {
	return &Handler{svc: svc}
}

// GET /movies/:idOrSlug
// A path segment that parses as a uuid is an id lookup, anything else is a
// slug lookup.
func (h *Handler) Get(c *gin.Context) {
	idOrSlug := c.Param("idOrSlug")

	var (
		movie *domain.Movie
		err   error
	)
	if id, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		movie, err = h.svc.GetByID(id)
	} else {
		movie, err = h.svc.GetBySlug(idOrSlug)
	}
	if err != nil {
		h.serverError(c, err)
		return
	}
	if movie == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		return
	}
	c.JSON(http.StatusOK, toResponse(movie))
}

// GET /movies
func (h *Handler) GetAll(c *gin.Context) {
	all, err := h.svc.GetAll()
	if err != nil {
		h.serverError(c, err)
		return
	}
	out := make([]MovieResponse, 0, len(all))
	for i := range all {
		out = append(out, toResponse(&all[i]))
	}
	c.JSON(http.StatusOK, out)
}

// POST /movies
func (h *Handler) Create(c *gin.Context) {
	var req CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
		return
	}

	movie := req.toMovie()
	if err := h.svc.Create(movie); err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Location", "/movies/"+movie.ID.String())
	c.JSON(http.StatusCreated, toResponse(movie))
}

// PUT /movies/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie id"})
		return
	}

	var req UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
		return
	}

	movie := req.toMovie(id)
	if err := h.svc.Update(movie); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(movie))
}

// DELETE /movies/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie id"})
		return
	}

	if err := h.svc.DeleteByID(id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError maps the service error taxonomy onto HTTP: aggregated
// validation violations become a structured 400, not-found a 404, anything
// else a 500 with no storage detail.
func (h *Handler) writeError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: verr.Violations})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
	default:
		h.serverError(c, err)
	}
}

func (h *Handler) serverError(c *gin.Context, err error) {
	logging.L.Error("movie request failed", "path", c.FullPath(), "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
}
