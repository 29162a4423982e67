package movies

import "github.com/google/uuid"

// DeleteResult is the repository's tri-state delete outcome. A delete of an
// id that was never there is not the same thing as a rolled-back write, and
// the service needs both distinctions.
type DeleteResult int

const (
	DeleteFailed DeleteResult = iota
	DeleteMissing
	Deleted
)

// Repository is the persistence contract for the movie aggregate. Writes
// report success as a boolean after any rollback has already happened;
// reads return nil without error when nothing matches.
type Repository interface {
	Create(m *Movie) bool
	GetByID(id uuid.UUID) (*Movie, error)
	GetBySlug(slug string) (*Movie, error)
	GetAll() ([]Movie, error)
	Update(m *Movie) bool
	DeleteByID(id uuid.UUID) DeleteResult
	ExistsByID(id uuid.UUID) (bool, error)
}

// Service orchestrates validation and persistence. It is the only entry
// point other layers use; it never runs SQL itself.
type Service struct {
	repo      Repository
	validator *Validator
}

func NewService(repo Repository, validator *Validator) *Service {
	return &Service{repo: repo, validator: validator}
}

// Create validates the movie, then persists it. A *ValidationError comes
// back without storage being touched.
func (s *Service) Create(m *Movie) error {
	if err := s.validator.Validate(m); err != nil {
		return err
	}
	if !s.repo.Create(m) {
		return ErrStoreFailed
	}
	return nil
}

func (s *Service) GetByID(id uuid.UUID) (*Movie, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetBySlug(slug string) (*Movie, error) {
	return s.repo.GetBySlug(slug)
}

func (s *Service) GetAll() ([]Movie, error) {
	return s.repo.GetAll()
}

// Update validates first, then probes existence so an unknown id comes back
// as ErrNotFound before any write is attempted.
func (s *Service) Update(m *Movie) error {
	if err := s.validator.Validate(m); err != nil {
		return err
	}
	exists, err := s.repo.ExistsByID(m.ID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	if !s.repo.Update(m) {
		return ErrStoreFailed
	}
	return nil
}

func (s *Service) DeleteByID(id uuid.UUID) error {
	switch s.repo.DeleteByID(id) {
	case Deleted:
		return nil
	case DeleteMissing:
		return ErrNotFound
	default:
		return ErrStoreFailed
	}
}
