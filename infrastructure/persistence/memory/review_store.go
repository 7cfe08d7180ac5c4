package memory

import (
	"iter"
	"slices"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/IbuprofenLover/brewing-stand/application/ports"
	"github.com/IbuprofenLover/brewing-stand/domain/core/entities"
	"github.com/IbuprofenLover/brewing-stand/domain/versioning"
	"github.com/IbuprofenLover/brewing-stand/pkg/errors"
)

var _ ports.ReviewStore = (*ReviewStore)(nil)

// ReviewStore is a thread-safe in-memory review collection
type ReviewStore struct {
	coffees ports.CoffeeDirectory
	logger  *zap.Logger

	mu      sync.RWMutex
	reviews map[string]entities.Review
	// keys counts live reviews per uniqueness key. Updates may make two
	// reviews share a key, so this is a count rather than a set.
	keys    map[string]int
	lastID  uint64
	version versioning.Counter
}

// NewReviewStore creates a review store that checks references against coffees
func NewReviewStore(coffees ports.CoffeeDirectory, logger *zap.Logger) *ReviewStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewStore{
		coffees: coffees,
		logger:  logger,
		reviews: make(map[string]entities.Review),
		keys:    make(map[string]int),
	}
}

// Get retrieves a review by id
func (s *ReviewStore) Get(id string) (entities.Review, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	review, ok := s.reviews[id]
	if !ok {
		return entities.Review{}, s.version.Current(), reviewNotFound(id)
	}
	return review, s.version.Current(), nil
}

// List returns the reviews matching filter from a snapshot
func (s *ReviewStore) List(filter entities.ReviewFilter) (iter.Seq[entities.Review], uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]entities.Review, 0, len(s.reviews))
	for _, review := range s.reviews {
		if filter.Matches(review) {
			matches = append(matches, review)
		}
	}
	return slices.Values(matches), s.version.Current()
}

// Create stores a new review.
//
// The coffee reference is checked before the review lock is taken and no
// lock spans both stores: a coffee deleted between the check and the insert
// still gets its review.
func (s *ReviewStore) Create(coffeeName string, rating int, comment string) (entities.Review, error) {
	if err := entities.ValidateReviewInput(coffeeName, rating, comment); err != nil {
		return entities.Review{}, err
	}
	if !s.coffees.ExistsByName(coffeeName) {
		return entities.Review{}, errors.NewReferentialError("coffee does not exist").
			WithCode("COFFEE_NOT_FOUND").
			WithDetail("coffeeName", coffeeName)
	}

	review := entities.Review{CoffeeName: coffeeName, Rating: rating, Comment: comment}
	key := review.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.keys[key] > 0 {
		return entities.Review{}, errors.NewConflictError("review already exists").
			WithCode("REVIEW_EXISTS")
	}

	review.ID = strconv.FormatUint(s.lastID+1, 10)
	if _, collision := s.reviews[review.ID]; collision {
		s.logger.Error("Review id collision",
			zap.String("id", review.ID),
			zap.Uint64("lastID", s.lastID),
		)
		return entities.Review{}, errors.NewInternalError("review id collision").
			WithDetail("id", review.ID)
	}

	s.lastID++
	s.reviews[review.ID] = review
	s.keys[key]++
	s.version.Bump()
	return review, nil
}

// Update replaces the rating and comment of a review. The duplicate rule is
// only enforced on creation.
func (s *ReviewStore) Update(id string, rating int, comment string) (entities.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.reviews[id]
	if !ok {
		return entities.Review{}, reviewNotFound(id)
	}
	if err := entities.ValidateReviewContent(rating, comment); err != nil {
		return entities.Review{}, err
	}

	updated := current.WithContent(rating, comment)
	s.release(current.Key())
	s.keys[updated.Key()]++
	s.reviews[id] = updated
	s.version.Bump()
	return updated, nil
}

// Delete removes a review
func (s *ReviewStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	review, ok := s.reviews[id]
	if !ok {
		return reviewNotFound(id)
	}

	delete(s.reviews, id)
	s.release(review.Key())
	s.version.Bump()
	return nil
}

// Version returns the current mutation counter
func (s *ReviewStore) Version() uint64 {
	return s.version.Current()
}

// Len returns the number of live reviews
func (s *ReviewStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reviews)
}

// release drops one holder of key. Callers hold the write lock.
func (s *ReviewStore) release(key string) {
	if s.keys[key] <= 1 {
		delete(s.keys, key)
		return
	}
	s.keys[key]--
}

func reviewNotFound(id string) error {
	return errors.NewNotFoundError("review").
		WithCode("REVIEW_NOT_FOUND").
		WithDetail("id", id)
}
