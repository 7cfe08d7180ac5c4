package services

import (
	"slices"

	"go.uber.org/zap"

	"github.com/IbuprofenLover/brewing-stand/application/commands"
	"github.com/IbuprofenLover/brewing-stand/application/ports"
	"github.com/IbuprofenLover/brewing-stand/application/queries"
	"github.com/IbuprofenLover/brewing-stand/domain/core/entities"
)

const reviewsStore = "reviews"

// ReviewService exposes the review collection to the transport layer
type ReviewService struct {
	store   ports.ReviewStore
	metrics ports.Metrics
	logger  *zap.Logger
}

// NewReviewService creates a new review service
func NewReviewService(store ports.ReviewStore, metrics ports.Metrics, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// GetReview returns one review by id
func (s *ReviewService) GetReview(q queries.GetReviewQuery) (queries.Result[entities.Review], error) {
	review, version, err := s.store.Get(q.ID)
	if err != nil {
		return queries.Result[entities.Review]{}, err
	}
	return conditional(s.metrics, "review", version, q.Scope(), q.IfNoneMatch, func() entities.Review {
		return review
	}), nil
}

// ListReviews returns the reviews matching the query filter
func (s *ReviewService) ListReviews(q queries.ListReviewsQuery) queries.Result[[]entities.Review] {
	seq, version := s.store.List(q.Filter)
	return conditional(s.metrics, "reviews", version, q.Scope(), q.IfNoneMatch, func() []entities.Review {
		return slices.AppendSeq(make([]entities.Review, 0), seq)
	})
}

// CreateReview adds a review for an existing coffee
func (s *ReviewService) CreateReview(cmd commands.CreateReviewCommand) (entities.Review, error) {
	if err := cmd.Validate(); err != nil {
		s.observe("create", err, zap.String("coffeeName", cmd.CoffeeName))
		return entities.Review{}, err
	}

	review, err := s.store.Create(cmd.CoffeeName, cmd.Rating, cmd.Comment)
	s.observe("create", err,
		zap.String("id", review.ID),
		zap.String("coffeeName", cmd.CoffeeName),
		zap.Int("rating", cmd.Rating),
	)
	return review, err
}

// UpdateReview replaces the rating and comment of a review
func (s *ReviewService) UpdateReview(cmd commands.UpdateReviewCommand) (entities.Review, error) {
	if err := cmd.Validate(); err != nil {
		s.observe("update", err, zap.String("id", cmd.ID))
		return entities.Review{}, err
	}

	review, err := s.store.Update(cmd.ID, cmd.Rating, cmd.Comment)
	s.observe("update", err, zap.String("id", cmd.ID), zap.Int("rating", cmd.Rating))
	return review, err
}

// DeleteReview removes a review
func (s *ReviewService) DeleteReview(cmd commands.DeleteReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		s.observe("delete", err, zap.String("id", cmd.ID))
		return err
	}

	err := s.store.Delete(cmd.ID)
	s.observe("delete", err, zap.String("id", cmd.ID))
	return err
}

// Count returns the number of live reviews
func (s *ReviewService) Count() int {
	return s.store.Len()
}

func (s *ReviewService) observe(operation string, err error, fields ...zap.Field) {
	s.metrics.RecordMutation(reviewsStore, operation, err)
	fields = append(fields, zap.String("operation", operation))
	if err != nil {
		s.logger.Debug("Review mutation rejected", append(fields, zap.Error(err))...)
		return
	}

	s.metrics.SetEntityCount(reviewsStore, s.store.Len())
	s.logger.Info("Review mutated", append(fields, zap.Uint64("version", s.store.Version()))...)
}
