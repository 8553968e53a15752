package service

import (
	"context"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/pkg/uow"
)

const (
	MinRating = 1
	MaxRating = 5
)

type ReviewService struct {
	uow        uow.UOW
	reviewRepo ReviewRepository
}

func NewReviewService(u uow.UOW) (*ReviewService, error) {
	reviewRepo, repoErr := uow.GetRepositoryAs[ReviewRepository](u, uow.RepositoryName(repoargs.ReviewRepoName))
	if repoErr != nil {
		return nil, repoErr
	}
	return &ReviewService{
		uow:        u,
		reviewRepo: reviewRepo,
	}, nil
}

// Create сохраняет отзыв со статусом approved. Валидация рейтинга дублируется на
// уровне транспорта, здесь она защищает от прямых вызовов сервиса.
func (s *ReviewService) Create(ctx context.Context, args repoargs.CreateReview) (*domain.Review, error) {
	if args.Rating < MinRating || args.Rating > MaxRating {
		return nil, domain.ErrInvalidRating
	}
	args.Status = domain.ReviewStatusApproved
	review, err := s.reviewRepo.Create(ctx, args)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, reviewID int64, args repoargs.UpdateReview) (*domain.Review, error) {
	if args.Rating < MinRating || args.Rating > MaxRating {
		return nil, domain.ErrInvalidRating
	}
	review, err := s.reviewRepo.Update(ctx, reviewID, args)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return review, nil
}

// Flag помечает отзыв для модерации. Доступен только модераторам, ограничение
// обеспечивает транспортный слой.
func (s *ReviewService) Flag(ctx context.Context, reviewID int64) (*domain.Review, error) {
	review, err := s.reviewRepo.UpdateStatus(ctx, reviewID, domain.ReviewStatusFlagged)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return review, nil
}

// Approve возвращает помеченный отзыв в видимое состояние.
func (s *ReviewService) Approve(ctx context.Context, reviewID int64) (*domain.Review, error) {
	review, err := s.reviewRepo.UpdateStatus(ctx, reviewID, domain.ReviewStatusApproved)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, reviewID int64) error {
	return s.reviewRepo.Delete(ctx, reviewID) //nolint:wrapcheck
}

func (s *ReviewService) GetByID(ctx context.Context, reviewID int64) (*domain.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return review, nil
}

func (s *ReviewService) GetByItemID(ctx context.Context, itemID int64) ([]domain.Review, error) {
	reviews, err := s.reviewRepo.GetByItemID(ctx, itemID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return reviews, nil
}

func (s *ReviewService) GetByCustomerID(ctx context.Context, customerID int64) ([]domain.Review, error) {
	reviews, err := s.reviewRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return reviews, nil
}
