package service

import (
	"testing"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/internal/service/mocks"
	"github.com/fsdevblog/groph-shop/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-shop/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ReviewServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockReviewRepo *mocks.MockReviewRepository
	reviewService  *ReviewService
}

func TestReviewServiceSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceTestSuite))
}

func (s *ReviewServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockReviewRepo = mocks.NewMockReviewRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ReviewRepoName)).
		Return(s.mockReviewRepo, nil).AnyTimes()

	reviewService, servErr := NewReviewService(s.mockUOW)
	s.Require().NoError(servErr)
	s.reviewService = reviewService
}

func (s *ReviewServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReviewServiceTestSuite) TestCreate() {
	created := domain.Review{
		ID:         1,
		CustomerID: 1,
		ItemID:     10,
		Rating:     4,
		Comment:    "Solid",
		Status:     domain.ReviewStatusApproved,
	}

	// Статус выставляется сервисом независимо от того, что пришло в аргументах.
	s.mockReviewRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args repoargs.CreateReview) (*domain.Review, error) {
			s.Equal(domain.ReviewStatusApproved, args.Status)
			return &created, nil
		})

	cases := []struct {
		name    string
		rating  int
		wantErr error
	}{
		{name: "ok", rating: 4},
		{name: "rating too low", rating: 0, wantErr: domain.ErrInvalidRating},
		{name: "rating too high", rating: 6, wantErr: domain.ErrInvalidRating},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			review, err := s.reviewService.Create(s.T().Context(), repoargs.CreateReview{
				CustomerID: 1,
				ItemID:     10,
				Rating:     t.rating,
				Comment:    "Solid",
				Status:     domain.ReviewStatusFlagged, // игнорируется сервисом
			})

			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}

			s.Require().NoError(err)
			s.Equal(&created, review)
		})
	}
}

func (s *ReviewServiceTestSuite) TestUpdate() {
	updated := domain.Review{ID: 1, Rating: 5, Comment: "Even better", Status: domain.ReviewStatusApproved}

	s.mockReviewRepo.EXPECT().
		Update(gomock.Any(), int64(1), repoargs.UpdateReview{Rating: 5, Comment: "Even better"}).
		Return(&updated, nil)

	cases := []struct {
		name    string
		rating  int
		wantErr error
	}{
		{name: "ok", rating: 5},
		{name: "invalid rating", rating: 0, wantErr: domain.ErrInvalidRating},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			review, err := s.reviewService.Update(s.T().Context(), 1, repoargs.UpdateReview{
				Rating:  t.rating,
				Comment: "Even better",
			})

			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}

			s.Require().NoError(err)
			s.Equal(&updated, review)
		})
	}
}

func (s *ReviewServiceTestSuite) TestModeration() {
	flagged := domain.Review{ID: 1, Status: domain.ReviewStatusFlagged}
	approved := domain.Review{ID: 1, Status: domain.ReviewStatusApproved}

	s.mockReviewRepo.EXPECT().
		UpdateStatus(gomock.Any(), int64(1), domain.ReviewStatusFlagged).
		Return(&flagged, nil)
	s.mockReviewRepo.EXPECT().
		UpdateStatus(gomock.Any(), int64(1), domain.ReviewStatusApproved).
		Return(&approved, nil)
	s.mockReviewRepo.EXPECT().
		UpdateStatus(gomock.Any(), int64(99), domain.ReviewStatusFlagged).
		Return(nil, domain.ErrRecordNotFound)

	s.Run("flag", func() {
		review, err := s.reviewService.Flag(s.T().Context(), 1)
		s.Require().NoError(err)
		s.Equal(domain.ReviewStatusFlagged, review.Status)
	})

	s.Run("approve", func() {
		review, err := s.reviewService.Approve(s.T().Context(), 1)
		s.Require().NoError(err)
		s.Equal(domain.ReviewStatusApproved, review.Status)
	})

	s.Run("flag missing review", func() {
		_, err := s.reviewService.Flag(s.T().Context(), 99)
		s.Require().ErrorIs(err, domain.ErrRecordNotFound)
	})
}

func (s *ReviewServiceTestSuite) TestGetByItemID() {
	reviews := []domain.Review{
		{ID: 1, ItemID: 10, Rating: 5},
		{ID: 2, ItemID: 10, Rating: 3},
	}

	s.mockReviewRepo.EXPECT().
		GetByItemID(gomock.Any(), int64(10)).
		Return(reviews, nil)
	s.mockReviewRepo.EXPECT().
		GetByItemID(gomock.Any(), int64(11)).
		Return([]domain.Review{}, nil)

	cases := []struct {
		name      string
		itemID    int64
		wantEmpty bool
	}{
		{name: "ok", itemID: 10},
		{name: "empty result", itemID: 11, wantEmpty: true},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			result, err := s.reviewService.GetByItemID(s.T().Context(), t.itemID)

			s.Require().NoError(err)
			if t.wantEmpty {
				s.Empty(result)
			} else {
				s.Len(result, 2)
			}
		})
	}
}
