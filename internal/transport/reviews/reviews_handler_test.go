package reviews

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/logger"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/internal/tokens"
	"github.com/fsdevblog/groph-shop/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-shop/internal/transport/reviews/mocks"
	"github.com/fsdevblog/groph-shop/internal/transport/upstream/customerdir"
	"github.com/fsdevblog/groph-shop/internal/transport/upstream/invstore"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReviewsHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockReviewService *mocks.MockReviewServicer
	mockCustomers     *mocks.MockCustomerDirectory
	mockInventory     *mocks.MockInventoryStore
	jwtSecret         []byte
}

func TestReviewsHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewsHandlerTestSuite))
}

func (s *ReviewsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockReviewService = mocks.NewMockReviewServicer(mockCtrl)
	s.mockCustomers = mocks.NewMockCustomerDirectory(mockCtrl)
	s.mockInventory = mocks.NewMockInventoryStore(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:        logger.New(io.Discard),
		ReviewService: s.mockReviewService,
		Customers:     s.mockCustomers,
		Inventory:     s.mockInventory,
		DB:            mocks.NewMockDBPinger(mockCtrl),
		JWTSecretKey:  s.jwtSecret,
	})
}

func (s *ReviewsHandlerTestSuite) token(username string, role domain.RoleType) string {
	token, err := tokens.GenerateUserJWT(username, role, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

func (s *ReviewsHandlerTestSuite) alice() *customerdir.CustomerView {
	return &customerdir.CustomerView{
		ID:       1,
		Username: "alice",
		Wallet:   decimal.NewFromInt(500),
	}
}

func (s *ReviewsHandlerTestSuite) request(
	method, url, token string,
	payload string,
) *http.Response {
	s.T().Helper()

	args := testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
	}
	if payload != "" {
		args.Body = bytes.NewReader([]byte(payload))
	}
	var reqOpts []func(*testutils.RequestOptions)
	if token != "" {
		reqOpts = append(reqOpts, testutils.WithBearer(token))
	}
	reqOpts = append(reqOpts, testutils.WithHeader("Content-Type", "application/json"))

	res, err := testutils.MakeRequest(args, reqOpts...)
	s.Require().NoError(err)
	return res
}

func (s *ReviewsHandlerTestSuite) decodeBody(res *http.Response) map[string]any {
	s.T().Helper()
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	var body map[string]any
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	return body
}

func (s *ReviewsHandlerTestSuite) TestSubmit() {
	customerToken := s.token("alice", domain.RoleCustomer)
	managerToken := s.token("manager", domain.RoleProductManager)

	s.mockCustomers.EXPECT().
		LookupCustomer(gomock.Any(), "alice").
		Return(s.alice(), nil).AnyTimes()

	// Кейсы различаем по идентификатору товара.
	s.mockInventory.EXPECT().
		GetItem(gomock.Any(), int64(10)).
		Return(&invstore.ItemView{ID: 10, Name: "Laptop"}, nil)
	s.mockInventory.EXPECT().
		GetItem(gomock.Any(), int64(99)).
		Return(nil, invstore.NewStatusCodeError(http.StatusNotFound))

	s.mockReviewService.EXPECT().
		Create(gomock.Any(), repoargs.CreateReview{
			CustomerID: 1,
			ItemID:     10,
			Rating:     4,
			Comment:    "Solid build quality",
		}).
		Return(&domain.Review{ID: 7}, nil)

	cases := []struct {
		name       string
		url        string
		payload    string
		jwtToken   string
		wantStatus int
		wantError  string
	}{
		{
			name:       "all ok",
			url:        "/reviews/10",
			payload:    `{"rating": 4, "comment": "  Solid build quality  "}`,
			jwtToken:   customerToken,
			wantStatus: http.StatusCreated,
		}, {
			name:       "item not found",
			url:        "/reviews/99",
			payload:    `{"rating": 4, "comment": "ok"}`,
			jwtToken:   customerToken,
			wantStatus: http.StatusNotFound,
			wantError:  "Item not found",
		}, {
			name:       "rating too low",
			url:        "/reviews/10",
			payload:    `{"rating": 0, "comment": "ok"}`,
			jwtToken:   customerToken,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid rating. Must be an integer between 1 and 5.",
		}, {
			name:       "rating too high",
			url:        "/reviews/10",
			payload:    `{"rating": 6, "comment": "ok"}`,
			jwtToken:   customerToken,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid rating. Must be an integer between 1 and 5.",
		}, {
			name:       "comment too long",
			url:        "/reviews/10",
			payload:    `{"rating": 4, "comment": "` + strings.Repeat("a", 501) + `"}`,
			jwtToken:   customerToken,
			wantStatus: http.StatusBadRequest,
			wantError:  "Comment exceeds maximum length of 500 characters.",
		}, {
			name:       "non numeric item id",
			url:        "/reviews/banana",
			payload:    `{"rating": 4, "comment": "ok"}`,
			jwtToken:   customerToken,
			wantStatus: http.StatusNotFound,
			wantError:  "Item not found",
		}, {
			name:       "not authorized",
			url:        "/reviews/10",
			payload:    `{"rating": 4, "comment": "ok"}`,
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "forbidden role",
			url:        "/reviews/10",
			payload:    `{"rating": 4, "comment": "ok"}`,
			jwtToken:   managerToken,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.request(http.MethodPost, t.url, t.jwtToken, t.payload)
			s.Equal(t.wantStatus, res.StatusCode)

			body := s.decodeBody(res)
			switch {
			case t.wantStatus == http.StatusCreated:
				s.Equal("Review submitted successfully", body["message"])
				s.InDelta(7, body["review_id"], 0)
			case t.wantError != "":
				s.Equal(t.wantError, body["error"])
			}
		})
	}
}

// Администратор правит любой отзыв, клиент только свой.
func (s *ReviewsHandlerTestSuite) TestUpdateOwnership() {
	customerToken := s.token("alice", domain.RoleCustomer)
	adminToken := s.token("root", domain.RoleAdmin)

	s.mockCustomers.EXPECT().
		LookupCustomer(gomock.Any(), "alice").
		Return(s.alice(), nil).AnyTimes()

	s.mockReviewService.EXPECT().
		GetByID(gomock.Any(), int64(5)).
		Return(&domain.Review{ID: 5, CustomerID: 1}, nil).AnyTimes()
	s.mockReviewService.EXPECT().
		GetByID(gomock.Any(), int64(6)).
		Return(&domain.Review{ID: 6, CustomerID: 2}, nil).AnyTimes()
	s.mockReviewService.EXPECT().
		GetByID(gomock.Any(), int64(8)).
		Return(nil, domain.ErrRecordNotFound)

	s.mockReviewService.EXPECT().
		Update(gomock.Any(), int64(5), repoargs.UpdateReview{Rating: 5, Comment: "Even better"}).
		Return(&domain.Review{ID: 5, CustomerID: 1, Rating: 5}, nil)
	s.mockReviewService.EXPECT().
		Update(gomock.Any(), int64(6), gomock.Any()).
		Return(&domain.Review{ID: 6, CustomerID: 2, Rating: 5}, nil)

	cases := []struct {
		name       string
		url        string
		payload    string
		jwtToken   string
		wantStatus int
		wantError  string
	}{
		{
			name:       "owner updates own review",
			url:        "/reviews/5",
			payload:    `{"rating": 5, "comment": "Even better"}`,
			jwtToken:   customerToken,
			wantStatus: http.StatusOK,
		}, {
			name:       "foreign review",
			url:        "/reviews/6",
			payload:    `{"rating": 5, "comment": "nope"}`,
			jwtToken:   customerToken,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid user",
		}, {
			name:       "admin bypasses ownership",
			url:        "/reviews/6",
			payload:    `{"rating": 5, "comment": "moderated"}`,
			jwtToken:   adminToken,
			wantStatus: http.StatusOK,
		}, {
			name:       "review not found",
			url:        "/reviews/8",
			payload:    `{"rating": 5, "comment": "gone"}`,
			jwtToken:   customerToken,
			wantStatus: http.StatusNotFound,
			wantError:  "Review not found",
		}, {
			name:       "invalid rating",
			url:        "/reviews/5",
			payload:    `{"rating": 0, "comment": "bad"}`,
			jwtToken:   customerToken,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid rating. Must be an integer between 1 and 5.",
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.request(http.MethodPut, t.url, t.jwtToken, t.payload)
			s.Equal(t.wantStatus, res.StatusCode)

			body := s.decodeBody(res)
			switch {
			case t.wantStatus == http.StatusOK:
				s.Equal("Review updated successfully", body["message"])
			case t.wantError != "":
				s.Equal(t.wantError, body["error"])
			}
		})
	}
}

func (s *ReviewsHandlerTestSuite) TestDelete() {
	customerToken := s.token("alice", domain.RoleCustomer)

	s.mockCustomers.EXPECT().
		LookupCustomer(gomock.Any(), "alice").
		Return(s.alice(), nil).AnyTimes()

	s.Run("owner deletes own review", func() {
		s.mockReviewService.EXPECT().
			GetByID(gomock.Any(), int64(5)).
			Return(&domain.Review{ID: 5, CustomerID: 1}, nil)
		s.mockReviewService.EXPECT().
			Delete(gomock.Any(), int64(5)).
			Return(nil)

		res := s.request(http.MethodDelete, "/reviews/5", customerToken, "")
		s.Equal(http.StatusOK, res.StatusCode)
		s.Equal("Review deleted successfully", s.decodeBody(res)["message"])
	})

	s.Run("foreign review", func() {
		s.mockReviewService.EXPECT().
			GetByID(gomock.Any(), int64(6)).
			Return(&domain.Review{ID: 6, CustomerID: 2}, nil)

		res := s.request(http.MethodDelete, "/reviews/6", customerToken, "")
		s.Equal(http.StatusBadRequest, res.StatusCode)
		s.Equal("Invalid user", s.decodeBody(res)["error"])
	})
}

func (s *ReviewsHandlerTestSuite) TestShow() {
	customerToken := s.token("alice", domain.RoleCustomer)

	s.Run("found", func() {
		s.mockReviewService.EXPECT().
			GetByID(gomock.Any(), int64(5)).
			Return(&domain.Review{
				ID:         5,
				CustomerID: 1,
				ItemID:     10,
				Rating:     4,
				Comment:    "Solid build quality",
				Status:     domain.ReviewStatusApproved,
			}, nil)

		res := s.request(http.MethodGet, "/reviews/5", customerToken, "")
		s.Equal(http.StatusOK, res.StatusCode)
		defer func() {
			s.Require().NoError(res.Body.Close())
		}()

		var response ReviewResponse
		s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
		s.Equal(int64(5), response.ID)
		s.Equal(int64(10), response.ItemID)
		s.Equal(4, response.Rating)
		s.Equal(domain.ReviewStatusApproved, response.Status)
	})

	s.Run("not found", func() {
		s.mockReviewService.EXPECT().
			GetByID(gomock.Any(), int64(99)).
			Return(nil, domain.ErrRecordNotFound)

		res := s.request(http.MethodGet, "/reviews/99", customerToken, "")
		s.Equal(http.StatusNotFound, res.StatusCode)
		s.Equal("Review not found", s.decodeBody(res)["error"])
	})
}

func (s *ReviewsHandlerTestSuite) TestCustomerReviews() {
	customerToken := s.token("alice", domain.RoleCustomer)

	s.mockCustomers.EXPECT().
		LookupCustomer(gomock.Any(), "alice").
		Return(s.alice(), nil).Times(2)

	s.Run("has reviews", func() {
		s.mockReviewService.EXPECT().
			GetByCustomerID(gomock.Any(), int64(1)).
			Return([]domain.Review{
				{ID: 5, CustomerID: 1, ItemID: 10, Rating: 4},
				{ID: 6, CustomerID: 1, ItemID: 11, Rating: 2},
			}, nil)

		res := s.request(http.MethodGet, "/reviews/customer/", customerToken, "")
		s.Equal(http.StatusOK, res.StatusCode)
		defer func() {
			s.Require().NoError(res.Body.Close())
		}()

		var response []ReviewResponse
		s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
		s.Require().Len(response, 2)
		s.Equal(int64(10), response[0].ItemID)
		s.Equal(int64(11), response[1].ItemID)
	})

	s.Run("no reviews", func() {
		s.mockReviewService.EXPECT().
			GetByCustomerID(gomock.Any(), int64(1)).
			Return(nil, nil)

		res := s.request(http.MethodGet, "/reviews/customer/", customerToken, "")
		s.Equal(http.StatusNotFound, res.StatusCode)
		s.Equal("No reviews found for this customer", s.decodeBody(res)["message"])
	})
}

func (s *ReviewsHandlerTestSuite) TestProductReviews() {
	customerToken := s.token("alice", domain.RoleCustomer)

	s.Run("has reviews", func() {
		s.mockReviewService.EXPECT().
			GetByItemID(gomock.Any(), int64(10)).
			Return([]domain.Review{
				{ID: 5, CustomerID: 1, ItemID: 10, Rating: 4},
			}, nil)

		res := s.request(http.MethodGet, "/reviews/product/10", customerToken, "")
		s.Equal(http.StatusOK, res.StatusCode)
		defer func() {
			s.Require().NoError(res.Body.Close())
		}()

		var response []ReviewResponse
		s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
		s.Require().Len(response, 1)
		s.Equal(int64(5), response[0].ID)
	})

	s.Run("no reviews", func() {
		s.mockReviewService.EXPECT().
			GetByItemID(gomock.Any(), int64(11)).
			Return([]domain.Review{}, nil)

		res := s.request(http.MethodGet, "/reviews/product/11", customerToken, "")
		s.Equal(http.StatusNotFound, res.StatusCode)
		s.Equal("No reviews found for this product", s.decodeBody(res)["message"])
	})

	s.Run("non numeric item id", func() {
		res := s.request(http.MethodGet, "/reviews/product/banana", customerToken, "")
		s.Equal(http.StatusNotFound, res.StatusCode)
		s.Equal("Item not found", s.decodeBody(res)["error"])
	})
}

func (s *ReviewsHandlerTestSuite) TestModeration() {
	customerToken := s.token("alice", domain.RoleCustomer)
	moderatorToken := s.token("mod", domain.RoleModerator)

	s.Run("customer flags a review", func() {
		s.mockReviewService.EXPECT().
			Flag(gomock.Any(), int64(5)).
			Return(&domain.Review{ID: 5, Status: domain.ReviewStatusFlagged}, nil)

		res := s.request(http.MethodPut, "/reviews/flag/5", customerToken, "")
		s.Equal(http.StatusOK, res.StatusCode)
		s.Equal("Review 5 flagged successfully", s.decodeBody(res)["message"])
	})

	s.Run("moderator approves a review", func() {
		s.mockReviewService.EXPECT().
			Approve(gomock.Any(), int64(5)).
			Return(&domain.Review{ID: 5, Status: domain.ReviewStatusApproved}, nil)

		res := s.request(http.MethodPut, "/reviews/approve/5", moderatorToken, "")
		s.Equal(http.StatusOK, res.StatusCode)
		s.Equal("Review 5 approved successfully", s.decodeBody(res)["message"])
	})

	s.Run("customer may not approve", func() {
		res := s.request(http.MethodPut, "/reviews/approve/5", customerToken, "")
		s.Equal(http.StatusForbidden, res.StatusCode)
		s.Require().NoError(res.Body.Close())
	})

	s.Run("flag missing review", func() {
		s.mockReviewService.EXPECT().
			Flag(gomock.Any(), int64(99)).
			Return(nil, domain.ErrRecordNotFound)

		res := s.request(http.MethodPut, "/reviews/flag/99", customerToken, "")
		s.Equal(http.StatusNotFound, res.StatusCode)
		s.Equal("Review not found", s.decodeBody(res)["error"])
	})
}
