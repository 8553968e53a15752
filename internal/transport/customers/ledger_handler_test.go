package customers

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/logger"
	"github.com/fsdevblog/groph-shop/internal/tokens"
	"github.com/fsdevblog/groph-shop/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-shop/internal/transport/customers/mocks"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type LedgerHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCustomerService *mocks.MockCustomerServicer
	mockOrders          *mocks.MockOrderLister
	mockWishlist        *mocks.MockWishlistLister
	jwtSecret           []byte
}

func TestLedgerHandlerSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}

func (s *LedgerHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockCustomerService = mocks.NewMockCustomerServicer(mockCtrl)
	s.mockOrders = mocks.NewMockOrderLister(mockCtrl)
	s.mockWishlist = mocks.NewMockWishlistLister(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:          logger.New(io.Discard),
		CustomerService: s.mockCustomerService,
		Orders:          s.mockOrders,
		Wishlist:        s.mockWishlist,
		JWTSecretKey:    s.jwtSecret,
	})
}

func (s *LedgerHandlerTestSuite) token(username string, role domain.RoleType) string {
	token, err := tokens.GenerateUserJWT(username, role, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

func (s *LedgerHandlerTestSuite) get(url, token string) *http.Response {
	s.T().Helper()

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    url,
	}, testutils.WithBearer(token))
	s.Require().NoError(err)
	return res
}

func (s *LedgerHandlerTestSuite) TestOrders() {
	aliceToken := s.token("alice", domain.RoleCustomer)

	s.Run("lists purchases", func() {
		s.mockCustomerService.EXPECT().
			GetByUsername(gomock.Any(), "alice").
			Return(&domain.Customer{ID: 1, Username: "alice"}, nil)
		s.mockOrders.EXPECT().
			GetByCustomerID(gomock.Any(), int64(1)).
			Return([]domain.Order{
				{ID: 42, CustomerID: 1, ItemID: 10, Quantity: 2},
				{ID: 43, CustomerID: 1, ItemID: 11, Quantity: 1},
			}, nil)

		res := s.get("/customers/alice/orders", aliceToken)
		s.Equal(http.StatusOK, res.StatusCode)
		defer func() {
			s.Require().NoError(res.Body.Close())
		}()

		var body struct {
			Orders []OrderResponse `json:"orders"`
		}
		s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
		s.Require().Len(body.Orders, 2)
		s.Equal(int64(42), body.Orders[0].OrderID)
		s.Equal(int64(10), body.Orders[0].ItemID)
		s.Equal(2, body.Orders[0].Quantity)
	})

	s.Run("no purchases yet", func() {
		s.mockCustomerService.EXPECT().
			GetByUsername(gomock.Any(), "alice").
			Return(&domain.Customer{ID: 1, Username: "alice"}, nil)
		s.mockOrders.EXPECT().
			GetByCustomerID(gomock.Any(), int64(1)).
			Return(nil, nil)

		res := s.get("/customers/alice/orders", aliceToken)
		s.Equal(http.StatusOK, res.StatusCode)
		defer func() {
			s.Require().NoError(res.Body.Close())
		}()

		var body struct {
			Orders []OrderResponse `json:"orders"`
		}
		s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
		s.Empty(body.Orders)
	})

	s.Run("foreign ledger", func() {
		res := s.get("/customers/bob/orders", aliceToken)
		s.Equal(http.StatusBadRequest, res.StatusCode)
		s.Require().NoError(res.Body.Close())
	})

	s.Run("admin reads anyone", func() {
		s.mockCustomerService.EXPECT().
			GetByUsername(gomock.Any(), "alice").
			Return(&domain.Customer{ID: 1, Username: "alice"}, nil)
		s.mockOrders.EXPECT().
			GetByCustomerID(gomock.Any(), int64(1)).
			Return([]domain.Order{{ID: 42, CustomerID: 1, ItemID: 10, Quantity: 2}}, nil)

		res := s.get("/customers/alice/orders", s.token("admin", domain.RoleAdmin))
		s.Equal(http.StatusOK, res.StatusCode)
		s.Require().NoError(res.Body.Close())
	})

	s.Run("unknown customer", func() {
		bobToken := s.token("bob", domain.RoleCustomer)
		s.mockCustomerService.EXPECT().
			GetByUsername(gomock.Any(), "bob").
			Return(nil, domain.ErrRecordNotFound)

		res := s.get("/customers/bob/orders", bobToken)
		s.Equal(http.StatusNotFound, res.StatusCode)
		s.Require().NoError(res.Body.Close())
	})
}

func (s *LedgerHandlerTestSuite) TestWishlist() {
	aliceToken := s.token("alice", domain.RoleCustomer)

	s.Run("lists entries", func() {
		s.mockCustomerService.EXPECT().
			GetByUsername(gomock.Any(), "alice").
			Return(&domain.Customer{ID: 1, Username: "alice"}, nil)
		s.mockWishlist.EXPECT().
			GetByCustomerID(gomock.Any(), int64(1)).
			Return([]domain.WishlistItem{
				{ID: 3, CustomerID: 1, ItemID: 10},
			}, nil)

		res := s.get("/customers/alice/wishlist", aliceToken)
		s.Equal(http.StatusOK, res.StatusCode)
		defer func() {
			s.Require().NoError(res.Body.Close())
		}()

		var body struct {
			Wishlist []WishlistItemResponse `json:"wishlist"`
		}
		s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
		s.Require().Len(body.Wishlist, 1)
		s.Equal(int64(3), body.Wishlist[0].WishlistID)
		s.Equal(int64(10), body.Wishlist[0].ItemID)
	})

	s.Run("foreign wishlist", func() {
		res := s.get("/customers/bob/wishlist", aliceToken)
		s.Equal(http.StatusBadRequest, res.StatusCode)
		s.Require().NoError(res.Body.Close())
	})
}
