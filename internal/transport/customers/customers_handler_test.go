package customers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/logger"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/internal/tokens"
	"github.com/fsdevblog/groph-shop/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-shop/internal/transport/customers/mocks"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CustomersHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCustomerService *mocks.MockCustomerServicer
	jwtSecret           []byte
}

func TestCustomersHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomersHandlerTestSuite))
}

func (s *CustomersHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockCustomerService = mocks.NewMockCustomerServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:          logger.New(io.Discard),
		CustomerService: s.mockCustomerService,
		JWTSecretKey:    s.jwtSecret,
	})
}

func (s *CustomersHandlerTestSuite) token(username string, role domain.RoleType) string {
	token, err := tokens.GenerateUserJWT(username, role, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

func (s *CustomersHandlerTestSuite) request(method, url, token, payload string) *http.Response {
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

func (s *CustomersHandlerTestSuite) alice() *domain.Customer {
	return &domain.Customer{
		ID:            1,
		FullName:      "Alice Liddell",
		Username:      "alice",
		Age:           30,
		Address:       "Wonderland 1",
		Gender:        "female",
		MaritalStatus: "single",
		Wallet:        decimal.NewFromInt(500),
		Role:          domain.RoleCustomer,
	}
}

func (s *CustomersHandlerTestSuite) TestIndex() {
	s.Run("admin lists everyone", func() {
		s.mockCustomerService.EXPECT().
			GetAll(gomock.Any()).
			Return([]domain.Customer{*s.alice()}, nil)

		res := s.request(http.MethodGet, "/customers", s.token("admin", domain.RoleAdmin), "")
		s.Equal(http.StatusOK, res.StatusCode)
		defer func() {
			s.Require().NoError(res.Body.Close())
		}()

		var response []CustomerResponse
		s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
		s.Require().Len(response, 1)
		s.Equal("alice", response[0].Username)
		s.True(decimal.NewFromInt(500).Equal(response[0].Wallet))
	})

	s.Run("customer is forbidden", func() {
		res := s.request(http.MethodGet, "/customers", s.token("alice", domain.RoleCustomer), "")
		s.Equal(http.StatusForbidden, res.StatusCode)
		s.Require().NoError(res.Body.Close())
	})
}

func (s *CustomersHandlerTestSuite) TestShow() {
	aliceToken := s.token("alice", domain.RoleCustomer)

	s.Run("own profile", func() {
		s.mockCustomerService.EXPECT().
			GetByUsername(gomock.Any(), "alice").
			Return(s.alice(), nil)

		res := s.request(http.MethodGet, "/customers/alice", aliceToken, "")
		s.Equal(http.StatusOK, res.StatusCode)
		defer func() {
			s.Require().NoError(res.Body.Close())
		}()

		var response CustomerResponse
		s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
		s.Equal(int64(1), response.ID)
		s.Equal("Alice Liddell", response.FullName)
	})

	s.Run("foreign profile", func() {
		res := s.request(http.MethodGet, "/customers/bob", aliceToken, "")
		s.Equal(http.StatusBadRequest, res.StatusCode)
		defer func() {
			s.Require().NoError(res.Body.Close())
		}()

		var body map[string]string
		s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
		s.Equal("Invalid user", body["error"])
	})

	s.Run("unknown customer", func() {
		s.mockCustomerService.EXPECT().
			GetByUsername(gomock.Any(), "ghost").
			Return(nil, domain.ErrRecordNotFound)

		res := s.request(http.MethodGet, "/customers/ghost", s.token("admin", domain.RoleAdmin), "")
		s.Equal(http.StatusNotFound, res.StatusCode)
		s.Require().NoError(res.Body.Close())
	})
}

func (s *CustomersHandlerTestSuite) TestUpdate() {
	aliceToken := s.token("alice", domain.RoleCustomer)

	s.Run("valid update", func() {
		s.mockCustomerService.EXPECT().
			Update(gomock.Any(), "alice", repoargs.UpdateCustomer{
				FullName:      "Alice Kingsleigh",
				Age:           31,
				Address:       "Wonderland 2",
				Gender:        "female",
				MaritalStatus: "married",
			}).
			Return(s.alice(), nil)

		payload := `{
			"fullname": "Alice Kingsleigh",
			"age": 31,
			"address": "Wonderland 2",
			"gender": "female",
			"marital_status": "married"
		}`
		res := s.request(http.MethodPut, "/customers/alice", aliceToken, payload)
		s.Equal(http.StatusOK, res.StatusCode)
		defer func() {
			s.Require().NoError(res.Body.Close())
		}()

		var body map[string]string
		s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
		s.Equal("Customer alice updated successfully", body["message"])
	})

	s.Run("underage", func() {
		payload := `{
			"fullname": "Alice Kingsleigh",
			"age": 12,
			"address": "Wonderland 2",
			"gender": "female",
			"marital_status": "married"
		}`
		res := s.request(http.MethodPut, "/customers/alice", aliceToken, payload)
		s.Equal(http.StatusBadRequest, res.StatusCode)
		s.Require().NoError(res.Body.Close())
	})

	s.Run("unknown gender", func() {
		payload := `{
			"fullname": "Alice Kingsleigh",
			"age": 31,
			"address": "Wonderland 2",
			"gender": "unicorn",
			"marital_status": "married"
		}`
		res := s.request(http.MethodPut, "/customers/alice", aliceToken, payload)
		s.Equal(http.StatusBadRequest, res.StatusCode)
		s.Require().NoError(res.Body.Close())
	})
}

func (s *CustomersHandlerTestSuite) TestChangePassword() {
	aliceToken := s.token("alice", domain.RoleCustomer)

	s.Run("valid change", func() {
		s.mockCustomerService.EXPECT().
			ChangePassword(gomock.Any(), "alice", "old-pass", "new-pass").
			Return(nil)

		payload := `{"current_password": "old-pass", "new_password": "new-pass"}`
		res := s.request(http.MethodPost, "/customers/alice/change-password", aliceToken, payload)
		s.Equal(http.StatusOK, res.StatusCode)
		defer func() {
			s.Require().NoError(res.Body.Close())
		}()

		var body map[string]string
		s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
		s.Equal("Password changed successfully", body["message"])
	})

	s.Run("wrong current password", func() {
		s.mockCustomerService.EXPECT().
			ChangePassword(gomock.Any(), "alice", "wrong", "new-pass").
			Return(domain.ErrPasswordMissMatch)

		payload := `{"current_password": "wrong", "new_password": "new-pass"}`
		res := s.request(http.MethodPost, "/customers/alice/change-password", aliceToken, payload)
		s.Equal(http.StatusBadRequest, res.StatusCode)
		defer func() {
			s.Require().NoError(res.Body.Close())
		}()

		var body map[string]string
		s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
		s.Equal("Invalid current password", body["error"])
	})

	s.Run("missing fields", func() {
		res := s.request(http.MethodPost, "/customers/alice/change-password", aliceToken, `{}`)
		s.Equal(http.StatusBadRequest, res.StatusCode)
		s.Require().NoError(res.Body.Close())
	})
}

func (s *CustomersHandlerTestSuite) TestDelete() {
	s.Run("self delete", func() {
		s.mockCustomerService.EXPECT().
			Delete(gomock.Any(), "alice").
			Return(nil)

		res := s.request(http.MethodDelete, "/customers/alice", s.token("alice", domain.RoleCustomer), "")
		s.Equal(http.StatusOK, res.StatusCode)
		defer func() {
			s.Require().NoError(res.Body.Close())
		}()

		var body map[string]string
		s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
		s.Equal("Customer alice deleted successfully", body["message"])
	})

	s.Run("unknown customer", func() {
		s.mockCustomerService.EXPECT().
			Delete(gomock.Any(), "ghost").
			Return(domain.ErrRecordNotFound)

		res := s.request(http.MethodDelete, "/customers/ghost", s.token("admin", domain.RoleAdmin), "")
		s.Equal(http.StatusNotFound, res.StatusCode)
		s.Require().NoError(res.Body.Close())
	})
}
