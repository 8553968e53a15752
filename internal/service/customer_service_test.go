package service

import (
	"testing"
	"time"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/internal/service/mocks"
	"github.com/fsdevblog/groph-shop/internal/tokens"
	"github.com/fsdevblog/groph-shop/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-shop/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockUOW          *uowmocks.MockUOW
	mockCustomerRepo *mocks.MockCustomerRepository
	jwtSecret        []byte
	customerService  *CustomerService
}

func TestCustomerServiceSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}

func (s *CustomerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockCustomerRepo = mocks.NewMockCustomerRepository(s.mockCtrl)

	s.jwtSecret = []byte("secret")

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CustomerRepoName)).
		Return(s.mockCustomerRepo, nil).AnyTimes()

	customerService, servErr := NewCustomerService(s.mockUOW, s.jwtSecret)
	s.Require().NoError(servErr)
	s.customerService = customerService
}

func (s *CustomerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *CustomerServiceTestSuite) hash(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)
	return string(bytes)
}

func (s *CustomerServiceTestSuite) TestRegister() {
	args := RegisterCustomerArgs{
		FullName:      "Alice Smith",
		Username:      "alice",
		Password:      "secret123",
		Age:           30,
		Address:       "10 Main St",
		Gender:        "female",
		MaritalStatus: "single",
	}

	created := domain.Customer{
		ID:        1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		FullName:  args.FullName,
		Username:  args.Username,
		Wallet:    decimal.Zero,
		Role:      domain.RoleCustomer,
	}

	s.mockCustomerRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, createArgs repoargs.CreateCustomer) (*domain.Customer, error) {
			// Пароль хешируется до записи, роль и кошелек выставляются сервисом.
			s.NotEqual(args.Password, createArgs.Password)
			s.NoError(bcrypt.CompareHashAndPassword([]byte(createArgs.Password), []byte(args.Password)))
			s.Equal(domain.RoleCustomer, createArgs.Role)
			s.True(createArgs.Wallet.IsZero())
			return &created, nil
		})

	customer, err := s.customerService.Register(s.T().Context(), args)

	s.Require().NoError(err)
	s.Equal(&created, customer)
}

func (s *CustomerServiceTestSuite) TestRegisterDuplicateUsername() {
	s.mockCustomerRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)

	customer, err := s.customerService.Register(s.T().Context(), RegisterCustomerArgs{
		Username: "taken",
		Password: "secret123",
	})

	s.Require().ErrorIs(err, domain.ErrDuplicateKey)
	s.Nil(customer)
}

func (s *CustomerServiceTestSuite) TestLogin() {
	password := "secret123"
	saved := domain.Customer{
		ID:       1,
		Username: "alice",
		Password: s.hash(password),
		Role:     domain.RoleCustomer,
	}

	s.mockCustomerRepo.EXPECT().
		FindByUsername(gomock.Any(), "alice").
		Return(&saved, nil).Times(2)
	s.mockCustomerRepo.EXPECT().
		FindByUsername(gomock.Any(), "wrong").
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "ok", username: "alice", password: password},
		{name: "wrong username", username: "wrong", password: password, wantErr: domain.ErrRecordNotFound},
		{name: "wrong password", username: "alice", password: "nope", wantErr: domain.ErrPasswordMissMatch},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			customer, token, err := s.customerService.Login(s.T().Context(), t.username, t.password)

			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				s.Empty(token)
				return
			}

			s.Require().NoError(err)
			s.Equal(&saved, customer)

			// Токен выпускается с именем и ролью клиента.
			parsed, parseErr := tokens.ValidateUserJWT(token, s.jwtSecret)
			s.Require().NoError(parseErr)
			claims, ok := parsed.Claims.(*tokens.UserClaims)
			s.Require().True(ok)
			s.Equal("alice", claims.Username)
			s.Equal(domain.RoleCustomer, claims.Role)
		})
	}
}

func (s *CustomerServiceTestSuite) TestChangePassword() {
	oldPassword := "secret123"
	saved := domain.Customer{
		ID:       1,
		Username: "alice",
		Password: s.hash(oldPassword),
	}

	s.mockCustomerRepo.EXPECT().
		FindByUsername(gomock.Any(), "alice").
		Return(&saved, nil).Times(2)
	s.mockCustomerRepo.EXPECT().
		UpdatePassword(gomock.Any(), "alice", gomock.Any()).
		DoAndReturn(func(_ any, _ string, hash string) error {
			s.NoError(bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass99")))
			return nil
		})

	s.Run("ok", func() {
		s.NoError(s.customerService.ChangePassword(s.T().Context(), "alice", oldPassword, "newpass99"))
	})

	s.Run("wrong current password", func() {
		err := s.customerService.ChangePassword(s.T().Context(), "alice", "nope", "newpass99")
		s.Require().ErrorIs(err, domain.ErrPasswordMissMatch)
	})
}

func (s *CustomerServiceTestSuite) TestCreditWallet() {
	s.mockCustomerRepo.EXPECT().
		CreditWallet(gomock.Any(), "alice", decimal.NewFromInt(100)).
		Return(decimal.NewFromInt(600), nil)

	cases := []struct {
		name        string
		amount      decimal.Decimal
		wantBalance decimal.Decimal
		wantErr     error
	}{
		{name: "ok", amount: decimal.NewFromInt(100), wantBalance: decimal.NewFromInt(600)},
		{name: "zero amount", amount: decimal.Zero, wantErr: domain.ErrInvalidQuantity},
		{name: "negative amount", amount: decimal.NewFromInt(-5), wantErr: domain.ErrInvalidQuantity},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			balance, err := s.customerService.CreditWallet(s.T().Context(), "alice", t.amount)

			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}

			s.Require().NoError(err)
			s.True(t.wantBalance.Equal(balance))
		})
	}
}

func (s *CustomerServiceTestSuite) TestDebitWallet() {
	s.mockCustomerRepo.EXPECT().
		DebitWallet(gomock.Any(), "alice", decimal.NewFromInt(100)).
		Return(decimal.NewFromInt(400), nil)
	s.mockCustomerRepo.EXPECT().
		DebitWallet(gomock.Any(), "alice", decimal.NewFromInt(1000)).
		Return(decimal.Zero, domain.ErrInsufficientFunds)

	cases := []struct {
		name        string
		amount      decimal.Decimal
		wantBalance decimal.Decimal
		wantErr     error
	}{
		{name: "ok", amount: decimal.NewFromInt(100), wantBalance: decimal.NewFromInt(400)},
		{name: "insufficient funds", amount: decimal.NewFromInt(1000), wantErr: domain.ErrInsufficientFunds},
		{name: "zero amount", amount: decimal.Zero, wantErr: domain.ErrInvalidQuantity},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			balance, err := s.customerService.DebitWallet(s.T().Context(), "alice", t.amount)

			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}

			s.Require().NoError(err)
			s.True(t.wantBalance.Equal(balance))
		})
	}
}

func (s *CustomerServiceTestSuite) TestEnsureDefaultAdmin() {
	s.Run("already exists", func() {
		s.mockCustomerRepo.EXPECT().
			FindByUsername(gomock.Any(), "admin").
			Return(&domain.Customer{ID: 1, Username: "admin", Role: domain.RoleAdmin}, nil)

		s.NoError(s.customerService.EnsureDefaultAdmin(s.T().Context()))
	})

	s.Run("created on first start", func() {
		s.mockCustomerRepo.EXPECT().
			FindByUsername(gomock.Any(), "admin").
			Return(nil, domain.ErrRecordNotFound)
		s.mockCustomerRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, args repoargs.CreateCustomer) (*domain.Customer, error) {
				s.Equal("admin", args.Username)
				s.Equal(domain.RoleAdmin, args.Role)
				return &domain.Customer{ID: 1, Username: "admin", Role: domain.RoleAdmin}, nil
			})

		s.NoError(s.customerService.EnsureDefaultAdmin(s.T().Context()))
	})
}
