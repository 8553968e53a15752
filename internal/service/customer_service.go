package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/internal/tokens"
	"github.com/fsdevblog/groph-shop/pkg/uow"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const JWTTokenExpire = 1 * time.Hour

// Реквизиты дефолтного администратора, создаваемого при первом старте.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

type CustomerService struct {
	uow            uow.UOW
	customerRepo   CustomerRepository
	jwtTokenSecret []byte
}

func NewCustomerService(u uow.UOW, jwtTokenSecret []byte) (*CustomerService, error) {
	customerRepo, repoErr :=
		uow.GetRepositoryAs[CustomerRepository](u, uow.RepositoryName(repoargs.CustomerRepoName))
	if repoErr != nil {
		return nil, repoErr
	}
	return &CustomerService{
		uow:            u,
		customerRepo:   customerRepo,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterCustomerArgs struct {
	FullName      string
	Username      string
	Password      string
	Age           int
	Address       string
	Gender        string
	MaritalStatus string
}

// Register создает клиента с нулевым кошельком и ролью customer. Если username занят,
// вернется ошибка domain.ErrDuplicateKey.
func (s *CustomerService) Register(ctx context.Context, args RegisterCustomerArgs) (*domain.Customer, error) {
	password, hashErr := s.hashPassword(args.Password)
	if hashErr != nil {
		return nil, fmt.Errorf("registering customer: %s", hashErr.Error())
	}

	customer, createErr := s.customerRepo.Create(ctx, repoargs.CreateCustomer{
		FullName:      args.FullName,
		Username:      args.Username,
		Password:      password,
		Age:           args.Age,
		Address:       args.Address,
		Gender:        args.Gender,
		MaritalStatus: args.MaritalStatus,
		Wallet:        decimal.Zero,
		Role:          domain.RoleCustomer,
	})
	if createErr != nil {
		return nil, fmt.Errorf("registering customer: %w", createErr)
	}
	return customer, nil
}

// Login проверяет пару логин/пароль и выпускает jwt токен с ролью клиента.
// При неверных реквизитах возвращает domain.ErrRecordNotFound или domain.ErrPasswordMissMatch.
func (s *CustomerService) Login(ctx context.Context, username, password string) (*domain.Customer, string, error) {
	customer, findErr := s.customerRepo.FindByUsername(ctx, username)
	if findErr != nil {
		return nil, "", findErr //nolint:wrapcheck
	}

	if !s.comparePasswords(customer.Password, password) {
		return nil, "", domain.ErrPasswordMissMatch
	}

	token, tokenErr := tokens.GenerateUserJWT(customer.Username, customer.Role, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("login: %s", tokenErr.Error())
	}
	return customer, token, nil
}

func (s *CustomerService) GetByUsername(ctx context.Context, username string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return customer, nil
}

func (s *CustomerService) GetAll(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return customers, nil
}

func (s *CustomerService) Update(
	ctx context.Context,
	username string,
	args repoargs.UpdateCustomer,
) (*domain.Customer, error) {
	customer, err := s.customerRepo.Update(ctx, username, args)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return customer, nil
}

func (s *CustomerService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	customer, findErr := s.customerRepo.FindByUsername(ctx, username)
	if findErr != nil {
		return findErr //nolint:wrapcheck
	}
	if !s.comparePasswords(customer.Password, oldPassword) {
		return domain.ErrPasswordMissMatch
	}
	hash, hashErr := s.hashPassword(newPassword)
	if hashErr != nil {
		return fmt.Errorf("changing password: %s", hashErr.Error())
	}
	return s.customerRepo.UpdatePassword(ctx, username, hash) //nolint:wrapcheck
}

func (s *CustomerService) Delete(ctx context.Context, username string) error {
	return s.customerRepo.Delete(ctx, username) //nolint:wrapcheck
}

// CreditWallet пополняет кошелек клиента. Возвращает новый баланс.
func (s *CustomerService) CreditWallet(
	ctx context.Context,
	username string,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidQuantity
	}
	balance, err := s.customerRepo.CreditWallet(ctx, username, amount)
	if err != nil {
		return decimal.Zero, err //nolint:wrapcheck
	}
	return balance, nil
}

// DebitWallet списывает средства с кошелька клиента. Проверку достаточности средств
// выполняет репозиторий атомарным запросом - это та самая повторная проверка, на которую
// полагается сервис продаж при параллельных покупках.
func (s *CustomerService) DebitWallet(
	ctx context.Context,
	username string,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidQuantity
	}
	balance, err := s.customerRepo.DebitWallet(ctx, username, amount)
	if err != nil {
		return decimal.Zero, err //nolint:wrapcheck
	}
	return balance, nil
}

// EnsureDefaultAdmin создает дефолтного администратора, если его еще нет.
func (s *CustomerService) EnsureDefaultAdmin(ctx context.Context) error {
	if _, err := s.customerRepo.FindByUsername(ctx, defaultAdminUsername); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrRecordNotFound) {
		return fmt.Errorf("ensure default admin: %w", err)
	}

	hash, hashErr := s.hashPassword(defaultAdminPassword)
	if hashErr != nil {
		return fmt.Errorf("ensure default admin: %s", hashErr.Error())
	}

	_, createErr := s.customerRepo.Create(ctx, repoargs.CreateCustomer{
		FullName:      "Admin User",
		Username:      defaultAdminUsername,
		Password:      hash,
		Age:           0,
		Address:       "Admin's address",
		Gender:        "other",
		MaritalStatus: "single",
		Wallet:        decimal.Zero,
		Role:          domain.RoleAdmin,
	})
	if createErr != nil && !errors.Is(createErr, domain.ErrDuplicateKey) {
		return fmt.Errorf("ensure default admin: %w", createErr)
	}
	return nil
}

func (s *CustomerService) hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(bytes), nil
}

func (s *CustomerService) comparePasswords(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
