package app

import (
	"fmt"

	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/internal/service"
	"github.com/fsdevblog/groph-shop/internal/transport/customers"
	"github.com/fsdevblog/groph-shop/pkg/uow"
)

// RunCustomers поднимает сервис клиентов: регистрация, аутентификация, профили и
// кошельки. При старте создается дефолтный администратор.
func (a *App) RunCustomers() error {
	notifyCtx, stop := notifyContext()
	defer stop()

	a.Logger.Infof("Starting customers service with config: %+v", a.Config)
	conn, unitOfWork, bootErr := a.bootstrap(notifyCtx)
	if bootErr != nil {
		return fmt.Errorf("run customers: %s", bootErr.Error())
	}
	defer conn.Close()

	customerService, svcErr := service.NewCustomerService(unitOfWork, []byte(a.Config.JWTSecret))
	if svcErr != nil {
		return fmt.Errorf("run customers: %s", svcErr.Error())
	}
	if adminErr := customerService.EnsureDefaultAdmin(notifyCtx); adminErr != nil {
		return fmt.Errorf("run customers: %s", adminErr.Error())
	}

	orderRepo, orderRepoErr := uow.GetRepositoryAs[customers.OrderLister](
		unitOfWork, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return fmt.Errorf("run customers: %s", orderRepoErr.Error())
	}
	wishlistRepo, wishlistRepoErr := uow.GetRepositoryAs[customers.WishlistLister](
		unitOfWork, uow.RepositoryName(repoargs.WishlistRepoName))
	if wishlistRepoErr != nil {
		return fmt.Errorf("run customers: %s", wishlistRepoErr.Error())
	}

	router := customers.New(customers.RouterArgs{
		Logger:          a.Logger,
		CustomerService: customerService,
		Orders:          orderRepo,
		Wishlist:        wishlistRepo,
		DB:              conn,
		JWTSecretKey:    []byte(a.Config.JWTSecret),
	})

	return a.serve(notifyCtx, router)
}
