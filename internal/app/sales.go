package app

import (
	"fmt"

	"github.com/fsdevblog/groph-shop/internal/service"
	"github.com/fsdevblog/groph-shop/internal/transport/sales"
	"github.com/fsdevblog/groph-shop/internal/transport/upstream/customerdir"
	"github.com/fsdevblog/groph-shop/internal/transport/upstream/invstore"
)

// RunSales поднимает сервис продаж: оркестратор покупок, список желаний и
// агрегированный health.
func (a *App) RunSales() error {
	notifyCtx, stop := notifyContext()
	defer stop()

	a.Logger.Infof("Starting sales service with config: %+v", a.Config)
	conn, unitOfWork, bootErr := a.bootstrap(notifyCtx)
	if bootErr != nil {
		return fmt.Errorf("run sales: %s", bootErr.Error())
	}
	defer conn.Close()

	customers := customerdir.New(a.Config.CustomerServiceAddress)
	inventory := invstore.New(a.Config.InventoryServiceAddress)

	orderService, orderErr := service.NewOrderService(unitOfWork, customers, inventory, a.Logger)
	if orderErr != nil {
		return fmt.Errorf("run sales: %s", orderErr.Error())
	}
	wishlistService, wishlistErr := service.NewWishlistService(unitOfWork, customers, inventory)
	if wishlistErr != nil {
		return fmt.Errorf("run sales: %s", wishlistErr.Error())
	}

	router := sales.New(sales.RouterArgs{
		Logger:          a.Logger,
		OrderService:    orderService,
		WishlistService: wishlistService,
		DB:              conn,
		CustomerHealth:  customers,
		InventoryHealth: inventory,
		JWTSecretKey:    []byte(a.Config.JWTSecret),
	})

	return a.serve(notifyCtx, router)
}
