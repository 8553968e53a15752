package app

import (
	"fmt"

	"github.com/fsdevblog/groph-shop/internal/service"
	"github.com/fsdevblog/groph-shop/internal/transport/inventory"
)

// RunInventory поднимает сервис склада: каталог, карточки товаров и остатки.
func (a *App) RunInventory() error {
	notifyCtx, stop := notifyContext()
	defer stop()

	a.Logger.Infof("Starting inventory service with config: %+v", a.Config)
	conn, unitOfWork, bootErr := a.bootstrap(notifyCtx)
	if bootErr != nil {
		return fmt.Errorf("run inventory: %s", bootErr.Error())
	}
	defer conn.Close()

	itemService, svcErr := service.NewItemService(unitOfWork)
	if svcErr != nil {
		return fmt.Errorf("run inventory: %s", svcErr.Error())
	}

	router := inventory.New(inventory.RouterArgs{
		Logger:       a.Logger,
		ItemService:  itemService,
		DB:           conn,
		JWTSecretKey: []byte(a.Config.JWTSecret),
	})

	return a.serve(notifyCtx, router)
}
