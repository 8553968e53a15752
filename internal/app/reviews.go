package app

import (
	"fmt"

	"github.com/fsdevblog/groph-shop/internal/service"
	"github.com/fsdevblog/groph-shop/internal/transport/reviews"
	"github.com/fsdevblog/groph-shop/internal/transport/upstream/customerdir"
	"github.com/fsdevblog/groph-shop/internal/transport/upstream/invstore"
)

// RunReviews поднимает сервис отзывов: публикация, правка и модерация.
func (a *App) RunReviews() error {
	notifyCtx, stop := notifyContext()
	defer stop()

	a.Logger.Infof("Starting reviews service with config: %+v", a.Config)
	conn, unitOfWork, bootErr := a.bootstrap(notifyCtx)
	if bootErr != nil {
		return fmt.Errorf("run reviews: %s", bootErr.Error())
	}
	defer conn.Close()

	reviewService, svcErr := service.NewReviewService(unitOfWork)
	if svcErr != nil {
		return fmt.Errorf("run reviews: %s", svcErr.Error())
	}

	router := reviews.New(reviews.RouterArgs{
		Logger:        a.Logger,
		ReviewService: reviewService,
		Customers:     customerdir.New(a.Config.CustomerServiceAddress),
		Inventory:     invstore.New(a.Config.InventoryServiceAddress),
		DB:            conn,
		JWTSecretKey:  []byte(a.Config.JWTSecret),
	})

	return a.serve(notifyCtx, router)
}
