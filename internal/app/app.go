// Package app собирает сервисы магазина: каждая точка входа поднимает общий слой
// хранения и свой http роутер.
package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/groph-shop/internal/config"
	"github.com/fsdevblog/groph-shop/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/pkg/uow"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// bootstrap поднимает соединение с базой (с миграциями) и unit of work со всеми
// зарегистрированными репозиториями. Закрытие пула на вызывающем.
func (a *App) bootstrap(ctx context.Context) (*pgxpool.Pool, *uow.UnitOfWork, error) {
	conn, connErr := pgrepo.Connect(ctx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return nil, nil, fmt.Errorf("bootstrap: %s", connErr.Error())
	}

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("bootstrap: %s", uowErr.Error())
	}
	return conn, unitOfWork, nil
}

// serve запускает роутер и блокируется до сигнала остановки или ошибки сервера.
func (a *App) serve(ctx context.Context, router *gin.Engine) error {
	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func notifyContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.CustomerRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewCustomerRepository(dbtx) },
		repoargs.ItemRepoName:     func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewItemRepository(dbtx) },
		repoargs.OrderRepoName:    func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewOrderRepository(dbtx) },
		repoargs.WishlistRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewWishlistRepository(dbtx) },
		repoargs.ReviewRepoName:   func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewReviewRepository(dbtx) },
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
