package main

import (
	"context"
	"errors"
	"os"

	"github.com/fsdevblog/groph-shop/internal/app"
	"github.com/fsdevblog/groph-shop/internal/config"
	"github.com/fsdevblog/groph-shop/internal/logger"
)

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)

	if err := app.New(conf, l).RunSales(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
