package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/khyunjo1/paytalk-menu-service/internal/app/background"
	"github.com/khyunjo1/paytalk-menu-service/internal/app/setup"
	"github.com/khyunjo1/paytalk-menu-service/internal/delivery/httpapi"
	"github.com/khyunjo1/paytalk-menu-service/internal/domain"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/migrate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}

	if path := deps.Config.MenuDB.MigrationsPath; path != "" {
		if err := migrate.RunMigrations(deps.DB, path); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	handler := httpapi.NewMenuHandler(
		deps.MenuUsecase,
		deps.TemplateResolver,
		deps.StoreUsecase,
		domain.RealClock{},
	)
	handler.Register(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	tasks := background.NewBackgroundTasks(
		deps.MenuUsecase,
		time.Duration(deps.Config.Business.SweepIntervalSeconds)*time.Second,
	)
	tasks.StartAll(context.Background())

	addr := fmt.Sprintf("%s:%s", deps.Config.HTTPServer.Host, deps.Config.HTTPServer.Port)
	log.Printf("menu service started on %s\n", addr)
	if err := e.Start(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
