package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fanadium/backend/internal/controller"
	"github.com/fanadium/backend/internal/dto"
	"github.com/fanadium/backend/internal/repository"
	"github.com/fanadium/backend/internal/service"
	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	config := dto.LoadConfig()
	logrus.SetLevel(config.ParseLogLevel())

	// TranslateError maps the sqlite unique-constraint violation onto
	// gorm.ErrDuplicatedKey, which the vote ledger relies on.
	db, err := gorm.Open(sqlite.Open(config.DatabasePath), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Panic(err)
	}

	repositories := repository.NewRepositories(db)
	if err := repositories.Bootstrap(); err != nil {
		logrus.Panic(err)
	}

	services := service.NewServices(repositories)
	controllers := controller.NewControllers(services)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	controllers.Route(e)

	go func() {
		logrus.Infof("Listening on %s", config.HTTPAddress)
		if err := e.Start(config.HTTPAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logrus.Errorf("Server shutdown: %v", err)
	}
	if err := services.Broker().Close(); err != nil {
		logrus.Errorf("Broker close: %v", err)
	}
}
