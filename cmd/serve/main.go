// Package classification Event Manager Service.
//
// Personal calendar and event management service
//
// Terms Of Service:
//
// there are no TOS at this moment, use at your own risk we take no responsibility
//
//	Version: 0.1.0
//	License: TODO
//	Contact: <info@eventdesk.io> https://github.com/eventdesk/event-manager
//
//	Consumes:
//	  - application/json
//
//	Produces:
//	  - application/json
//
//	SecurityDefinitions:
//	  oauth2:
//	    type: oauth2
//	    tokenUrl: /tokens
//	    refreshUrl: /refresh
//	    flow: password
//
// swagger:meta
package main

import (
	"fmt"
	stdlog "log"
	"log/slog"
	"os"

	"github.com/eventdesk/event-manager/internal/handler"
	"github.com/eventdesk/event-manager/internal/log"
	"github.com/eventdesk/event-manager/internal/middleware"
	"github.com/eventdesk/event-manager/internal/server"
	"github.com/eventdesk/event-manager/pkg/calendar"
	"github.com/eventdesk/event-manager/pkg/config"
	"github.com/eventdesk/event-manager/pkg/event"
	"github.com/eventdesk/event-manager/pkg/storage"
	"github.com/eventdesk/event-manager/pkg/token"
	"github.com/eventdesk/event-manager/pkg/user"
)

func main() {
	if err := run(); err != nil {
		stdlog.Fatal(err)
	}
}

func run() error {
	cfg := config.New()

	logger := newLogger(cfg.PrettyLogging)
	slog.SetDefault(logger)

	if err := handler.RegisterValidation(); err != nil {
		return err
	}

	db, err := storage.NewDatabase(cfg.Postgresql, logger)
	if err != nil {
		return err
	}

	redisClient, err := storage.NewRedis(cfg.Redis)
	if err != nil {
		return err
	}

	userRepository := user.NewRepository(db)
	userService := user.NewService(userRepository)

	tokenRepository := token.NewRepository(redisClient)
	tokenService := token.NewService(
		logger,
		tokenRepository,
		cfg.Authentication.PrivateKey,
		cfg.Authentication.AccessTokenExpirationSeconds,
		cfg.Authentication.RefreshTokenSecretKey,
		cfg.Authentication.RefreshTokenExpirationSeconds,
	)

	userHandler := user.NewHandler(userService, tokenService)

	eventRepository := event.NewRepository(db)
	eventService := event.NewService(eventRepository)
	eventHandler := event.NewHandler(eventService)

	calendarHandler := calendar.NewHandler(eventService)

	authenticationMiddleware := middleware.NewAuthentication(cfg.Authentication.PublicKey(), userService)

	r := server.GetEngine(logger, cfg.BasePath, userHandler, eventHandler, calendarHandler, authenticationMiddleware)
	return r.Run(fmt.Sprintf(":%d", cfg.ServerPort))
}

func newLogger(pretty bool) *slog.Logger {
	var h slog.Handler
	if pretty {
		h = log.NewPrettyJSONHandler(os.Stdout, nil)
	} else {
		h = slog.NewJSONHandler(os.Stdout, nil)
	}
	return slog.New(log.New(h))
}
