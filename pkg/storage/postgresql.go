package storage

import (
	"fmt"
	"log/slog"

	"github.com/eventdesk/event-manager/pkg/config"
	"github.com/eventdesk/event-manager/pkg/model"
	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase(c config.Postgresql, logger *slog.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable", c.Host, c.Username, c.Password, c.DatabaseName, c.Port)

	databaseConfig := gorm.Config{
		Logger: slogGorm.New(
			slogGorm.WithHandler(logger.Handler()),
		),
		// TranslateError turns driver specific failures into gorm sentinel
		// errors such as [gorm.ErrDuplicatedKey]
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), &databaseConfig)
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Event{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
