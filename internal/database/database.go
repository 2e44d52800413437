package database

import (
	"time"

	"github.com/gdg-garage/travel-booking-api/internal/config"
	"github.com/gdg-garage/travel-booking-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open opens the SQLite database at path and migrates the schema. The pool
// is held to a single connection: SQLite serializes writers anyway and an
// in-memory database exists only on the connection that created it.
func Open(path string, logger *zap.Logger) (*gorm.DB, error) {
	gl, err := newGormLogger(logger)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gl})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.Customer{}, &models.Hotel{}, &models.Booking{}, &models.TravelAgentBooking{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// newGormLogger reports slow queries and failed statements through zap.
// A lookup that finds no row is an expected outcome and is not logged.
func newGormLogger(logger *zap.Logger) (gormlogger.Interface, error) {
	w, err := zap.NewStdLogAt(logger.Named("gorm"), zap.WarnLevel)
	if err != nil {
		return nil, err
	}
	return gormlogger.New(w, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	}), nil
}

func Connect(cfg *config.Config, logger *zap.Logger) *gorm.DB {
	db, err := Open(cfg.DatabasePath, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	return db
}
