package store

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dptools/elastic/internal/config"
)

const (
	dbTypePostgres = "pgsql"

	maxIdleConns = 2
	maxOpenConns = 10
)

// InitDB opens the report database selected by cfg: postgres for "pgsql",
// otherwise the sqlite file named by cfg.Database.Name.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	log := zap.S().Named("gorm")

	db, err := gorm.Open(dialector(cfg), &gorm.Config{Logger: sqlLogger(), TranslateError: true})
	if err != nil {
		log.Errorf("failed to connect database: %v", err)
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Errorf("failed to configure connections: %v", err)
		return nil, err
	}
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)

	log.Debugf("connected to %s database %s", db.Dialector.Name(), cfg.Database.Name)
	return db, nil
}

func dialector(cfg *config.Config) gorm.Dialector {
	if cfg.Database.Type != dbTypePostgres {
		return sqlite.Open(cfg.Database.Name)
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s",
		cfg.Database.Hostname, cfg.Database.Port, cfg.Database.User, cfg.Database.Password)
	if cfg.Database.Name != "" {
		dsn += " dbname=" + cfg.Database.Name
	}
	return postgres.Open(dsn)
}

// sqlLogger reports slow statements and errors only.
func sqlLogger() logger.Interface {
	out := logrus.New()
	out.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	return logger.New(out, logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		ParameterizedQueries:      true,
	})
}
