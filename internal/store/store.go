package store

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dptools/elastic/internal/store/model"
)

// Store is the report archive.
type Store interface {
	NewTransactionContext(ctx context.Context) (context.Context, error)
	Report() Report
	InitialMigration(ctx context.Context) error
	Close() error
}

type DataStore struct {
	db     *gorm.DB
	report Report
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		db:     db,
		report: NewReportStore(db),
	}
}

func (s *DataStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return newTransactionContext(ctx, s.db, zap.S().Named("store"))
}

func (s *DataStore) Report() Report {
	return s.report
}

// InitialMigration creates or updates the tables.
func (s *DataStore) InitialMigration(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&model.Report{})
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
