package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dptools/elastic/internal/store/model"
)

type Report interface {
	List(ctx context.Context, filter *ReportQueryFilter) (model.ReportList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Report, error)
	Create(ctx context.Context, report model.Report) (*model.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReportStore struct {
	db *gorm.DB
}

// Make sure we conform to Report interface
var _ Report = (*ReportStore)(nil)

func NewReportStore(db *gorm.DB) Report {
	return &ReportStore{db: db}
}

// List returns the newest reports first.
func (r *ReportStore) List(ctx context.Context, filter *ReportQueryFilter) (model.ReportList, error) {
	var reports model.ReportList
	tx := r.getDB(ctx).Model(&reports).Order("created_at DESC")

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	result := tx.Find(&reports)
	if result.Error != nil {
		return nil, result.Error
	}
	return reports, nil
}

func (r *ReportStore) Get(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	var report model.Report
	result := r.getDB(ctx).First(&report, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &report, nil
}

func (r *ReportStore) Create(ctx context.Context, report model.Report) (*model.Report, error) {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	result := r.getDB(ctx).Create(&report)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return r.Get(ctx, report.ID)
}

func (r *ReportStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.getDB(ctx).Unscoped().Delete(&model.Report{}, "id = ?", id.String())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return nil
}

func (r *ReportStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}
