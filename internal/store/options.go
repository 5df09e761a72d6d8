package store

import (
	"gorm.io/gorm"
)

type BaseQuerier struct {
	QueryFn []func(tx *gorm.DB) *gorm.DB
}

type ReportQueryFilter BaseQuerier

func NewReportQueryFilter() *ReportQueryFilter {
	return &ReportQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (qf *ReportQueryFilter) ByWorkDir(workDir string) *ReportQueryFilter {
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("work_dir = ?", workDir)
	})
	return qf
}

func (qf *ReportQueryFilter) WithLimit(limit int) *ReportQueryFilter {
	if limit <= 0 {
		return qf
	}
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Limit(limit)
	})
	return qf
}
