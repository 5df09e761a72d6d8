package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Report is one archived aggregation of an elastic work directory.
type Report struct {
	ID            uuid.UUID                          `gorm:"primaryKey;column:id;type:VARCHAR(255);" json:"id"`
	CreatedAt     time.Time                          `gorm:"not null;autoCreateTime" json:"created_at"`
	WorkDir       string                             `gorm:"not null;index:reports_work_dir_idx" json:"work_dir"`
	Params        *JSONField[map[string]interface{}] `gorm:"type:text" json:"params,omitempty"`
	ElasticTensor *JSONField[[]float64]              `gorm:"type:text;not null" json:"elastic_tensor"`
	BV            float64                            `gorm:"column:bv" json:"BV"`
	GV            float64                            `gorm:"column:gv" json:"GV"`
	EV            float64                            `gorm:"column:ev" json:"EV"`
	UV            float64                            `gorm:"column:uv" json:"uV"`
}

type ReportList []Report

func (r Report) String() string {
	val, _ := json.Marshal(r)
	return string(val)
}
