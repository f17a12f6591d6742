package specification

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by ID
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// PeriodEndsAfter keeps subscriptions whose billing period is still running at the given time
type PeriodEndsAfter struct {
	Time interface{}
}

func (s PeriodEndsAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("current_period_end > ?", s.Time)
}
