package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GoalStatus tracks progress on a goal.
type GoalStatus string

const (
	StatusNotStarted GoalStatus = "not started"
	StatusInProgress GoalStatus = "in progress"
	StatusCompleted  GoalStatus = "completed"
)

// Smart is the five-part SMART breakdown embedded in every goal.
// Wire names keep the original schema's spelling, including "achiveable".
type Smart struct {
	Specific   string `json:"smart_specific" gorm:"column:smart_specific;size:1000;not null" validate:"required"`
	Measurable string `json:"smart_measurable" gorm:"column:smart_measurable;size:1000;not null" validate:"required"`
	Achievable string `json:"smart_achiveable" gorm:"column:smart_achiveable;size:1000;not null" validate:"required"`
	Relevant   string `json:"smart_relevant" gorm:"column:smart_relevant;size:1000;not null" validate:"required"`
	TimeBound  string `json:"smart_timeBound" gorm:"column:smart_time_bound;size:1000;not null" validate:"required"`
}

// Goal represents a SMART goal record.
type Goal struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string     `json:"goal_title" gorm:"size:255;not null"`
	Description string     `json:"goal_description" gorm:"size:2000;default:''"`
	Smart       Smart      `json:"goal_smart" gorm:"embedded"`
	Status      GoalStatus `json:"goal_status" gorm:"size:20;default:'not started'"`
	Tags        []string   `json:"goal_tags" gorm:"serializer:json;type:json"`
	IsPublic    bool       `json:"goal_isPublic" gorm:"default:false"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID and defaults before creating the record.
func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.Status == "" {
		g.Status = StatusNotStarted
	}
	if g.Tags == nil {
		g.Tags = []string{}
	}
	return nil
}
