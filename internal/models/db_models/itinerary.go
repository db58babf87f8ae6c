package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Itinerary stores a saved day-by-day plan. DetailedPlan holds the full
// generated plan as jsonb so it round-trips unchanged through optimization.
type Itinerary struct {
	BaseModel
	AccountID    uuid.UUID      `gorm:"type:uuid;index" json:"account_id"`
	Title        string         `gorm:"size:255" json:"title"`
	Destination  string         `gorm:"size:255" json:"destination"`
	StartDate    time.Time      `json:"start_date"`
	EndDate      time.Time      `json:"end_date"`
	DurationDays int            `json:"duration_days"`
	Budget       string         `gorm:"size:100" json:"budget"`
	MoodTag      string         `gorm:"size:50" json:"mood_tag"`
	Description  string         `gorm:"type:text" json:"description"`
	DetailedPlan datatypes.JSON `gorm:"type:jsonb" json:"detailed_plan"`
	IsCompleted  bool           `gorm:"default:false" json:"is_completed"`
	IsFavorite   bool           `gorm:"default:false" json:"is_favorite"`
}
