package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SearchHistory records one mood query and the destinations recommended
// for it. Rating is nil until the user scores the recommendation.
type SearchHistory struct {
	BaseModel
	AccountID    uuid.UUID      `gorm:"type:uuid;index" json:"account_id"`
	Mood         string         `gorm:"size:50" json:"mood"`
	Query        string         `gorm:"type:text" json:"query"`
	Destinations pq.StringArray `gorm:"type:text[]" json:"destinations"`
	Rating       *int           `json:"rating"`
	IsFavorite   bool           `gorm:"default:false" json:"is_favorite"`
}
