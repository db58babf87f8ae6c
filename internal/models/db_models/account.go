package db_models

type Account struct {
	BaseModel
	Name         string `gorm:"size:255" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	LastLoginAt  int64  `json:"last_login_at"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	Searches    []SearchHistory `gorm:"foreignKey:AccountID" json:"-"`
	Itineraries []Itinerary     `gorm:"foreignKey:AccountID" json:"-"`
}
