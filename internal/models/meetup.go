package models

import (
	"time"
)

type Meetup struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `gorm:"not null" json:"description"`
	Localization string     `gorm:"not null" json:"localization"`
	Date         time.Time  `gorm:"not null;index" json:"date"`
	CanceledAt   *time.Time `json:"canceled_at"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	User         *User      `json:"user,omitempty"`
	BannerID     uint       `gorm:"not null" json:"banner_id"`
	Banner       *File      `gorm:"foreignKey:BannerID" json:"banner,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsPast reports whether the meetup's scheduled date has already elapsed.
// It is computed against the given instant, never stored.
func (meetup *Meetup) IsPast(now time.Time) bool {
	return meetup.Date.Before(now)
}
