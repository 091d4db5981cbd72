package models

import (
	"time"
)

type Enrollment struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	User       *User      `json:"user,omitempty"`
	MeetupID   uint       `gorm:"not null;index" json:"meetup_id"`
	Meetup     *Meetup    `json:"meetup,omitempty"`
	CanceledAt *time.Time `json:"canceled_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
