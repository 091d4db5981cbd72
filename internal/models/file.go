package models

import (
	"fmt"
	"os"
	"time"

	"gorm.io/gorm"
)

type File struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Path      string    `gorm:"unique;not null" json:"path"`
	URL       string    `gorm:"-" json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResolveURL derives the public location from the storage key. The URL is
// never persisted; it always reflects the current APP_URL.
func (file *File) ResolveURL() string {
	base := os.Getenv("APP_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return fmt.Sprintf("%s/files/%s", base, file.Path)
}

func (file *File) AfterFind(tx *gorm.DB) (err error) {
	file.URL = file.ResolveURL()
	return
}

func (file *File) AfterCreate(tx *gorm.DB) (err error) {
	file.URL = file.ResolveURL()
	return
}
