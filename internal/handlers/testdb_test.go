package handlers

import (
	"fmt"
	"testing"
	"time"

	"github.com/farellandr/meetapp/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database named after the test so parallel
// tests never share state, and migrates the full schema into it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.File{}, &models.Meetup{}, &models.Enrollment{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// buildTestEngine mounts every resource route behind stub db/auth
// middleware, the same wiring the server does with the real JWT verifier.
// Validation-only tests may pass a nil db; the rejected request never
// reaches it.
func buildTestEngine(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("db", db)
		if userID != 0 {
			c.Set("user_id", userID)
		}
		c.Next()
	})
	r.GET("/meetups", ListMeetups)
	r.POST("/meetups", CreateMeetup)
	r.PUT("/meetups/:id", UpdateMeetup)
	r.DELETE("/meetups/:id", CancelMeetup)
	r.GET("/enrollments", ListEnrollments)
	r.POST("/enrollments", CreateEnrollment)
	r.DELETE("/enrollments/:id", CancelEnrollment)
	return r
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, PasswordHash: "irrelevant"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedFile(t *testing.T, db *gorm.DB, path string) models.File {
	t.Helper()
	file := models.File{Name: path, Path: path}
	if err := db.Create(&file).Error; err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}
	return file
}

func seedMeetup(t *testing.T, db *gorm.DB, userID, bannerID uint, date time.Time) models.Meetup {
	t.Helper()
	meetup := models.Meetup{
		Title:        "Go Meetup",
		Description:  "Monthly talks",
		Localization: "Downtown",
		Date:         date,
		UserID:       userID,
		BannerID:     bannerID,
	}
	if err := db.Create(&meetup).Error; err != nil {
		t.Fatalf("failed to seed meetup: %v", err)
	}
	return meetup
}

func seedEnrollment(t *testing.T, db *gorm.DB, userID, meetupID uint) models.Enrollment {
	t.Helper()
	enrollment := models.Enrollment{UserID: userID, MeetupID: meetupID}
	if err := db.Create(&enrollment).Error; err != nil {
		t.Fatalf("failed to seed enrollment: %v", err)
	}
	return enrollment
}
