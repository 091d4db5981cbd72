package handlers

import (
	"net/http"
	"time"

	"github.com/farellandr/meetapp/internal/helpers"
	"github.com/farellandr/meetapp/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateEnrollmentRequest struct {
	MeetupID uint `json:"meetup_id" binding:"required"`
}

type EnrollmentMeetupView struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Localization string    `json:"localization"`
	Date         time.Time `json:"date"`
	Banner       FileView  `json:"banner"`
}

type EnrollmentView struct {
	CanceledAt *time.Time           `json:"canceled_at"`
	User       OrganizerView        `json:"user"`
	Meetup     EnrollmentMeetupView `json:"meetup"`
}

func newEnrollmentMeetupView(meetup *models.Meetup) EnrollmentMeetupView {
	if meetup == nil {
		return EnrollmentMeetupView{}
	}
	view := EnrollmentMeetupView{
		Title:        meetup.Title,
		Description:  meetup.Description,
		Localization: meetup.Localization,
		Date:         meetup.Date,
	}
	if banner := newFileView(meetup.Banner); banner != nil {
		view.Banner = *banner
	}
	return view
}

func newEnrollmentView(enrollment *models.Enrollment) EnrollmentView {
	return EnrollmentView{
		CanceledAt: enrollment.CanceledAt,
		User:       newOrganizerView(enrollment.User),
		Meetup:     newEnrollmentMeetupView(enrollment.Meetup),
	}
}

// AttendeeView is the cancel response's user projection: the attendee's
// name and nothing else.
type AttendeeView struct {
	Name string `json:"name"`
}

type CanceledEnrollmentView struct {
	ID         uint                 `json:"id"`
	UserID     uint                 `json:"user_id"`
	MeetupID   uint                 `json:"meetup_id"`
	CanceledAt *time.Time           `json:"canceled_at"`
	User       AttendeeView         `json:"user"`
	Meetup     EnrollmentMeetupView `json:"meetup"`
}

func newCanceledEnrollmentView(enrollment *models.Enrollment) CanceledEnrollmentView {
	view := CanceledEnrollmentView{
		ID:         enrollment.ID,
		UserID:     enrollment.UserID,
		MeetupID:   enrollment.MeetupID,
		CanceledAt: enrollment.CanceledAt,
		Meetup:     newEnrollmentMeetupView(enrollment.Meetup),
	}
	if enrollment.User != nil {
		view.User = AttendeeView{Name: enrollment.User.Name}
	}
	return view
}

func ListEnrollments(c *gin.Context) {
	page := c.DefaultQuery("page", "1")
	pageNum, err := helpers.StringToInt(page)
	if err != nil || pageNum < 1 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid page number.")
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var enrollments []models.Enrollment
	err = gormDB.
		Preload("User.Avatar").
		Preload("Meetup.Banner").
		Where("user_id = ? AND canceled_at IS NULL", userID).
		Limit(10).
		Offset((pageNum - 1) * 10).
		Find(&enrollments).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving enrollments.")
		return
	}

	views := make([]EnrollmentView, 0, len(enrollments))
	for i := range enrollments {
		views = append(views, newEnrollmentView(&enrollments[i]))
	}

	c.JSON(http.StatusOK, views)
}

func CreateEnrollment(c *gin.Context) {
	var req CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Validation fails")
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var user models.User
	if err := gormDB.Where("id = ?", userID).First(&user).Error; err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var meetup models.Meetup
	if err := gormDB.Where("id = ?", req.MeetupID).First(&meetup).Error; err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Meetup not found")
		return
	}

	enrollment := models.Enrollment{
		UserID:   user.ID,
		MeetupID: req.MeetupID,
	}

	if err := gormDB.Create(&enrollment).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create enrollment.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"enrollment": enrollment})
}

func CancelEnrollment(c *gin.Context) {
	enrollmentID := c.Param("id")

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var enrollment models.Enrollment
	if err := gormDB.Preload("User").Preload("Meetup.Banner").Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusBadRequest, "Enrollment not found")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding enrollment.")
		return
	}

	if !helpers.IsOwner(enrollment.UserID, userID.(uint)) {
		helpers.RespondWithError(c, http.StatusUnauthorized, "You don't have permission to cancel this enrollment")
		return
	}

	now := time.Now()
	enrollment.CanceledAt = &now

	if err := gormDB.Save(&enrollment).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel enrollment.")
		return
	}

	c.JSON(http.StatusOK, newCanceledEnrollmentView(&enrollment))
}
