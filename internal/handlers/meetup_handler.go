package handlers

import (
	"net/http"
	"time"

	"github.com/farellandr/meetapp/internal/helpers"
	"github.com/farellandr/meetapp/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateMeetupRequest struct {
	BannerID     uint      `json:"banner_id" binding:"required"`
	Date         time.Time `json:"date" binding:"required"`
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description" binding:"required"`
	Localization string    `json:"localization" binding:"required"`
}

type UpdateMeetupRequest struct {
	BannerID     *uint      `json:"banner_id"`
	Date         *time.Time `json:"date"`
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Localization *string    `json:"localization"`
}

// FileView and the view structs below are explicit projections: listings
// only ever expose the whitelisted attributes, whatever the loaded records
// happen to carry.
type FileView struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

type OrganizerView struct {
	Name   string    `json:"name"`
	Avatar *FileView `json:"avatar"`
}

type MeetupView struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Localization string        `json:"localization"`
	Date         time.Time     `json:"date"`
	Past         bool          `json:"past"`
	User         OrganizerView `json:"user"`
	Banner       FileView      `json:"banner"`
}

func newFileView(file *models.File) *FileView {
	if file == nil || file.ID == 0 {
		return nil
	}
	return &FileView{Path: file.Path, URL: file.URL}
}

func newOrganizerView(user *models.User) OrganizerView {
	if user == nil {
		return OrganizerView{}
	}
	return OrganizerView{
		Name:   user.Name,
		Avatar: newFileView(user.Avatar),
	}
}

func newMeetupView(meetup *models.Meetup, now time.Time) MeetupView {
	view := MeetupView{
		Title:        meetup.Title,
		Description:  meetup.Description,
		Localization: meetup.Localization,
		Date:         meetup.Date,
		Past:         meetup.IsPast(now),
		User:         newOrganizerView(meetup.User),
	}
	if banner := newFileView(meetup.Banner); banner != nil {
		view.Banner = *banner
	}
	return view
}

// OrganizerContactView is the cancel response's organizer projection: name
// and email only, matching what the cancellation flow shows the caller.
type OrganizerContactView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CanceledMeetupView struct {
	ID           uint                 `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Localization string               `json:"localization"`
	Date         time.Time            `json:"date"`
	CanceledAt   *time.Time           `json:"canceled_at"`
	UserID       uint                 `json:"user_id"`
	BannerID     uint                 `json:"banner_id"`
	User         OrganizerContactView `json:"user"`
	Banner       FileView             `json:"banner"`
}

func newCanceledMeetupView(meetup *models.Meetup) CanceledMeetupView {
	view := CanceledMeetupView{
		ID:           meetup.ID,
		Title:        meetup.Title,
		Description:  meetup.Description,
		Localization: meetup.Localization,
		Date:         meetup.Date,
		CanceledAt:   meetup.CanceledAt,
		UserID:       meetup.UserID,
		BannerID:     meetup.BannerID,
	}
	if meetup.User != nil {
		view.User = OrganizerContactView{Name: meetup.User.Name, Email: meetup.User.Email}
	}
	if banner := newFileView(meetup.Banner); banner != nil {
		view.Banner = *banner
	}
	return view
}

func ListMeetups(c *gin.Context) {
	page := c.DefaultQuery("page", "1")
	pageNum, err := helpers.StringToInt(page)
	if err != nil || pageNum < 1 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid page number.")
		return
	}

	searchDate := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		searchDate, err = helpers.ParseDay(dateStr)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid date format.")
			return
		}
	}
	dayStart, dayEnd := helpers.DayWindow(searchDate)

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var meetups []models.Meetup
	err = gormDB.
		Preload("User.Avatar").
		Preload("Banner").
		Where("canceled_at IS NULL AND date >= ? AND date < ?", dayStart, dayEnd).
		Order("date").
		Limit(10).
		Offset((pageNum - 1) * 10).
		Find(&meetups).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving meetups.")
		return
	}

	now := time.Now()
	views := make([]MeetupView, 0, len(meetups))
	for i := range meetups {
		views = append(views, newMeetupView(&meetups[i], now))
	}

	c.JSON(http.StatusOK, views)
}

func CreateMeetup(c *gin.Context) {
	var req CreateMeetupRequest
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

	var banner models.File
	if err := gormDB.Where("id = ?", req.BannerID).First(&banner).Error; err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Banner not found")
		return
	}

	if helpers.IsPastDate(req.Date, time.Now()) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Past date are not permitted")
		return
	}

	meetup := models.Meetup{
		Title:        req.Title,
		Description:  req.Description,
		Localization: req.Localization,
		Date:         req.Date,
		UserID:       user.ID,
		BannerID:     req.BannerID,
	}

	if err := gormDB.Create(&meetup).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create meetup.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"meetup": meetup})
}

func UpdateMeetup(c *gin.Context) {
	meetupID := c.Param("id")

	var req UpdateMeetupRequest
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

	var meetup models.Meetup
	if err := gormDB.Where("id = ?", meetupID).First(&meetup).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Meetup not found")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding meetup.")
		return
	}

	if !helpers.IsOwner(meetup.UserID, userID.(uint)) {
		helpers.RespondWithError(c, http.StatusUnauthorized, "You don't have permission to edit this appointment")
		return
	}

	// Edits freeze once the event date has elapsed, regardless of what new
	// date is supplied.
	if meetup.IsPast(time.Now()) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Past meetups are not editable")
		return
	}

	if req.BannerID != nil {
		var banner models.File
		if err := gormDB.Where("id = ?", *req.BannerID).First(&banner).Error; err != nil {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Banner not found")
			return
		}
	}

	if req.Date != nil && helpers.IsPastDate(*req.Date, time.Now()) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Past date are not permitted")
		return
	}

	if req.Title != nil {
		meetup.Title = *req.Title
	}
	if req.Description != nil {
		meetup.Description = *req.Description
	}
	if req.Localization != nil {
		meetup.Localization = *req.Localization
	}
	if req.Date != nil {
		meetup.Date = *req.Date
	}
	if req.BannerID != nil {
		meetup.BannerID = *req.BannerID
	}

	if err := gormDB.Save(&meetup).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update meetup.")
		return
	}

	c.JSON(http.StatusOK, meetup)
}

func CancelMeetup(c *gin.Context) {
	meetupID := c.Param("id")

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

	var meetup models.Meetup
	if err := gormDB.Preload("User").Preload("Banner").Where("id = ?", meetupID).First(&meetup).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Meetup not found")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding meetup.")
		return
	}

	if !helpers.IsOwner(meetup.UserID, userID.(uint)) {
		helpers.RespondWithError(c, http.StatusUnauthorized, "You don't have permission to cancel this meetup")
		return
	}

	now := time.Now()
	meetup.CanceledAt = &now

	if err := gormDB.Save(&meetup).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel meetup.")
		return
	}

	c.JSON(http.StatusOK, newCanceledMeetupView(&meetup))
}
