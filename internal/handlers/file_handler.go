package handlers

import (
	"net/http"

	"github.com/farellandr/meetapp/internal/helpers"
	"github.com/farellandr/meetapp/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func StoreFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "File is required.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	path, err := helpers.UploadFile(c, fileHeader)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	file := models.File{
		Name: fileHeader.Filename,
		Path: path,
	}

	if err := gormDB.Create(&file).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create file.")
		return
	}

	c.JSON(http.StatusOK, file)
}
