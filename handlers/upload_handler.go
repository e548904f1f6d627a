package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsorbit-api/helper"
	"newsorbit-api/services"
)

type UploadHandler struct {
	uploadService services.UploadService
	helper        *helper.HTTPHelper
}

func NewUploadHandler(uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, helper: &helper.HTTPHelper{}}
}

// UploadImage accepts a multipart image, runs the resize pipeline, and
// returns the retrievable URL.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read the uploaded file"})
		return
	}
	defer file.Close()

	url, err := h.uploadService.ProcessImage(file, fileHeader.Filename, fileHeader.Size)
	if err != nil {
		c.JSON(h.helper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
