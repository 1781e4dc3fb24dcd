// controllers/upload.go
package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"carecircle-backend/utils"

	"github.com/gin-gonic/gin"
)

const uploadDir = "public/uploads"

// UploadFile stores a multipart file under public/uploads and returns the
// public path the catalog can reference as a service image.
func UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Upload failed")
		return
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(),
		strings.ReplaceAll(filepath.Base(file.Filename), " ", "-"))

	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Upload failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded",
		"url":     "/uploads/" + filename,
	})
}
