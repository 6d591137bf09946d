package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps logo/cover/product images at 10 MB
const maxUploadBytes = 10 << 20

// UploadFile stores a blob (logo, cover, product image) and returns its URL.
// Returns 503 when no blob backend is configured.
func (h *Handler) UploadFile(c *gin.Context) {
	if h.blobs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "File uploads are not configured"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A file field is required"})
		return
	}
	if header.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File is too large"})
		return
	}

	file, err := header.Open()
	if err != nil {
		h.serverError(c, "Failed to upload file", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.serverError(c, "Failed to upload file", err)
		return
	}

	url, err := h.blobs.Upload(c.Request.Context(), header.Filename, data, header.Header.Get("Content-Type"))
	if err != nil {
		h.serverError(c, "Failed to upload file", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
