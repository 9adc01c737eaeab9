package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

// ShareFile returns the public link for a file together with its project ID,
// for the share dialog.
func (h *Handler) ShareFile(c *gin.Context) {
	file, err := h.records.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "File not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"shareUrl":  h.baseURL + file.URL,
		"projectId": file.ProjectID,
	})
}

// ShareQR renders the file's public link as a PNG QR code.
func (h *Handler) ShareQR(c *gin.Context) {
	file, err := h.records.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "File not found"})
		return
	}
	png, err := qrcode.Encode(h.baseURL+file.URL, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
