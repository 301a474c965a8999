package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/storage"
)

// UploadHTTP accepts design files and hands back the opaque reference that
// cart lines carry.
type UploadHTTP struct {
	Files storage.FileStore
}

func NewUploadHTTP(files storage.FileStore) *UploadHTTP { return &UploadHTTP{Files: files} }

func (h *UploadHTTP) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, storage.MaxUploadBytes)

	fh, err := c.FormFile("design")
	if err != nil {
		c.JSON(400, gin.H{"error": "design file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		fail(c, err)
		return
	}
	defer f.Close()

	ref, err := h.Files.Save(c.Request.Context(), fh.Filename, f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(201, gin.H{"ref": ref, "url": h.Files.URL(ref)})
}
