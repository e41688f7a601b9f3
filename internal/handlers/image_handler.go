package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/homekeep/api/internal/errors"
	"github.com/homekeep/api/internal/images"
)

// maxImageSize caps uploads at 10 MiB, which is plenty for phone photos.
const maxImageSize = 10 << 20

// ImageHandler handles image upload requests.
type ImageHandler struct {
	client *images.Client
}

// NewImageHandler creates a new ImageHandler instance.
func NewImageHandler(client *images.Client) *ImageHandler {
	return &ImageHandler{
		client: client,
	}
}

// UploadResponse carries the hosted URL of an uploaded image.
type UploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /api/v1/images. It forwards the multipart file to
// the external image host and returns the hosted URL, which clients then
// store on house or system documents.
func (h *ImageHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "A file field is required", nil)
		return
	}
	if header.Size > maxImageSize {
		apierrors.BadRequest(c, "File is too large", map[string]interface{}{
			"max_bytes": maxImageSize,
		})
		return
	}

	file, err := header.Open()
	if err != nil {
		apierrors.InternalServerError(c, "Failed to read uploaded file", err)
		return
	}
	defer file.Close()

	url, err := h.client.Upload(c.Request.Context(), header.Filename, file)
	if err != nil {
		if errors.Is(err, images.ErrDisabled) {
			apierrors.ServiceUnavailable(c, "Image uploads are not configured")
			return
		}
		apierrors.InternalServerError(c, "Failed to upload image", err)
		return
	}

	c.JSON(http.StatusCreated, UploadResponse{URL: url})
}
