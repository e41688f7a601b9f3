package images

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/homekeep/api/internal/config"
	"github.com/homekeep/api/internal/logger"
)

// ErrDisabled is returned when no upload endpoint is configured.
var ErrDisabled = errors.New("image uploads are not configured")

// uploadResponse is the host's answer to an unsigned upload. The host
// returns more fields; only the hosted URL matters here.
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client uploads images to the configured external host using its unsigned
// upload preset. The returned URL is what gets stored on documents
// (coverImageUrl, photoUrl and the per-system photo fields).
type Client struct {
	http   *resty.Client
	preset string
	log    *logger.Logger
}

// New creates an upload client. When no upload URL is configured the client
// is disabled and every upload fails with ErrDisabled.
func New(cfg config.ImageConfig, log *logger.Logger) *Client {
	c := &Client{preset: cfg.Preset, log: log}
	if cfg.UploadURL == "" {
		return c
	}

	c.http = resty.New().
		SetBaseURL(cfg.UploadURL).
		SetTimeout(30 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second)
	return c
}

// Enabled reports whether an upload endpoint is configured.
func (c *Client) Enabled() bool {
	return c.http != nil
}

// Upload sends the file to the image host and returns the hosted URL.
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", filename, file).
		SetFormData(map[string]string{"upload_preset": c.preset}).
		Post("")
	if err != nil {
		return "", fmt.Errorf("image upload failed: %w", err)
	}

	var parsed uploadResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", fmt.Errorf("failed to parse upload response: %w", err)
	}
	if resp.IsError() {
		msg := parsed.Error.Message
		if msg == "" {
			msg = resp.Status()
		}
		return "", fmt.Errorf("image host rejected upload: %s", msg)
	}

	url := parsed.SecureURL
	if url == "" {
		url = parsed.URL
	}
	if url == "" {
		return "", errors.New("image host returned no URL")
	}

	c.log.Info("Image uploaded", map[string]interface{}{
		"filename": filename,
		"url":      url,
	})
	return url, nil
}
