package http

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio/internal/application/service"
	"portfolio/pkg/apperror"
	"portfolio/pkg/forms"
)

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/")
}

func idParam(c *gin.Context, resource string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperror.NewInvalidInput(fmt.Sprintf("Invalid %s ID", strings.ToLower(resource)), err)
	}
	return id, nil
}

// formValue distinguishes "absent" from "present but empty" so multipart
// updates keep the same partial-merge semantics as the JSON path.
func formValue(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok {
		return &v
	}
	return nil
}

func formBool(c *gin.Context, key string) *bool {
	raw, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	b := forms.ParseBool(raw)
	return &b
}

func formDate(c *gin.Context, key string) (*time.Time, error) {
	raw, ok := c.GetPostForm(key)
	if !ok {
		return nil, nil
	}
	return parseDate(raw, key)
}

func parseDate(raw, key string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, ok := forms.ParseDate(raw)
	if !ok {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("Invalid %s", key), nil)
	}
	return &t, nil
}

// formUpload returns the file posted under field, or nil when the part is
// absent or empty.
func formUpload(c *gin.Context, field string) (*service.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh.Size == 0 {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, apperror.NewInternal(fmt.Sprintf("failed to open uploaded %s", field), err)
	}
	return &service.Upload{File: f, Filename: fh.Filename}, nil
}

func requireFormFields(c *gin.Context, fields ...string) error {
	for _, f := range fields {
		if strings.TrimSpace(c.PostForm(f)) == "" {
			return apperror.NewInvalidInput("Missing required fields", nil)
		}
	}
	return nil
}

// clientIP prefers the proxy headers the original deployment set, then falls
// back to the socket address.
func clientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if real := c.GetHeader("X-Real-Ip"); real != "" {
		return real
	}
	return c.ClientIP()
}
