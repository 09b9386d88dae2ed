package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	profileuc "portfolio/internal/application/usecase/profile"
	uploaduc "portfolio/internal/application/usecase/upload"
	"portfolio/pkg/apperror"
	"portfolio/pkg/logger"
)

type UploadHandler struct {
	uc       *uploaduc.UploadUseCase
	profiles *profileuc.ProfileUseCase
	logger   logger.Logger
}

func NewUploadHandler(uc *uploaduc.UploadUseCase, profiles *profileuc.ProfileUseCase, log logger.Logger) *UploadHandler {
	return &UploadHandler{uc: uc, profiles: profiles, logger: log}
}

func (h *UploadHandler) UploadCV(c *gin.Context) {
	fh, err := c.FormFile("cv")
	if err != nil {
		c.Error(apperror.NewInvalidInput("No file provided", err))
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open uploaded CV", err))
		return
	}
	defer f.Close()

	out, err := h.uc.UploadCV(c.Request.Context(), uploaduc.CVInput{
		File:        f,
		Filename:    fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	// The file is already on disk; failing to record the path on the profile
	// is not worth failing the upload over.
	if err := h.profiles.SetCVURL(c.Request.Context(), out.MainPath); err != nil {
		h.logger.Warn("failed to record CV path on profile", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "CV uploaded successfully",
		"filename": out.Filename,
		"path":     out.Path,
		"mainPath": out.MainPath,
	})
}
