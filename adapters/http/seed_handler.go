package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	seeduc "portfolio/internal/application/usecase/seed"
	"portfolio/internal/config"
	"portfolio/pkg/apperror"
	"portfolio/pkg/logger"
)

// SeedHandler gates the destructive seed routine to development mode. The
// check happens before any repository call so a production hit leaves the
// store untouched.
type SeedHandler struct {
	uc     *seeduc.SeedUseCase
	mode   config.Mode
	logger logger.Logger
}

func NewSeedHandler(uc *seeduc.SeedUseCase, mode config.Mode, log logger.Logger) *SeedHandler {
	return &SeedHandler{uc: uc, mode: mode, logger: log}
}

func (h *SeedHandler) Seed(c *gin.Context) {
	if !h.mode.IsDevelopment() {
		c.Error(apperror.NewPermissionDenied("Seeding is only allowed in development mode"))
		return
	}

	summary, err := h.uc.Run(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database seeded successfully",
		"data":    summary,
	})
}
