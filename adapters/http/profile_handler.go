package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileuc "portfolio/internal/application/usecase/profile"
	"portfolio/pkg/apperror"
	"portfolio/pkg/logger"
)

type ProfileHandler struct {
	uc     *profileuc.ProfileUseCase
	logger logger.Logger
}

func NewProfileHandler(uc *profileuc.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: log}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.uc.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("Invalid request body", err))
		return
	}

	p, err := h.uc.Update(c.Request.Context(), profileuc.UpdateInput{
		Name:      req.Name,
		Title:     req.Title,
		Email:     req.Email,
		Phone:     req.Phone,
		Location:  req.Location,
		Bio:       req.Bio,
		Skills:    req.Skills,
		Social:    req.Social,
		Stats:     req.Stats,
		CVURL:     req.CVURL,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "profile": p})
}
