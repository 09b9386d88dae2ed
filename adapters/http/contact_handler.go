package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactuc "portfolio/internal/application/usecase/contact"
	"portfolio/pkg/apperror"
	"portfolio/pkg/logger"
)

type ContactHandler struct {
	uc     *contactuc.ContactUseCase
	logger logger.Logger
}

func NewContactHandler(uc *contactuc.ContactUseCase, log logger.Logger) *ContactHandler {
	return &ContactHandler{uc: uc, logger: log}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("All fields are required", err))
		return
	}

	in := contactuc.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if ip := clientIP(c); ip != "" {
		in.IPAddress = &ip
	}
	if ua := c.Request.UserAgent(); ua != "" {
		in.UserAgent = &ua
	}

	s, err := h.uc.Submit(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Message sent successfully",
		"status":  "success",
		"id":      s.ID,
	})
}

func (h *ContactHandler) List(c *gin.Context) {
	submissions, err := h.uc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, submissions)
}
