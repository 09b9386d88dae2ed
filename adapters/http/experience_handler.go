package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	experienceuc "portfolio/internal/application/usecase/experience"
	"portfolio/pkg/apperror"
	"portfolio/pkg/forms"
	"portfolio/pkg/logger"
)

type ExperienceHandler struct {
	uc     *experienceuc.ExperienceUseCase
	logger logger.Logger
}

func NewExperienceHandler(uc *experienceuc.ExperienceUseCase, log logger.Logger) *ExperienceHandler {
	return &ExperienceHandler{uc: uc, logger: log}
}

func (h *ExperienceHandler) List(c *gin.Context) {
	experiences, err := h.uc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, experiences)
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	in, err := h.createInput(c)
	if err != nil {
		c.Error(err)
		return
	}

	e, err := h.uc.Create(c.Request.Context(), *in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Experience created successfully", "experience": e})
}

func (h *ExperienceHandler) createInput(c *gin.Context) (*experienceuc.CreateInput, error) {
	if isMultipart(c) {
		if err := requireFormFields(c, "title", "company", "duration", "location", "description", "technologies"); err != nil {
			return nil, err
		}
		start, err := formDate(c, "startDate")
		if err != nil {
			return nil, err
		}
		end, err := formDate(c, "endDate")
		if err != nil {
			return nil, err
		}
		image, err := formUpload(c, "image")
		if err != nil {
			return nil, err
		}
		return &experienceuc.CreateInput{
			Title:        c.PostForm("title"),
			Company:      c.PostForm("company"),
			Duration:     c.PostForm("duration"),
			Location:     c.PostForm("location"),
			Description:  c.PostForm("description"),
			Technologies: forms.Split(c.PostForm("technologies")),
			Current:      forms.ParseBool(c.PostForm("current")),
			StartDate:    start,
			EndDate:      end,
			ImageURL:     formValue(c, "imageUrl"),
			Image:        image,
		}, nil
	}

	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, apperror.NewInvalidInput("Missing required fields", err)
	}
	start, err := parseDate(req.StartDate, "startDate")
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate, "endDate")
	if err != nil {
		return nil, err
	}
	return &experienceuc.CreateInput{
		Title:        req.Title,
		Company:      req.Company,
		Duration:     req.Duration,
		Location:     req.Location,
		Description:  req.Description,
		Technologies: req.Technologies,
		Current:      req.Current,
		StartDate:    start,
		EndDate:      end,
		ImageURL:     req.ImageURL,
	}, nil
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	id, err := idParam(c, "experience")
	if err != nil {
		c.Error(err)
		return
	}

	in := experienceuc.UpdateInput{ID: id}
	if isMultipart(c) {
		start, err := formDate(c, "startDate")
		if err != nil {
			c.Error(err)
			return
		}
		end, err := formDate(c, "endDate")
		if err != nil {
			c.Error(err)
			return
		}
		image, err := formUpload(c, "image")
		if err != nil {
			c.Error(err)
			return
		}
		in.Title = formValue(c, "title")
		in.Company = formValue(c, "company")
		in.Duration = formValue(c, "duration")
		in.Location = formValue(c, "location")
		in.Description = formValue(c, "description")
		if raw, ok := c.GetPostForm("technologies"); ok {
			in.Technologies = forms.Split(raw)
		}
		in.Current = formBool(c, "current")
		in.StartDate = start
		in.EndDate = end
		in.ImageURL = formValue(c, "imageUrl")
		in.Image = image
	} else {
		var req UpdateExperienceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.NewInvalidInput("Invalid request body", err))
			return
		}
		start, err := parseDate(req.StartDate, "startDate")
		if err != nil {
			c.Error(err)
			return
		}
		end, err := parseDate(req.EndDate, "endDate")
		if err != nil {
			c.Error(err)
			return
		}
		in.Title = req.Title
		in.Company = req.Company
		in.Duration = req.Duration
		in.Location = req.Location
		in.Description = req.Description
		in.Technologies = req.Technologies
		in.Current = req.Current
		in.StartDate = start
		in.EndDate = end
		in.ImageURL = req.ImageURL
	}

	e, err := h.uc.Update(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experience updated successfully", "experience": e})
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, err := idParam(c, "experience")
	if err != nil {
		c.Error(err)
		return
	}

	e, err := h.uc.Delete(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experience deleted successfully", "deletedExperience": e})
}
