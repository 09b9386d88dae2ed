package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectuc "portfolio/internal/application/usecase/project"
	"portfolio/pkg/apperror"
	"portfolio/pkg/forms"
	"portfolio/pkg/logger"
)

type ProjectHandler struct {
	uc     *projectuc.ProjectUseCase
	logger logger.Logger
}

func NewProjectHandler(uc *projectuc.ProjectUseCase, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{uc: uc, logger: log}
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.uc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	in, err := h.createInput(c)
	if err != nil {
		c.Error(err)
		return
	}

	p, err := h.uc.Create(c.Request.Context(), *in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Project created successfully", "project": p})
}

func (h *ProjectHandler) createInput(c *gin.Context) (*projectuc.CreateInput, error) {
	if isMultipart(c) {
		if err := requireFormFields(c, "title", "description", "fullDescription", "technologies", "githubUrl", "liveUrl"); err != nil {
			return nil, err
		}
		image, err := formUpload(c, "image")
		if err != nil {
			return nil, err
		}
		in := &projectuc.CreateInput{
			Title:           c.PostForm("title"),
			Description:     c.PostForm("description"),
			FullDescription: c.PostForm("fullDescription"),
			Technologies:    forms.Split(c.PostForm("technologies")),
			GithubURL:       c.PostForm("githubUrl"),
			LiveURL:         c.PostForm("liveUrl"),
			ImageURL:        formValue(c, "imageUrl"),
			Category:        c.PostForm("category"),
			Featured:        forms.ParseBool(c.PostForm("featured")),
			Image:           image,
		}
		return in, nil
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, apperror.NewInvalidInput("Missing required fields", err)
	}
	return &projectuc.CreateInput{
		Title:           req.Title,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Technologies:    req.Technologies,
		GithubURL:       req.GithubURL,
		LiveURL:         req.LiveURL,
		ImageURL:        req.ImageURL,
		Category:        req.Category,
		Featured:        req.Featured,
	}, nil
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := idParam(c, "project")
	if err != nil {
		c.Error(err)
		return
	}

	in := projectuc.UpdateInput{ID: id}
	if isMultipart(c) {
		image, err := formUpload(c, "image")
		if err != nil {
			c.Error(err)
			return
		}
		in.Title = formValue(c, "title")
		in.Description = formValue(c, "description")
		in.FullDescription = formValue(c, "fullDescription")
		if raw, ok := c.GetPostForm("technologies"); ok {
			in.Technologies = forms.Split(raw)
		}
		in.GithubURL = formValue(c, "githubUrl")
		in.LiveURL = formValue(c, "liveUrl")
		in.ImageURL = formValue(c, "imageUrl")
		in.Category = formValue(c, "category")
		in.Featured = formBool(c, "featured")
		in.Image = image
	} else {
		var req UpdateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.NewInvalidInput("Invalid request body", err))
			return
		}
		in.Title = req.Title
		in.Description = req.Description
		in.FullDescription = req.FullDescription
		in.Technologies = req.Technologies
		in.GithubURL = req.GithubURL
		in.LiveURL = req.LiveURL
		in.ImageURL = req.ImageURL
		in.Category = req.Category
		in.Featured = req.Featured
	}

	p, err := h.uc.Update(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project updated successfully", "project": p})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := idParam(c, "project")
	if err != nil {
		c.Error(err)
		return
	}

	p, err := h.uc.Delete(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully", "deletedProject": p})
}
