package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	bloguc "portfolio/internal/application/usecase/blog"
	"portfolio/internal/domain/blog"
	"portfolio/pkg/apperror"
	"portfolio/pkg/forms"
	"portfolio/pkg/logger"
)

type BlogHandler struct {
	uc     *bloguc.BlogUseCase
	logger logger.Logger
}

func NewBlogHandler(uc *bloguc.BlogUseCase, log logger.Logger) *BlogHandler {
	return &BlogHandler{uc: uc, logger: log}
}

func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.uc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

func (h *BlogHandler) Get(c *gin.Context) {
	id, err := idParam(c, "blog")
	if err != nil {
		c.Error(err)
		return
	}

	b, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BlogHandler) GetBySlug(c *gin.Context) {
	b, err := h.uc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BlogHandler) Create(c *gin.Context) {
	in, err := h.createInput(c)
	if err != nil {
		c.Error(err)
		return
	}

	b, err := h.uc.Create(c.Request.Context(), *in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Blog created successfully", "blog": b})
}

func (h *BlogHandler) createInput(c *gin.Context) (*bloguc.CreateInput, error) {
	if isMultipart(c) {
		if err := requireFormFields(c, "title", "excerpt", "content", "author", "authorRole", "category", "tags"); err != nil {
			return nil, err
		}
		published, err := formDate(c, "publishedAt")
		if err != nil {
			return nil, err
		}
		cover, err := formUpload(c, "coverImage")
		if err != nil {
			return nil, err
		}
		author, err := formUpload(c, "authorImage")
		if err != nil {
			return nil, err
		}
		in := &bloguc.CreateInput{
			Title:        c.PostForm("title"),
			Slug:         c.PostForm("slug"),
			Excerpt:      c.PostForm("excerpt"),
			Content:      c.PostForm("content"),
			Author:       c.PostForm("author"),
			AuthorRole:   c.PostForm("authorRole"),
			AuthorImage:  formValue(c, "authorImageUrl"),
			CoverImage:   formValue(c, "coverImageUrl"),
			Category:     c.PostForm("category"),
			Tags:         forms.Split(c.PostForm("tags")),
			Featured:     forms.ParseBool(c.PostForm("featured")),
			PublishedAt:  published,
			CoverUpload:  cover,
			AuthorUpload: author,
		}
		if raw, ok := c.GetPostForm("readingTime"); ok && raw != "" {
			n := forms.ParseInt(raw, blog.DefaultReadingTime)
			in.ReadingTime = &n
		}
		return in, nil
	}

	var req CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, apperror.NewInvalidInput("Missing required fields", err)
	}
	published, err := parseDate(req.PublishedAt, "publishedAt")
	if err != nil {
		return nil, err
	}
	return &bloguc.CreateInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Author:      req.Author,
		AuthorRole:  req.AuthorRole,
		AuthorImage: req.AuthorImage,
		CoverImage:  req.CoverImage,
		Category:    req.Category,
		Tags:        req.Tags,
		Featured:    req.Featured,
		PublishedAt: published,
		ReadingTime: req.ReadingTime,
	}, nil
}

func (h *BlogHandler) Update(c *gin.Context) {
	id, err := idParam(c, "blog")
	if err != nil {
		c.Error(err)
		return
	}

	in := bloguc.UpdateInput{ID: id}
	if isMultipart(c) {
		published, err := formDate(c, "publishedAt")
		if err != nil {
			c.Error(err)
			return
		}
		cover, err := formUpload(c, "coverImage")
		if err != nil {
			c.Error(err)
			return
		}
		author, err := formUpload(c, "authorImage")
		if err != nil {
			c.Error(err)
			return
		}
		in.Title = formValue(c, "title")
		in.Slug = formValue(c, "slug")
		in.Excerpt = formValue(c, "excerpt")
		in.Content = formValue(c, "content")
		in.Author = formValue(c, "author")
		in.AuthorRole = formValue(c, "authorRole")
		in.AuthorImage = formValue(c, "authorImageUrl")
		in.CoverImage = formValue(c, "coverImageUrl")
		in.Category = formValue(c, "category")
		if raw, ok := c.GetPostForm("tags"); ok {
			in.Tags = forms.Split(raw)
		}
		in.Featured = formBool(c, "featured")
		in.PublishedAt = published
		if raw, ok := c.GetPostForm("readingTime"); ok && raw != "" {
			n := forms.ParseInt(raw, blog.DefaultReadingTime)
			in.ReadingTime = &n
		}
		in.CoverUpload = cover
		in.AuthorUpload = author
	} else {
		var req UpdateBlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.NewInvalidInput("Invalid request body", err))
			return
		}
		published, err := parseDate(req.PublishedAt, "publishedAt")
		if err != nil {
			c.Error(err)
			return
		}
		in.Title = req.Title
		in.Slug = req.Slug
		in.Excerpt = req.Excerpt
		in.Content = req.Content
		in.Author = req.Author
		in.AuthorRole = req.AuthorRole
		in.AuthorImage = req.AuthorImage
		in.CoverImage = req.CoverImage
		in.Category = req.Category
		in.Tags = req.Tags
		in.Featured = req.Featured
		in.PublishedAt = published
		in.ReadingTime = req.ReadingTime
	}

	b, err := h.uc.Update(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog updated successfully", "blog": b})
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := idParam(c, "blog")
	if err != nil {
		c.Error(err)
		return
	}

	b, err := h.uc.Delete(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully", "deletedBlog": b})
}
