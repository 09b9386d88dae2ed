package project

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProject() *Project {
	return &Project{
		Title:           "E-Commerce Platform",
		Description:     "A full-stack e-commerce solution.",
		FullDescription: "Built a comprehensive e-commerce platform.",
		Technologies:    []string{"Go", "Postgres"},
		GithubURL:       "https://github.com/someone/shop",
		LiveURL:         "https://shop.example.com",
		Category:        DefaultCategory,
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validProject().Validate())

	p := validProject()
	p.GithubURL = ""
	assert.ErrorIs(t, p.Validate(), ErrMissingFields)

	p = validProject()
	p.Technologies = nil
	assert.ErrorIs(t, p.Validate(), ErrNoTechnologies)

	p = validProject()
	p.LiveURL = "not-a-url"
	assert.ErrorIs(t, p.Validate(), ErrInvalidURL)

	p = validProject()
	p.Description = strings.Repeat("x", 201)
	assert.ErrorIs(t, p.Validate(), ErrDescriptionTooLong)
}

func TestValidate_Category(t *testing.T) {
	for _, c := range Categories {
		p := validProject()
		p.Category = c
		assert.NoError(t, p.Validate())
	}

	p := validProject()
	p.Category = "Machine Learning"
	assert.ErrorIs(t, p.Validate(), ErrInvalidCategory)
}
