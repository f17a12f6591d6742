package dto

import (
	"testing"

	"guide-catalog-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestNewGuideFilterRequest(t *testing.T) {
	req := NewGuideFilterRequest(" SPA, featured,,", "  react ")

	assert.Equal(t, []string{"SPA", "featured"}, req.Categories)
	assert.Equal(t, "react", req.Keyword)

	opts := req.ToFilterOptions()
	assert.Equal(t, []entity.Category{entity.CategorySPA, entity.CategoryFeatured}, opts.Categories)
	assert.Equal(t, "react", opts.Keyword)
}

func TestGuideFilterRequest_EmptyMeansNoFilter(t *testing.T) {
	assert.Nil(t, NewGuideFilterRequest("", "").ToFilterOptions())
}
