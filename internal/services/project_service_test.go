package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteprisme.fr/internal/content"
	"siteprisme.fr/internal/models"
)

func catalogue() *models.ProjectList {
	return &models.ProjectList{Projects: []models.Project{
		{ID: "ff-1", Title: "Burger", Category: content.CategoryFastFood, Stack: "react",
			Testimonial: &models.Testimonial{Author: "Marc", Quote: "Top", Rating: 5}},
		{ID: "resto-1", Title: "Cellier", Category: content.CategoryRestaurant, Stack: "gatsby"},
		{ID: "ff-2", Title: "Tacos", Category: content.CategoryFastFood, Stack: "vue"},
		{ID: "shop-1", Title: "Boutique", Category: content.CategoryECommerce, Stack: content.StackShopify,
			Testimonial: &models.Testimonial{Author: "Claire", Quote: "Merci", Rating: 4}},
		{ID: "wp-1", Title: "Atelier", Category: content.CategoryECommerce, Stack: content.StackWordPress},
	}}
}

func ids(projects []models.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func TestProjectService_GetByID(t *testing.T) {
	s := NewProjectService(catalogue())

	p, err := s.GetByID("resto-1")
	require.NoError(t, err)
	assert.Equal(t, "Cellier", p.Title)

	_, err = s.GetByID("missing")
	assert.True(t, errors.Is(err, ErrProjectNotFound))
}

func TestProjectService_NilCatalogue(t *testing.T) {
	s := NewProjectService(nil)
	assert.Empty(t, s.GetAll())
	assert.Empty(t, s.Filter(s.Select("", "")))
}

func TestProjectService_Select(t *testing.T) {
	s := NewProjectService(catalogue())

	tests := []struct {
		name      string
		category  string
		stack     string
		wantValue string
		wantStack string
		wantKnown bool
	}{
		{"DefaultIsFastFood", "", "", content.CategoryFastFood, content.StackShopify, true},
		{"ByDisplayName", "Café", "", content.CategoryCafe, content.StackShopify, true},
		{"ByValue", "restaurant", "", content.CategoryRestaurant, content.StackShopify, true},
		{"ECommerceDefaultsToShopify", "E-commerce", "", content.CategoryECommerce, content.StackShopify, true},
		{"ECommerceWordPress", "E-commerce", "wordpress", content.CategoryECommerce, content.StackWordPress, true},
		{"ECommerceUnknownStack", "e-commerce", "magento", content.CategoryECommerce, content.StackShopify, true},
		{"StackResetsOutsideECommerce", "Restaurant", "wordpress", content.CategoryRestaurant, content.StackShopify, true},
		{"Unknown", "Boulangerie", "", "", content.StackShopify, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := s.Select(tt.category, tt.stack)
			assert.Equal(t, tt.wantValue, sel.Category.Value)
			assert.Equal(t, tt.wantStack, sel.Stack)
			assert.Equal(t, tt.wantKnown, sel.Known)
		})
	}
}

func TestProjectService_Filter(t *testing.T) {
	s := NewProjectService(catalogue())

	assert.Equal(t, []string{"ff-1", "ff-2"}, ids(s.Filter(s.Select("Fast Food", ""))))
	assert.Equal(t, []string{"resto-1"}, ids(s.Filter(s.Select("Restaurant", ""))))
	assert.Equal(t, []string{"shop-1"}, ids(s.Filter(s.Select("E-commerce", ""))))
	assert.Equal(t, []string{"wp-1"}, ids(s.Filter(s.Select("E-commerce", "wordpress"))))

	empty := s.Filter(s.Select("Café", ""))
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	unknown := s.Filter(s.Select("Boulangerie", ""))
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
}

func TestProjectService_Testimonials(t *testing.T) {
	got := NewProjectService(catalogue()).Testimonials()
	require.Len(t, got, 2)
	assert.Equal(t, "ff-1", got[0].ProjectID)
	assert.Equal(t, "Burger", got[0].ProjectTitle)
	assert.Equal(t, "Marc", got[0].Author)
	assert.Equal(t, content.CategoryECommerce, got[1].Category)
}

func TestProjectService_EmbeddedCatalogue(t *testing.T) {
	list, err := content.LoadPortfolio("")
	require.NoError(t, err)

	s := NewProjectService(list)
	for _, c := range s.Categories() {
		sel := s.Select(c.Name, "")
		for _, p := range s.Filter(sel) {
			assert.Equal(t, c.Value, p.Category)
		}
	}
	assert.NotEmpty(t, s.Testimonials())
}
