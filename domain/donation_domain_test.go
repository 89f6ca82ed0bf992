package domain_test

import (
	"GiveHub-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDonationCategoryValidation(t *testing.T) {
	for _, category := range domain.DonationCategories {
		assert.True(t, domain.IsValidDonationCategory(category), category)
	}

	assert.False(t, domain.IsValidDonationCategory("clothing")) // case sensitive
	assert.False(t, domain.IsValidDonationCategory("Vehicles"))
	assert.False(t, domain.IsValidDonationCategory(""))
}

func TestDonationStatusValidation(t *testing.T) {
	for _, status := range []string{"pending", "approved", "rejected", "completed", "shut_down"} {
		assert.True(t, domain.IsValidDonationStatus(status), status)
	}
	assert.False(t, domain.IsValidDonationStatus("accepted"))
	assert.False(t, domain.IsValidDonationStatus(""))
}

func TestBlogCategoryValidation(t *testing.T) {
	for _, category := range domain.BlogCategories {
		assert.True(t, domain.IsValidBlogCategory(category), category)
	}
	assert.False(t, domain.IsValidBlogCategory("Tips"))
}

func TestBlogStatusValidation(t *testing.T) {
	for _, status := range []string{"draft", "published", "archived", "approved"} {
		assert.True(t, domain.IsValidBlogStatus(status), status)
	}
	assert.False(t, domain.IsValidBlogStatus("live"))
}
