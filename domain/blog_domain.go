package domain

import "errors"

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
	BlogStatusArchived  = "archived"
	BlogStatusApproved  = "approved"
)

var (
	MessageSuccessCreateBlogPost = "blog post created successfully"
	MessageSuccessGetBlogPosts   = "blog posts retrieved successfully"
	MessageSuccessUpdateBlogPost = "blog post updated successfully"
	MessageSuccessDeleteBlogPost = "blog post deleted successfully"
	MessageSuccessToggleBlogLike = "blog post like toggled successfully"
	MessageSuccessToggleBlogSave = "blog post save toggled successfully"

	MessageFailedCreateBlogPost = "failed to create blog post"
	MessageFailedGetBlogPosts   = "failed to retrieve blog posts"
	MessageFailedUpdateBlogPost = "failed to update blog post"
	MessageFailedDeleteBlogPost = "failed to delete blog post"
	MessageFailedToggleBlogLike = "failed to toggle blog post like"
	MessageFailedToggleBlogSave = "failed to toggle blog post save"

	ErrBlogPostNotFound    = errors.New("blog post not found")
	ErrInvalidBlogCategory = errors.New("invalid blog post category")
	ErrInvalidBlogStatus   = errors.New("invalid blog post status")
)

var BlogCategories = []string{"askforhelp", "tips", "successstories", "updates", "other"}

func IsValidBlogCategory(category string) bool {
	for _, c := range BlogCategories {
		if c == category {
			return true
		}
	}
	return false
}

func IsValidBlogStatus(status string) bool {
	switch status {
	case BlogStatusDraft, BlogStatusPublished, BlogStatusArchived, BlogStatusApproved:
		return true
	}
	return false
}

type (
	CreateBlogPostRequest struct {
		AuthorID string   `json:"author_id" validate:"required,uuid"`
		Title    string   `json:"title" validate:"required"`
		Content  string   `json:"content" validate:"required"`
		Category string   `json:"category" validate:"required"`
		Media    []string `json:"media" validate:"omitempty,dive,url"`
	}

	UpdateBlogPostRequest struct {
		Title    string `json:"title" validate:"omitempty"`
		Content  string `json:"content" validate:"omitempty"`
		Category string `json:"category" validate:"omitempty"`
	}

	UpdateBlogStatusRequest struct {
		Status string `json:"status" validate:"required"`
	}
)
