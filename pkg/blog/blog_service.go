package blog

import (
	"GiveHub-Backend/domain"
	"GiveHub-Backend/entities"
	"GiveHub-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	BlogService interface {
		CreateBlogPost(ctx context.Context, req domain.CreateBlogPostRequest) (*entities.BlogPost, error)
		GetAllBlogPosts(ctx context.Context) ([]*entities.BlogPost, error)
		GetBlogPostByID(ctx context.Context, id string) (*entities.BlogPost, error)
		UpdateBlogPost(ctx context.Context, id string, req domain.UpdateBlogPostRequest) (*entities.BlogPost, error)
		UpdateBlogPostStatus(ctx context.Context, id, status string) error
		DeleteBlogPost(ctx context.Context, id string) error
		GetBlogPostsByStatus(ctx context.Context, status string) ([]*entities.BlogPost, error)
		GetBlogPostsByCategory(ctx context.Context, category string) ([]*entities.BlogPost, error)
		GetBlogPostsByAuthor(ctx context.Context, authorID string) ([]*entities.BlogPost, error)
		GetPendingReportBlogPosts(ctx context.Context) ([]*entities.BlogPost, error)

		CreateReport(ctx context.Context, postID string, req domain.CreateReportRequest) error
		DeleteReport(ctx context.Context, postID, reportID string) error
		ReviewReport(ctx context.Context, postID, reportID string) error
		ResolveReport(ctx context.Context, postID, reportID string) error

		ToggleLike(ctx context.Context, postID, userID string) ([]*entities.BlogLike, error)
		ToggleSave(ctx context.Context, postID, userID string) ([]*entities.BlogSave, error)

		AddComment(ctx context.Context, postID, userID, content string) error
		GetComments(ctx context.Context, postID string) ([]*entities.BlogComment, error)
		UpdateComment(ctx context.Context, postID, commentID, content string) error
		DeleteComment(ctx context.Context, postID, commentID string) error

		AttachMedia(ctx context.Context, postID string, files []*multipart.FileHeader) ([]string, error)
		ListMedia(ctx context.Context, postID string) ([]string, error)
		RemoveMedia(ctx context.Context, postID string, index int) ([]string, error)
	}

	blogService struct {
		blogRepository BlogRepository
		s3             storage.AwsS3
	}
)

func NewBlogService(blogRepository BlogRepository, s3 storage.AwsS3) BlogService {
	return &blogService{
		blogRepository: blogRepository,
		s3:             s3,
	}
}

func (s *blogService) CreateBlogPost(ctx context.Context, req domain.CreateBlogPostRequest) (*entities.BlogPost, error) {
	if !domain.IsValidBlogCategory(req.Category) {
		return nil, domain.ErrInvalidBlogCategory
	}

	authorUUID, err := uuid.Parse(req.AuthorID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	post := &entities.BlogPost{
		ID:       uuid.New(),
		AuthorID: authorUUID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Status:   domain.BlogStatusDraft,
		Media:    req.Media,
	}

	if err := s.blogRepository.CreateBlogPost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *blogService) GetAllBlogPosts(ctx context.Context) ([]*entities.BlogPost, error) {
	return s.blogRepository.GetAllBlogPosts(ctx)
}

func (s *blogService) GetBlogPostByID(ctx context.Context, id string) (*entities.BlogPost, error) {
	post, err := s.blogRepository.GetBlogPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBlogPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *blogService) UpdateBlogPost(ctx context.Context, id string, req domain.UpdateBlogPostRequest) (*entities.BlogPost, error) {
	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Content != "" {
		updates["content"] = req.Content
	}
	if req.Category != "" {
		if !domain.IsValidBlogCategory(req.Category) {
			return nil, domain.ErrInvalidBlogCategory
		}
		updates["category"] = req.Category
	}

	if len(updates) > 0 {
		if err := s.blogRepository.UpdateBlogPost(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrBlogPostNotFound
			}
			return nil, err
		}
	}

	return s.GetBlogPostByID(ctx, id)
}

func (s *blogService) UpdateBlogPostStatus(ctx context.Context, id, status string) error {
	if !domain.IsValidBlogStatus(status) {
		return domain.ErrInvalidBlogStatus
	}
	if err := s.blogRepository.UpdateBlogPost(ctx, id, map[string]interface{}{"status": status}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBlogPostNotFound
		}
		return err
	}
	return nil
}

func (s *blogService) DeleteBlogPost(ctx context.Context, id string) error {
	if err := s.blogRepository.DeleteBlogPost(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBlogPostNotFound
		}
		return err
	}
	return nil
}

func (s *blogService) GetBlogPostsByStatus(ctx context.Context, status string) ([]*entities.BlogPost, error) {
	if !domain.IsValidBlogStatus(status) {
		return nil, domain.ErrInvalidBlogStatus
	}
	return s.blogRepository.GetBlogPostsByStatus(ctx, status)
}

func (s *blogService) GetBlogPostsByCategory(ctx context.Context, category string) ([]*entities.BlogPost, error) {
	if !domain.IsValidBlogCategory(category) {
		return nil, domain.ErrInvalidBlogCategory
	}
	return s.blogRepository.GetBlogPostsByCategory(ctx, category)
}

func (s *blogService) GetBlogPostsByAuthor(ctx context.Context, authorID string) ([]*entities.BlogPost, error) {
	return s.blogRepository.GetBlogPostsByAuthor(ctx, authorID)
}

func (s *blogService) GetPendingReportBlogPosts(ctx context.Context) ([]*entities.BlogPost, error) {
	return s.blogRepository.GetBlogPostsWithPendingReports(ctx)
}

func (s *blogService) CreateReport(ctx context.Context, postID string, req domain.CreateReportRequest) error {
	if _, err := s.GetBlogPostByID(ctx, postID); err != nil {
		return err
	}

	postUUID, err := uuid.Parse(postID)
	if err != nil {
		return domain.ErrParseUUID
	}
	reporterUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.blogRepository.AddReport(ctx, &entities.BlogReport{
		ID:         uuid.New(),
		BlogPostID: postUUID,
		ReporterID: reporterUUID,
		Reason:     req.Reason,
		Status:     domain.ReportStatusPending,
	})
}

func (s *blogService) DeleteReport(ctx context.Context, postID, reportID string) error {
	if err := s.blogRepository.DeleteReport(ctx, postID, reportID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReportNotFound
		}
		return err
	}
	return nil
}

func (s *blogService) ReviewReport(ctx context.Context, postID, reportID string) error {
	return s.updateReportStatus(ctx, postID, reportID, domain.ReportStatusReviewed)
}

func (s *blogService) ResolveReport(ctx context.Context, postID, reportID string) error {
	return s.updateReportStatus(ctx, postID, reportID, domain.ReportStatusResolved)
}

func (s *blogService) updateReportStatus(ctx context.Context, postID, reportID, status string) error {
	if err := s.blogRepository.UpdateReportStatus(ctx, postID, reportID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReportNotFound
		}
		return err
	}
	return nil
}

func (s *blogService) ToggleLike(ctx context.Context, postID, userID string) ([]*entities.BlogLike, error) {
	if _, err := s.GetBlogPostByID(ctx, postID); err != nil {
		return nil, err
	}

	postUUID, err := uuid.Parse(postID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	removed, err := s.blogRepository.RemoveLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if removed == 0 {
		if err := s.blogRepository.AddLike(ctx, &entities.BlogLike{
			ID:         uuid.New(),
			BlogPostID: postUUID,
			UserID:     userUUID,
		}); err != nil {
			return nil, err
		}
	}

	return s.blogRepository.GetLikes(ctx, postID)
}

func (s *blogService) ToggleSave(ctx context.Context, postID, userID string) ([]*entities.BlogSave, error) {
	if _, err := s.GetBlogPostByID(ctx, postID); err != nil {
		return nil, err
	}

	postUUID, err := uuid.Parse(postID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	removed, err := s.blogRepository.RemoveSave(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if removed == 0 {
		if err := s.blogRepository.AddSave(ctx, &entities.BlogSave{
			ID:         uuid.New(),
			BlogPostID: postUUID,
			UserID:     userUUID,
		}); err != nil {
			return nil, err
		}
	}

	return s.blogRepository.GetSaves(ctx, postID)
}

func (s *blogService) AddComment(ctx context.Context, postID, userID, content string) error {
	if strings.TrimSpace(content) == "" {
		return domain.ErrEmptyCommentContent
	}

	if _, err := s.GetBlogPostByID(ctx, postID); err != nil {
		return err
	}

	postUUID, err := uuid.Parse(postID)
	if err != nil {
		return domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.blogRepository.AddComment(ctx, &entities.BlogComment{
		ID:         uuid.New(),
		BlogPostID: postUUID,
		UserID:     userUUID,
		Content:    content,
	})
}

func (s *blogService) GetComments(ctx context.Context, postID string) ([]*entities.BlogComment, error) {
	if _, err := s.GetBlogPostByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.blogRepository.GetComments(ctx, postID)
}

func (s *blogService) UpdateComment(ctx context.Context, postID, commentID, content string) error {
	if strings.TrimSpace(content) == "" {
		return domain.ErrEmptyCommentContent
	}

	if err := s.blogRepository.UpdateComment(ctx, postID, commentID, content); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}
	return nil
}

func (s *blogService) DeleteComment(ctx context.Context, postID, commentID string) error {
	if err := s.blogRepository.DeleteComment(ctx, postID, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}
	return nil
}

func (s *blogService) AttachMedia(ctx context.Context, postID string, files []*multipart.FileHeader) ([]string, error) {
	if _, err := s.GetBlogPostByID(ctx, postID); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(files))
	for i, file := range files {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("blog-%s-%d", postID, i),
			file,
			"blog-posts",
			storage.AllowMedia...,
		)
		if err != nil {
			return nil, err
		}
		urls = append(urls, s.s3.GetPublicLinkKey(objectKey))
	}

	media, err := s.blogRepository.AppendMedia(ctx, postID, urls)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBlogPostNotFound
		}
		return nil, err
	}
	return media, nil
}

func (s *blogService) ListMedia(ctx context.Context, postID string) ([]string, error) {
	media, err := s.blogRepository.GetMedia(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBlogPostNotFound
		}
		return nil, err
	}
	return media, nil
}

func (s *blogService) RemoveMedia(ctx context.Context, postID string, index int) ([]string, error) {
	media, err := s.blogRepository.RemoveMediaAt(ctx, postID, index)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBlogPostNotFound
		}
		return nil, err
	}
	return media, nil
}
