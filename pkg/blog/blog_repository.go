package blog

import (
	"GiveHub-Backend/domain"
	"GiveHub-Backend/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	BlogRepository interface {
		CreateBlogPost(ctx context.Context, post *entities.BlogPost) error
		GetBlogPostByID(ctx context.Context, id string) (*entities.BlogPost, error)
		GetAllBlogPosts(ctx context.Context) ([]*entities.BlogPost, error)
		UpdateBlogPost(ctx context.Context, id string, updates map[string]interface{}) error
		DeleteBlogPost(ctx context.Context, id string) error
		GetBlogPostsByStatus(ctx context.Context, status string) ([]*entities.BlogPost, error)
		GetBlogPostsByCategory(ctx context.Context, category string) ([]*entities.BlogPost, error)
		GetBlogPostsByAuthor(ctx context.Context, authorID string) ([]*entities.BlogPost, error)
		GetBlogPostsWithPendingReports(ctx context.Context) ([]*entities.BlogPost, error)

		AddReport(ctx context.Context, report *entities.BlogReport) error
		DeleteReport(ctx context.Context, postID, reportID string) error
		UpdateReportStatus(ctx context.Context, postID, reportID, status string) error

		RemoveLike(ctx context.Context, postID, userID string) (int64, error)
		AddLike(ctx context.Context, like *entities.BlogLike) error
		GetLikes(ctx context.Context, postID string) ([]*entities.BlogLike, error)
		RemoveSave(ctx context.Context, postID, userID string) (int64, error)
		AddSave(ctx context.Context, save *entities.BlogSave) error
		GetSaves(ctx context.Context, postID string) ([]*entities.BlogSave, error)

		AddComment(ctx context.Context, comment *entities.BlogComment) error
		GetComments(ctx context.Context, postID string) ([]*entities.BlogComment, error)
		UpdateComment(ctx context.Context, postID, commentID, content string) error
		DeleteComment(ctx context.Context, postID, commentID string) error

		AppendMedia(ctx context.Context, postID string, urls []string) ([]string, error)
		RemoveMediaAt(ctx context.Context, postID string, index int) ([]string, error)
		GetMedia(ctx context.Context, postID string) ([]string, error)
	}

	blogRepository struct {
		db *gorm.DB
	}
)

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) CreateBlogPost(ctx context.Context, post *entities.BlogPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *blogRepository) GetBlogPostByID(ctx context.Context, id string) (*entities.BlogPost, error) {
	var post entities.BlogPost
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Comments").
		Preload("Comments.User").
		Preload("Likes").
		Preload("Saves").
		Preload("Reports").
		Where("id = ?", id).
		First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) GetAllBlogPosts(ctx context.Context) ([]*entities.BlogPost, error) {
	var posts []*entities.BlogPost
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Comments").
		Preload("Comments.User").
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogRepository) UpdateBlogPost(ctx context.Context, id string, updates map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&entities.BlogPost{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *blogRepository) DeleteBlogPost(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&entities.BlogPost{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *blogRepository) GetBlogPostsByStatus(ctx context.Context, status string) ([]*entities.BlogPost, error) {
	var posts []*entities.BlogPost
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogRepository) GetBlogPostsByCategory(ctx context.Context, category string) ([]*entities.BlogPost, error) {
	var posts []*entities.BlogPost
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogRepository) GetBlogPostsByAuthor(ctx context.Context, authorID string) ([]*entities.BlogPost, error) {
	var posts []*entities.BlogPost
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogRepository) GetBlogPostsWithPendingReports(ctx context.Context) ([]*entities.BlogPost, error) {
	var posts []*entities.BlogPost
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Reports").
		Preload("Reports.Reporter").
		Where("EXISTS (SELECT 1 FROM blog_reports WHERE blog_reports.blog_post_id = blog_posts.id AND blog_reports.status = ?)", domain.ReportStatusPending).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogRepository) AddReport(ctx context.Context, report *entities.BlogReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *blogRepository) DeleteReport(ctx context.Context, postID, reportID string) error {
	res := r.db.WithContext(ctx).
		Delete(&entities.BlogReport{}, "id = ? AND blog_post_id = ?", reportID, postID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *blogRepository) UpdateReportStatus(ctx context.Context, postID, reportID, status string) error {
	res := r.db.WithContext(ctx).
		Model(&entities.BlogReport{}).
		Where("id = ? AND blog_post_id = ?", reportID, postID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *blogRepository) RemoveLike(ctx context.Context, postID, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Delete(&entities.BlogLike{}, "blog_post_id = ? AND user_id = ?", postID, userID)
	return res.RowsAffected, res.Error
}

func (r *blogRepository) AddLike(ctx context.Context, like *entities.BlogLike) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *blogRepository) GetLikes(ctx context.Context, postID string) ([]*entities.BlogLike, error) {
	var likes []*entities.BlogLike
	if err := r.db.WithContext(ctx).
		Where("blog_post_id = ?", postID).
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *blogRepository) RemoveSave(ctx context.Context, postID, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Delete(&entities.BlogSave{}, "blog_post_id = ? AND user_id = ?", postID, userID)
	return res.RowsAffected, res.Error
}

func (r *blogRepository) AddSave(ctx context.Context, save *entities.BlogSave) error {
	return r.db.WithContext(ctx).Create(save).Error
}

func (r *blogRepository) GetSaves(ctx context.Context, postID string) ([]*entities.BlogSave, error) {
	var saves []*entities.BlogSave
	if err := r.db.WithContext(ctx).
		Where("blog_post_id = ?", postID).
		Find(&saves).Error; err != nil {
		return nil, err
	}
	return saves, nil
}

func (r *blogRepository) AddComment(ctx context.Context, comment *entities.BlogComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *blogRepository) GetComments(ctx context.Context, postID string) ([]*entities.BlogComment, error) {
	var comments []*entities.BlogComment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("blog_post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *blogRepository) UpdateComment(ctx context.Context, postID, commentID, content string) error {
	res := r.db.WithContext(ctx).
		Model(&entities.BlogComment{}).
		Where("id = ? AND blog_post_id = ?", commentID, postID).
		Update("content", content)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *blogRepository) DeleteComment(ctx context.Context, postID, commentID string) error {
	res := r.db.WithContext(ctx).
		Delete(&entities.BlogComment{}, "id = ? AND blog_post_id = ?", commentID, postID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *blogRepository) AppendMedia(ctx context.Context, postID string, urls []string) ([]string, error) {
	var media []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post entities.BlogPost
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", postID).
			First(&post).Error; err != nil {
			return err
		}

		post.Media = append(post.Media, urls...)
		if err := tx.Model(&entities.BlogPost{}).
			Where("id = ?", postID).
			Update("media", post.Media).Error; err != nil {
			return err
		}

		media = post.Media
		return nil
	})
	return media, err
}

func (r *blogRepository) RemoveMediaAt(ctx context.Context, postID string, index int) ([]string, error) {
	var media []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post entities.BlogPost
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", postID).
			First(&post).Error; err != nil {
			return err
		}

		if index < 0 || index >= len(post.Media) {
			return domain.ErrInvalidMediaIndex
		}

		post.Media = append(post.Media[:index], post.Media[index+1:]...)
		if err := tx.Model(&entities.BlogPost{}).
			Where("id = ?", postID).
			Update("media", post.Media).Error; err != nil {
			return err
		}

		media = post.Media
		return nil
	})
	return media, err
}

func (r *blogRepository) GetMedia(ctx context.Context, postID string) ([]string, error) {
	var post entities.BlogPost
	if err := r.db.WithContext(ctx).
		Select("id", "media").
		Where("id = ?", postID).
		First(&post).Error; err != nil {
		return nil, err
	}
	return post.Media, nil
}
