package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devconnector/internal/model"
)

// PostRepository defines post persistence operations. Likes and comments are
// loaded with their posts, most recent first.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	Delete(ctx context.Context, post *model.Post) error
	AddLike(ctx context.Context, like *model.Like) error
	RemoveLike(ctx context.Context, likeID uint) error
	AddComment(ctx context.Context, comment *model.Comment) error
	RemoveComment(ctx context.Context, commentID uuid.UUID) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) withEmbedded(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Likes", func(db *gorm.DB) *gorm.DB {
			return db.Order("likes.id DESC")
		}).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.date DESC")
		})
}

// Create creates a new post record.
func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// FindByID finds a post by ID with its likes and comments.
func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	if err := r.withEmbedded(r.db.WithContext(ctx)).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns all posts, newest first.
func (r *postRepository) List(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := r.withEmbedded(r.db.WithContext(ctx)).Order("date DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Delete removes a post; its likes and comments go with it via the cascade
// constraint.
func (r *postRepository) Delete(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Delete(post).Error
}

// AddLike persists a single like entry.
func (r *postRepository) AddLike(ctx context.Context, like *model.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

// RemoveLike removes a single like entry.
func (r *postRepository) RemoveLike(ctx context.Context, likeID uint) error {
	return r.db.WithContext(ctx).Delete(&model.Like{}, likeID).Error
}

// AddComment persists a single comment entry.
func (r *postRepository) AddComment(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// RemoveComment removes a single comment entry.
func (r *postRepository) RemoveComment(ctx context.Context, commentID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", commentID).Delete(&model.Comment{}).Error
}
