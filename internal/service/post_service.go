package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "devconnector/internal/errors"
	"devconnector/internal/model"
	"devconnector/internal/repository"
)

// PostService applies mutations to posts, enforcing ownership checks. Each
// mutation fetches the post, scans its embedded lists in memory and persists
// the change; concurrent mutations on the same post are not serialized, so
// the later write wins.
type PostService interface {
	CreatePost(ctx context.Context, text, name, avatar string, ownerID uint) (*model.Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (*model.Post, error)
	ListPosts(ctx context.Context) ([]model.Post, error)
	DeletePost(ctx context.Context, postID uuid.UUID, requesterID uint) error
	Like(ctx context.Context, postID uuid.UUID, requesterID uint) (*model.Post, error)
	Unlike(ctx context.Context, postID uuid.UUID, requesterID uint) (*model.Post, error)
	AddComment(ctx context.Context, postID uuid.UUID, text, name, avatar string, requesterID uint) (*model.Post, error)
	DeleteComment(ctx context.Context, postID, commentID uuid.UUID, requesterID uint) (*model.Post, error)
}

type postService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) fetch(ctx context.Context, postID uuid.UUID) (*model.Post, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return post, nil
}

// CreatePost constructs and persists a new post owned by ownerID. Name and
// avatar are snapshotted from the author's claims.
func (s *postService) CreatePost(ctx context.Context, text, name, avatar string, ownerID uint) (*model.Post, error) {
	post := &model.Post{
		Text:     text,
		Name:     name,
		Avatar:   avatar,
		UserID:   ownerID,
		Likes:    []model.Like{},
		Comments: []model.Comment{},
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// GetPost returns a post by id with its likes and comments.
func (s *postService) GetPost(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	return s.fetch(ctx, id)
}

// ListPosts returns all posts, newest first.
func (s *postService) ListPosts(ctx context.Context) ([]model.Post, error) {
	return s.postRepo.List(ctx)
}

// DeletePost removes a post. Only the post's owner may delete it.
func (s *postService) DeletePost(ctx context.Context, postID uuid.UUID, requesterID uint) error {
	post, err := s.fetch(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != requesterID {
		return apperrors.ErrNotPostOwner
	}
	if err := s.postRepo.Delete(ctx, post); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// Like prepends a like entry for the requester. A user may like a post only
// once; membership is checked by a linear scan of the like list.
func (s *postService) Like(ctx context.Context, postID uuid.UUID, requesterID uint) (*model.Post, error) {
	post, err := s.fetch(ctx, postID)
	if err != nil {
		return nil, err
	}

	for _, like := range post.Likes {
		if like.UserID == requesterID {
			return nil, apperrors.ErrAlreadyLiked
		}
	}

	like := model.Like{PostID: post.ID, UserID: requesterID}
	if err := s.postRepo.AddLike(ctx, &like); err != nil {
		return nil, fmt.Errorf("add like: %w", err)
	}

	post.Likes = append([]model.Like{like}, post.Likes...)
	return post, nil
}

// Unlike removes the requester's like entry, located by linear scan.
func (s *postService) Unlike(ctx context.Context, postID uuid.UUID, requesterID uint) (*model.Post, error) {
	post, err := s.fetch(ctx, postID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, like := range post.Likes {
		if like.UserID == requesterID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, apperrors.ErrNotLiked
	}

	if err := s.postRepo.RemoveLike(ctx, post.Likes[index].ID); err != nil {
		return nil, fmt.Errorf("remove like: %w", err)
	}

	post.Likes = append(post.Likes[:index], post.Likes[index+1:]...)
	return post, nil
}

// AddComment prepends a new comment entry with its own generated identity and
// timestamp. There is no limit on comment count.
func (s *postService) AddComment(ctx context.Context, postID uuid.UUID, text, name, avatar string, requesterID uint) (*model.Post, error) {
	post, err := s.fetch(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := model.Comment{
		PostID: post.ID,
		UserID: requesterID,
		Text:   text,
		Name:   name,
		Avatar: avatar,
	}
	if err := s.postRepo.AddComment(ctx, &comment); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	post.Comments = append([]model.Comment{comment}, post.Comments...)
	return post, nil
}

// DeleteComment removes a comment located by its id among the post's
// comments. Only the comment's author may delete it, even when the requester
// owns the post.
func (s *postService) DeleteComment(ctx context.Context, postID, commentID uuid.UUID, requesterID uint) (*model.Post, error) {
	post, err := s.fetch(ctx, postID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, comment := range post.Comments {
		if comment.ID == commentID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, apperrors.ErrCommentNotFound
	}
	if post.Comments[index].UserID != requesterID {
		return nil, apperrors.ErrNotCommentOwner
	}

	if err := s.postRepo.RemoveComment(ctx, commentID); err != nil {
		return nil, fmt.Errorf("remove comment: %w", err)
	}

	post.Comments = append(post.Comments[:index], post.Comments[index+1:]...)
	return post, nil
}
