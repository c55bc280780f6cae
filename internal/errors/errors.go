package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already exists")
	// ErrUserNotFound is returned when no user matches the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrPasswordIncorrect is returned when login credentials do not match.
	ErrPasswordIncorrect = errors.New("password incorrect")
	// ErrPostNotFound is returned when a post is not found.
	ErrPostNotFound = errors.New("post not found")
	// ErrNotPostOwner is returned when a requester tries to delete someone else's post.
	ErrNotPostOwner = errors.New("user is not the post owner")
	// ErrAlreadyLiked is returned when a user likes a post twice.
	ErrAlreadyLiked = errors.New("user already liked this post")
	// ErrNotLiked is returned when a user unlikes a post they have not liked.
	ErrNotLiked = errors.New("user has not liked this post")
	// ErrCommentNotFound is returned when no comment matches the given id.
	ErrCommentNotFound = errors.New("comment does not exist")
	// ErrNotCommentOwner is returned when a requester tries to delete someone else's comment.
	ErrNotCommentOwner = errors.New("user is not the comment owner")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, ErrEmailTaken.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrPasswordIncorrect):
		return NewHTTPError(http.StatusBadRequest, ErrPasswordIncorrect.Error(), "PASSWORD_INCORRECT")
	case errors.Is(err, ErrPostNotFound):
		return NewHTTPError(http.StatusNotFound, ErrPostNotFound.Error(), "POST_NOT_FOUND")
	case errors.Is(err, ErrNotPostOwner):
		return NewHTTPError(http.StatusUnauthorized, ErrNotPostOwner.Error(), "NOT_POST_OWNER")
	case errors.Is(err, ErrAlreadyLiked):
		return NewHTTPError(http.StatusBadRequest, ErrAlreadyLiked.Error(), "ALREADY_LIKED")
	case errors.Is(err, ErrNotLiked):
		return NewHTTPError(http.StatusBadRequest, ErrNotLiked.Error(), "NOT_LIKED")
	case errors.Is(err, ErrCommentNotFound):
		return NewHTTPError(http.StatusBadRequest, ErrCommentNotFound.Error(), "COMMENT_NOT_FOUND")
	case errors.Is(err, ErrNotCommentOwner):
		return NewHTTPError(http.StatusUnauthorized, ErrNotCommentOwner.Error(), "NOT_COMMENT_OWNER")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
