package utils

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrEmptyMessage         = errors.New("empty message")
	ErrDatabaseError        = errors.New("database error")
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	ErrEstablishmentNotFound = errors.New("establishment not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrTypeNotFound          = errors.New("type not found")
	ErrLocationNotFound      = errors.New("location not found")
	ErrScheduleNotFound      = errors.New("schedule not found")
	ErrCommentNotFound       = errors.New("comment not found")
	ErrPromotionNotFound     = errors.New("promotion not found")
	ErrNotificationNotFound  = errors.New("notification not found")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrNotOwner           = errors.New("caller does not own this establishment")
	ErrForbidden          = errors.New("insufficient permissions")

	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrInvalidStatus = errors.New("invalid status value")
	ErrImageMismatch = errors.New("image order must contain exactly the existing images")
)
