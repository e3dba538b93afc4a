package services

import (
	"context"

	"github.com/google/uuid"

	"boulevard/internal/models/db_models"
	"boulevard/internal/models/request_models"
	"boulevard/internal/models/response_models"
	"boulevard/internal/repositories"
	"boulevard/pkg/utils"
)

type CommentService interface {
	Create(ctx context.Context, userID string, req request_models.CreateCommentRequest) (*response_models.CommentResponse, error)
	ListByEstablishment(ctx context.Context, establishmentID string) ([]response_models.CommentResponse, error)
	Delete(ctx context.Context, callerID, callerRole, id string) error
}

type commentService struct {
	comments       repositories.CommentRepository
	establishments repositories.EstablishmentRepository
	users          repositories.UserRepository
	notifications  repositories.NotificationRepository
}

func NewCommentService(
	comments repositories.CommentRepository,
	establishments repositories.EstablishmentRepository,
	users repositories.UserRepository,
	notifications repositories.NotificationRepository,
) CommentService {
	return &commentService{
		comments:       comments,
		establishments: establishments,
		users:          users,
		notifications:  notifications,
	}
}

func toCommentResponse(c *db_models.Comment) *response_models.CommentResponse {
	return &response_models.CommentResponse{
		ID:       c.ID.String(),
		Username: c.User.Username,
		Text:     c.Text,
		Rating:   c.Rating,
	}
}

func (s *commentService) Create(ctx context.Context, userID string, req request_models.CreateCommentRequest) (*response_models.CommentResponse, error) {
	// Rating zero means text-only; anything else must be 1..5.
	if req.Rating != 0 && (req.Rating < 1 || req.Rating > 5) {
		return nil, utils.ErrInvalidRating
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	est, err := s.establishments.GetByID(ctx, req.EstablishmentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if est == nil {
		return nil, utils.ErrEstablishmentNotFound
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	comment := &db_models.Comment{
		UserID:          uid,
		EstablishmentID: est.ID,
		Text:            req.Text,
		Rating:          req.Rating,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, utils.ErrDatabaseError
	}
	comment.User = *user

	if est.OwnerID != uid {
		notification := &db_models.Notification{
			UserID:  est.OwnerID,
			Message: user.Username + " comentó en " + est.Name,
			Kind:    db_models.NotificationComment,
		}
		if err := s.notifications.Create(ctx, notification); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}
	return toCommentResponse(comment), nil
}

func (s *commentService) ListByEstablishment(ctx context.Context, establishmentID string) ([]response_models.CommentResponse, error) {
	id, err := parseID(establishmentID)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByEstablishment(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, *toCommentResponse(&comments[i]))
	}
	return out, nil
}

// Delete allows the comment author, the establishment owner, or an admin.
func (s *commentService) Delete(ctx context.Context, callerID, callerRole, id string) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if comment == nil {
		return utils.ErrCommentNotFound
	}

	if callerRole != db_models.RoleAdmin && comment.UserID.String() != callerID {
		est, err := s.establishments.GetByID(ctx, comment.EstablishmentID.String())
		if err != nil {
			return utils.ErrDatabaseError
		}
		if est == nil || est.OwnerID.String() != callerID {
			return utils.ErrForbidden
		}
	}

	if err := s.comments.Delete(ctx, comment.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
