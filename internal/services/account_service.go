package services

import (
	"context"
	"log"
	"time"

	"boulevard/internal/models/db_models"
	"boulevard/internal/models/request_models"
	"boulevard/internal/models/response_models"
	"boulevard/internal/repositories"
	mem "boulevard/pkg/memcache"
	"boulevard/pkg/utils"
)

const resetTokenTTL = time.Hour

type AccountService interface {
	Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.UserResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	RequestPasswordRecovery(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) error

	GetProfile(ctx context.Context, userID string) (*response_models.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req request_models.UpdateProfileRequest) (*response_models.UserResponse, error)
	RequestVendorRole(ctx context.Context, userID string) error
	ResolveVendorRequest(ctx context.Context, userID string, decision string) error
	ListVendorRequests(ctx context.Context) ([]response_models.UserResponse, error)
}

type accountService struct {
	users  repositories.UserRepository
	tokens mem.ResetTokenStore
	mail   IMailService
}

func NewAccountService(users repositories.UserRepository, tokens mem.ResetTokenStore, mail IMailService) AccountService {
	return &accountService{users: users, tokens: tokens, mail: mail}
}

func toUserResponse(u *db_models.User) *response_models.UserResponse {
	return &response_models.UserResponse{
		ID:            u.ID.String(),
		Email:         u.Email,
		Username:      u.Username,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Bio:           u.Bio,
		ProfilePhoto:  u.ProfilePhoto,
		CoverPhoto:    u.CoverPhoto,
		Role:          u.Role,
		VendorRequest: u.VendorRequest,
	}
}

func (s *accountService) Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.UserResponse, error) {
	if existing, err := s.users.GetByEmail(ctx, req.Email); err != nil {
		return nil, utils.ErrDatabaseError
	} else if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}
	if existing, err := s.users.GetByUsername(ctx, req.Username); err != nil {
		return nil, utils.ErrDatabaseError
	} else if existing != nil {
		return nil, utils.ErrUsernameTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &db_models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         db_models.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toUserResponse(user), nil
}

func (s *accountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &response_models.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// RequestPasswordRecovery always succeeds from the caller's point of
// view so the endpoint does not leak which emails are registered.
func (s *accountService) RequestPasswordRecovery(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return err
	}
	s.tokens.Set(token, user.Email, resetTokenTTL)

	if err := s.mail.SendPasswordReset(user.Email, token); err != nil {
		log.Printf("password reset mail to %s failed: %v", user.Email, err)
	}
	return nil
}

func (s *accountService) ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) error {
	email := s.tokens.Consume(req.Token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID.String(), hash); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *accountService) GetProfile(ctx context.Context, userID string) (*response_models.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func (s *accountService) UpdateProfile(ctx context.Context, userID string, req request_models.UpdateProfileRequest) (*response_models.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.ProfilePhoto != nil {
		user.ProfilePhoto = *req.ProfilePhoto
	}
	if req.CoverPhoto != nil {
		user.CoverPhoto = *req.CoverPhoto
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toUserResponse(user), nil
}

func (s *accountService) RequestVendorRole(ctx context.Context, userID string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}
	if user.Role == db_models.RoleSeller {
		return utils.ErrInvalidInput
	}

	user.VendorRequest = db_models.VendorRequestPending
	if err := s.users.Update(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *accountService) ResolveVendorRequest(ctx context.Context, userID string, decision string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}
	if user.VendorRequest != db_models.VendorRequestPending {
		return utils.ErrInvalidInput
	}

	user.VendorRequest = decision
	if decision == db_models.VendorRequestApproved {
		user.Role = db_models.RoleSeller
	}
	if err := s.users.Update(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *accountService) ListVendorRequests(ctx context.Context) ([]response_models.UserResponse, error) {
	users, err := s.users.ListByVendorRequest(ctx, db_models.VendorRequestPending)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *toUserResponse(&users[i]))
	}
	return out, nil
}
