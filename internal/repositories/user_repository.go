package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"boulevard/internal/models/db_models"
)

type UserRepository interface {
	Create(ctx context.Context, user *db_models.User) error
	Update(ctx context.Context, user *db_models.User) error
	GetByID(ctx context.Context, id string) (*db_models.User, error)
	GetByEmail(ctx context.Context, email string) (*db_models.User, error)
	GetByUsername(ctx context.Context, username string) (*db_models.User, error)
	List(ctx context.Context) ([]db_models.User, error)
	ListByVendorRequest(ctx context.Context, status string) ([]db_models.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Omit("Establishments", "Liked", "Followed").Save(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) ListByVendorRequest(ctx context.Context, status string) ([]db_models.User, error) {
	var users []db_models.User
	err := r.db.WithContext(ctx).Where("vendor_request = ?", status).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}
