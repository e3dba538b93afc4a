package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boulevard/internal/models/db_models"
	"boulevard/internal/models/request_models"
	"boulevard/pkg/utils"
)

type fakeUserRepo struct {
	users []db_models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *db_models.User) error { return nil }
func (f *fakeUserRepo) Update(ctx context.Context, user *db_models.User) error { return nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*db_models.User, error) {
	for i := range f.users {
		if f.users[i].ID.String() == id {
			return &f.users[i], nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*db_models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*db_models.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) List(ctx context.Context) ([]db_models.User, error) { return nil, nil }
func (f *fakeUserRepo) ListByVendorRequest(ctx context.Context, status string) ([]db_models.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	for i := range f.users {
		if f.users[i].ID.String() == id {
			f.users[i].PasswordHash = passwordHash
		}
	}
	return nil
}

type fakeCommentRepo struct {
	comments []db_models.Comment
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *db_models.Comment) error {
	f.comments = append(f.comments, *comment)
	return nil
}
func (f *fakeCommentRepo) GetByID(ctx context.Context, id string) (*db_models.Comment, error) {
	for i := range f.comments {
		if f.comments[i].ID.String() == id {
			return &f.comments[i], nil
		}
	}
	return nil, nil
}
func (f *fakeCommentRepo) ListByEstablishment(ctx context.Context, establishmentID uuid.UUID) ([]db_models.Comment, error) {
	return f.comments, nil
}
func (f *fakeCommentRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeCommentRepo) AverageRating(ctx context.Context, establishmentID uuid.UUID) (float64, int64, error) {
	return 0, 0, nil
}

type fakeNotificationRepo struct {
	created []db_models.Notification
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *db_models.Notification) error {
	f.created = append(f.created, *n)
	return nil
}
func (f *fakeNotificationRepo) CreateBatch(ctx context.Context, ns []db_models.Notification) error {
	f.created = append(f.created, ns...)
	return nil
}
func (f *fakeNotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Notification, error) {
	return nil, nil
}
func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) (int64, error) {
	return 1, nil
}
func (f *fakeNotificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID) error { return nil }
func (f *fakeNotificationRepo) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func commentFixture() (*fakeEstablishmentRepo, *fakeUserRepo, *fakeNotificationRepo, db_models.User, db_models.Establishment) {
	owner := db_models.User{BaseModel: db_models.BaseModel{ID: uuid.New()}, Username: "dueno"}
	visitor := db_models.User{BaseModel: db_models.BaseModel{ID: uuid.New()}, Username: "visitante"}
	est := db_models.Establishment{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      "La Esquina",
		OwnerID:   owner.ID,
	}
	return newFakeEstablishmentRepo(est),
		&fakeUserRepo{users: []db_models.User{owner, visitor}},
		&fakeNotificationRepo{},
		visitor, est
}

func TestCreateCommentRejectsOutOfRangeRating(t *testing.T) {
	ests, users, notifications, visitor, est := commentFixture()
	svc := NewCommentService(&fakeCommentRepo{}, ests, users, notifications)

	for _, rating := range []int{-1, 6, 100} {
		_, err := svc.Create(context.Background(), visitor.ID.String(), request_models.CreateCommentRequest{
			EstablishmentID: est.ID.String(),
			Text:            "rico",
			Rating:          rating,
		})
		assert.ErrorIs(t, err, utils.ErrInvalidRating, "rating %d", rating)
	}
}

func TestCreateCommentNotifiesOwner(t *testing.T) {
	ests, users, notifications, visitor, est := commentFixture()
	svc := NewCommentService(&fakeCommentRepo{}, ests, users, notifications)

	resp, err := svc.Create(context.Background(), visitor.ID.String(), request_models.CreateCommentRequest{
		EstablishmentID: est.ID.String(),
		Text:            "muy rico todo",
		Rating:          5,
	})
	require.NoError(t, err)
	assert.Equal(t, "visitante", resp.Username)
	assert.Equal(t, 5, resp.Rating)

	require.Len(t, notifications.created, 1)
	assert.Equal(t, est.OwnerID, notifications.created[0].UserID)
	assert.Equal(t, db_models.NotificationComment, notifications.created[0].Kind)
}

func TestCreateCommentByOwnerSkipsNotification(t *testing.T) {
	ests, users, notifications, _, est := commentFixture()
	svc := NewCommentService(&fakeCommentRepo{}, ests, users, notifications)

	_, err := svc.Create(context.Background(), est.OwnerID.String(), request_models.CreateCommentRequest{
		EstablishmentID: est.ID.String(),
		Text:            "gracias por venir",
	})
	require.NoError(t, err)
	assert.Empty(t, notifications.created)
}

func TestCreateCommentUnknownEstablishment(t *testing.T) {
	ests, users, notifications, visitor, _ := commentFixture()
	svc := NewCommentService(&fakeCommentRepo{}, ests, users, notifications)

	_, err := svc.Create(context.Background(), visitor.ID.String(), request_models.CreateCommentRequest{
		EstablishmentID: uuid.NewString(),
		Text:            "hola",
	})
	assert.ErrorIs(t, err, utils.ErrEstablishmentNotFound)
}
