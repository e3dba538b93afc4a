package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boulevard/internal/models/db_models"
)

type fakeMailService struct {
	sent        []string
	resetTokens []string
	failAll     bool
}

func (f *fakeMailService) SendNotification(to, subject, body, ctaText, ctaURL string) error {
	if f.failAll {
		return errors.New("smtp down")
	}
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeMailService) SendPasswordReset(email, token string) error {
	if f.failAll {
		return errors.New("smtp down")
	}
	f.sent = append(f.sent, email)
	f.resetTokens = append(f.resetTokens, token)
	return nil
}

func followedEstablishment(followers ...db_models.User) (*fakeEstablishmentRepo, db_models.Establishment) {
	est := db_models.Establishment{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      "La Esquina",
	}
	repo := newFakeEstablishmentRepo(est)
	repo.followers = followers
	return repo, est
}

func TestNotifyFollowersWritesAndMails(t *testing.T) {
	ana := db_models.User{BaseModel: db_models.BaseModel{ID: uuid.New()}, Email: "ana@example.com"}
	luis := db_models.User{BaseModel: db_models.BaseModel{ID: uuid.New()}, Email: "luis@example.com"}
	sinCorreo := db_models.User{BaseModel: db_models.BaseModel{ID: uuid.New()}}

	ests, est := followedEstablishment(ana, luis, sinCorreo)
	notifications := &fakeNotificationRepo{}
	mail := &fakeMailService{}
	svc := NewNotificationService(notifications, ests, mail)

	count, err := svc.NotifyFollowers(context.Background(), est.ID.String(), "La Esquina tiene una nueva promoción", db_models.NotificationPromotion)
	require.NoError(t, err)

	assert.Equal(t, 3, count)
	require.Len(t, notifications.created, 3)
	assert.Equal(t, db_models.NotificationPromotion, notifications.created[0].Kind)
	assert.ElementsMatch(t, []string{"ana@example.com", "luis@example.com"}, mail.sent)
}

func TestNotifyFollowersMailFailureIsNotFatal(t *testing.T) {
	ana := db_models.User{BaseModel: db_models.BaseModel{ID: uuid.New()}, Email: "ana@example.com"}

	ests, est := followedEstablishment(ana)
	notifications := &fakeNotificationRepo{}
	svc := NewNotificationService(notifications, ests, &fakeMailService{failAll: true})

	count, err := svc.NotifyFollowers(context.Background(), est.ID.String(), "novedad", db_models.NotificationSystem)
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	require.Len(t, notifications.created, 1)
}

func TestNotifyFollowersNoFollowers(t *testing.T) {
	ests, est := followedEstablishment()
	notifications := &fakeNotificationRepo{}
	mail := &fakeMailService{}
	svc := NewNotificationService(notifications, ests, mail)

	count, err := svc.NotifyFollowers(context.Background(), est.ID.String(), "novedad", db_models.NotificationSystem)
	require.NoError(t, err)

	assert.Equal(t, 0, count)
	assert.Empty(t, notifications.created)
	assert.Empty(t, mail.sent)
}
