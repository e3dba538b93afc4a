package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boulevard/internal/models/db_models"
	"boulevard/internal/models/request_models"
	mem "boulevard/pkg/memcache"
	"boulevard/pkg/utils"
)

func recoveryFixture(t *testing.T) (*fakeUserRepo, mem.ResetTokenStore, *fakeMailService, AccountService) {
	t.Helper()
	hash, err := utils.HashPassword("clave-vieja")
	require.NoError(t, err)

	users := &fakeUserRepo{users: []db_models.User{{
		BaseModel:    db_models.BaseModel{ID: uuid.New()},
		Email:        "ana@example.com",
		Username:     "ana",
		PasswordHash: hash,
	}}}
	tokens := mem.NewResetTokens()
	mail := &fakeMailService{}
	return users, tokens, mail, NewAccountService(users, tokens, mail)
}

func TestResetTokenLivesOneHour(t *testing.T) {
	assert.Equal(t, time.Hour, resetTokenTTL)
}

func TestPasswordRecoveryRoundTrip(t *testing.T) {
	users, tokens, mail, svc := recoveryFixture(t)

	require.NoError(t, svc.RequestPasswordRecovery(context.Background(), "ana@example.com"))
	require.Len(t, mail.resetTokens, 1)
	token := mail.resetTokens[0]

	email, ok := tokens.Peek(token)
	require.True(t, ok)
	assert.Equal(t, "ana@example.com", email)

	err := svc.ResetPassword(context.Background(), request_models.ResetPasswordRequest{
		Token:       token,
		NewPassword: "clave-nueva",
	})
	require.NoError(t, err)
	assert.NoError(t, utils.ComparePasswords(users.users[0].PasswordHash, "clave-nueva"))

	// Single-use: the same token must not work twice.
	err = svc.ResetPassword(context.Background(), request_models.ResetPasswordRequest{
		Token:       token,
		NewPassword: "otra-clave",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidResetToken)
}

func TestPasswordRecoveryUnknownEmailStaysSilent(t *testing.T) {
	_, _, mail, svc := recoveryFixture(t)

	require.NoError(t, svc.RequestPasswordRecovery(context.Background(), "nadie@example.com"))
	assert.Empty(t, mail.sent)
}

func TestPasswordRecoveryMailFailureStaysSilent(t *testing.T) {
	users := &fakeUserRepo{users: []db_models.User{{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Email:     "ana@example.com",
	}}}
	svc := NewAccountService(users, mem.NewResetTokens(), &fakeMailService{failAll: true})

	assert.NoError(t, svc.RequestPasswordRecovery(context.Background(), "ana@example.com"))
}
