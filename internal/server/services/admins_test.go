package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmoraesb/sentinela/internal/common"
	"github.com/rmoraesb/sentinela/internal/server/auth"
	"github.com/rmoraesb/sentinela/internal/server/config"
)

func newAdminService(rm *fakeRepoManager) *AdminService {
	cfg := &config.Config{
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: time.Minute,
	}
	return NewAdminService(nil, rm, cfg)
}

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, err := hashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, verifyPassword(hash, "s3cret"))
	assert.False(t, verifyPassword(hash, "wrong"))
}

func TestHashPassword_SaltVaries(t *testing.T) {
	h1, err := hashPassword("same")
	require.NoError(t, err)
	h2, err := hashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	assert.False(t, verifyPassword("", "x"))
	assert.False(t, verifyPassword("$bcrypt$whatever", "x"))
	assert.False(t, verifyPassword("$argon2id$v=19$m=65536,t=1,p=4$!!!$!!!", "x"))
}

func TestRegisterAndLogin(t *testing.T) {
	rm := newFakeRepoManager()
	svc := newAdminService(rm)
	ctx := context.Background()

	admin, err := svc.Register(ctx, "alice", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, admin.ID)
	assert.NotContains(t, admin.PasswordHash, "hunter2")

	token, err := svc.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)

	id, err := auth.GetAdminIDFromToken(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, admin.ID, id)
}

func TestLogin_WrongPassword(t *testing.T) {
	rm := newFakeRepoManager()
	svc := newAdminService(rm)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "hunter2")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "hunter3")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	rm := newFakeRepoManager()
	rm.admins.getErr = common.ErrorNotFound
	svc := newAdminService(rm)

	_, err := svc.Login(context.Background(), "nobody", "pw")
	// Indistinguishable from a wrong password.
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}
