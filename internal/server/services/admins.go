package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"

	"github.com/rmoraesb/sentinela/internal/common"
	"github.com/rmoraesb/sentinela/internal/server/auth"
	"github.com/rmoraesb/sentinela/internal/server/config"
	"github.com/rmoraesb/sentinela/internal/server/models"
	"github.com/rmoraesb/sentinela/internal/server/repositories/repomanager"
)

// argon2id parameters. Fixed rather than configurable so stored hashes stay
// verifiable across deployments.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

type AdminService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewAdminService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AdminService {
	return &AdminService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// hashPassword derives an argon2id hash and encodes it in the standard
// $argon2id$... form.
func hashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// verifyPassword re-derives the hash with the stored salt and compares in
// constant time.
func verifyPassword(encoded, password string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}

	var memory, timeCost uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &timeCost, &threads); err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}

	got := argon2.IDKey([]byte(password), salt, timeCost, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(want, got) == 1
}

// Register creates a new admin account with a hashed password.
func (s *AdminService) Register(ctx context.Context, username, password string) (*models.Admin, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	admin := &models.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}

	admin, err = s.repomanager.Admins(s.db).Create(ctx, admin)
	if err != nil {
		return nil, fmt.Errorf("error creating admin: %w", err)
	}

	return admin, nil
}

// Login verifies credentials server-side and issues a session token.
// Unknown usernames and wrong passwords are indistinguishable to the
// caller.
func (s *AdminService) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.repomanager.Admins(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !verifyPassword(admin.PasswordHash, password) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(admin.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
