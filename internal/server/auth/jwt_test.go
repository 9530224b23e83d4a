package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/rmoraesb/sentinela/internal/common"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	adminID := "admin-123"

	tok, err := GenerateToken(adminID, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	got, err := GetAdminIDFromToken(tok, secret)
	if err != nil {
		t.Fatalf("GetAdminIDFromToken error: %v", err)
	}
	if got != adminID {
		t.Fatalf("adminID mismatch: got %q want %q", got, adminID)
	}
}

func TestGetAdminIDFromToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("a1", []byte("secret"), -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetAdminIDFromToken(tok, []byte("secret"))
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestGetAdminIDFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("a2", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetAdminIDFromToken(tok, []byte("wrong-secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestGetAdminIDFromToken_Garbage(t *testing.T) {
	t.Parallel()

	_, err := GetAdminIDFromToken("not-a-token", []byte("secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}
