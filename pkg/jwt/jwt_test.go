package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ============================================================================
// Test Helpers
// ============================================================================

func newTestService(t *testing.T) *Service {
	t.Helper()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	return NewTestService(privateKey, "test-issuer", 15*time.Minute)
}

// ============================================================================
// Claims.Valid() Tests
// ============================================================================

func TestClaims_Valid_NoExpiration_ReturnsNil(t *testing.T) {
	t.Parallel()
	claims := Claims{UserID: "user:123", Email: "test@example.com"}

	if err := claims.Valid(); err != nil {
		t.Errorf("expected no error for claims without expiration, got %v", err)
	}
}

func TestClaims_Valid_NotExpired_ReturnsNil(t *testing.T) {
	t.Parallel()
	claims := Claims{
		UserID:    "user:123",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}

	if err := claims.Valid(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestClaims_Valid_Expired_ReturnsError(t *testing.T) {
	t.Parallel()
	claims := Claims{
		UserID:    "user:123",
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	}

	if err := claims.Valid(); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestClaims_Valid_NotYetValid_ReturnsError(t *testing.T) {
	t.Parallel()
	claims := Claims{
		UserID:    "user:123",
		NotBefore: time.Now().Add(time.Hour).Unix(),
	}

	if err := claims.Valid(); !errors.Is(err, ErrTokenNotYetValid) {
		t.Errorf("expected ErrTokenNotYetValid, got %v", err)
	}
}

// ============================================================================
// Sign / Validate Tests
// ============================================================================

func TestSign_Validate_RoundTrip(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	token, err := svc.Sign(Claims{
		Subject: "user:123",
		UserID:  "user:123",
		Email:   "test@example.com",
	})
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}
	if len(strings.Split(token, ".")) != 3 {
		t.Fatalf("expected three token segments, got %q", token)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("failed to validate: %v", err)
	}
	if claims.UserID != "user:123" {
		t.Errorf("expected user:123, got %q", claims.UserID)
	}
	if claims.Email != "test@example.com" {
		t.Errorf("unexpected email %q", claims.Email)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer to be stamped, got %q", claims.Issuer)
	}
	if claims.ExpiresAt == 0 {
		t.Error("expected expiration to be stamped")
	}
}

func TestValidate_Expired_ReturnsError(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	token, err := svc.Sign(Claims{
		UserID:    "user:123",
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	})
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidate_WrongIssuer_ReturnsError(t *testing.T) {
	t.Parallel()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	signer := NewTestService(privateKey, "other-issuer", time.Hour)
	verifier := NewTestService(privateKey, "test-issuer", time.Hour)

	token, err := signer.Sign(Claims{UserID: "user:123"})
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidate_WrongKey_ReturnsInvalidSignature(t *testing.T) {
	t.Parallel()
	signer := newTestService(t)
	verifier := newTestService(t)

	token, err := signer.Sign(Claims{UserID: "user:123"})
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestValidate_TamperedClaims_ReturnsError(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	token, err := svc.Sign(Claims{UserID: "user:123"})
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	parts := strings.Split(token, ".")
	parts[1] = base64URLEncode([]byte(`{"user_id":"user:evil"}`))
	tampered := strings.Join(parts, ".")

	if _, err := svc.Validate(tampered); err == nil {
		t.Error("expected a tampered token to fail validation")
	}
}

func TestValidate_Malformed_ReturnsError(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	for _, token := range []string{"", "a", "a.b", "a.b.c.d", "not a token"} {
		if _, err := svc.Validate(token); err == nil {
			t.Errorf("expected error for %q", token)
		}
	}
}

func TestSign_NoPrivateKey_ReturnsError(t *testing.T) {
	t.Parallel()
	svc := &Service{issuer: "test-issuer"}

	if _, err := svc.Sign(Claims{UserID: "user:123"}); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

// ============================================================================
// Key Handling Tests
// ============================================================================

func TestGenerateKeyPair_LoadsBack(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	privatePath := filepath.Join(dir, "private.pem")
	publicPath := filepath.Join(dir, "public.pem")

	if err := GenerateKeyPair(privatePath, publicPath); err != nil {
		t.Fatalf("failed to generate key pair: %v", err)
	}

	signer, err := NewService(Config{
		PrivateKeyPath: privatePath,
		Issuer:         "test-issuer",
		ExpirationMins: 15,
	})
	if err != nil {
		t.Fatalf("failed to load private key: %v", err)
	}

	verifier, err := NewService(Config{
		PublicKeyPath:  publicPath,
		Issuer:         "test-issuer",
		ExpirationMins: 15,
	})
	if err != nil {
		t.Fatalf("failed to load public key: %v", err)
	}

	token, err := signer.Sign(Claims{UserID: "user:123"})
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	claims, err := verifier.Validate(token)
	if err != nil {
		t.Fatalf("validation-only service must verify: %v", err)
	}
	if claims.UserID != "user:123" {
		t.Errorf("expected user:123, got %q", claims.UserID)
	}

	// A key-less verifier cannot sign.
	if _, err := verifier.Sign(Claims{}); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestGetExpiration(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	if svc.GetExpiration() != 15*time.Minute {
		t.Errorf("expected 15m, got %v", svc.GetExpiration())
	}
}

// ============================================================================
// base64url Tests
// ============================================================================

func TestBase64URL_RoundTrip(t *testing.T) {
	t.Parallel()
	inputs := []string{"", "a", "ab", "abc", "abcd", `{"alg":"RS256"}`}

	for _, in := range inputs {
		encoded := base64URLEncode([]byte(in))
		if strings.ContainsAny(encoded, "=") {
			t.Errorf("encoding of %q must not be padded", in)
		}
		decoded, err := base64URLDecode(encoded)
		if err != nil {
			t.Fatalf("failed to decode %q: %v", encoded, err)
		}
		if string(decoded) != in {
			t.Errorf("round trip of %q gave %q", in, decoded)
		}
	}
}
