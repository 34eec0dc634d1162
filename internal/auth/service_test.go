package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func testService() *service {
	return &service{
		accessSecret:  "access-secret",
		refreshSecret: "refresh-secret",
		accessTTL:     time.Hour,
		refreshTTL:    72 * time.Hour,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := testService()
	user := &User{ID: 42, Role: RoleManager}

	signed, err := s.generateAccessToken(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.accessSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token did not verify: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if uint(claims["user_id"].(float64)) != 42 {
		t.Errorf("user_id claim = %v, want 42", claims["user_id"])
	}
	if claims["role"] != RoleManager {
		t.Errorf("role claim = %v, want %q", claims["role"], RoleManager)
	}
}

func TestAccessTokenRejectsWrongSecret(t *testing.T) {
	s := testService()

	signed, err := s.generateAccessToken(&User{ID: 1, Role: RoleAdmin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("some-other-secret"), nil
	})
	if err == nil && token.Valid {
		t.Error("token verified with the wrong secret")
	}
}

func TestRefreshTokenUsesSeparateSecret(t *testing.T) {
	s := testService()

	signed, err := s.generateRefreshToken(&User{ID: 7, Role: RoleViewer})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.accessSecret), nil
	})
	if err == nil && token.Valid {
		t.Error("refresh token verified against the access secret")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	s := testService()
	s.accessTTL = -time.Minute

	signed, err := s.generateAccessToken(&User{ID: 3, Role: RoleManager})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.accessSecret), nil
	})
	if err == nil && token.Valid {
		t.Error("expired token verified")
	}
}
