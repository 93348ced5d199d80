package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/parkslookup/parks-api/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "secret",
		Issuer:            "http://localhost:5006",
		Audience:          "http://localhost:5006",
		ExpirationMinutes: 60,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now().UTC()
	parkID := uint(3)

	payload := AccessTokenPayload{
		UserID:     42,
		UserName:   "ranger.rick",
		ParkID:     &parkID,
		IsEmployee: true,
	}

	token, err := MintAccessToken(cfg, now, payload)
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}

	if claims.UserID != 42 {
		t.Fatalf("expected user_id 42, got %d", claims.UserID)
	}
	if claims.UserName != "ranger.rick" {
		t.Fatalf("unexpected user_name %q", claims.UserName)
	}
	if claims.ParkID == nil || *claims.ParkID != parkID {
		t.Fatal("park id not preserved")
	}
	if !claims.IsEmployee {
		t.Fatal("is_employee not preserved")
	}

	// RegisteredClaims is embedded, so access fields directly.
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("expected issuer %s, got %s", cfg.Issuer, claims.Issuer)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != cfg.Audience {
		t.Fatalf("unexpected audience %v", claims.Audience)
	}

	exp := now.Add(time.Duration(cfg.ExpirationMinutes) * time.Minute)
	diff := claims.ExpiresAt.Sub(exp)
	if diff < 0 {
		diff = -diff
	}
	if diff >= time.Second {
		t.Fatalf("expected exp roughly %v, got %v (diff %v)", exp.UTC(), claims.ExpiresAt.UTC(), diff)
	}
}

func TestParseAccessTokenInvalidSignature(t *testing.T) {
	cfg := testJWTConfig()

	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserID: 1, UserName: "visitor"})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	if _, err = ParseAccessToken(cfg, token+"x"); err == nil {
		t.Fatal("expected invalid signature error")
	}
}

func TestParseAccessTokenExpired(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now().Add(-2 * time.Hour)

	token, err := MintAccessToken(cfg, now, AccessTokenPayload{UserID: 1, UserName: "visitor"})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	_, err = ParseAccessToken(cfg, token)
	if err == nil {
		t.Fatal("expected expiration error")
	}
	if !strings.Contains(err.Error(), "expired") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseAccessTokenWrongAudience(t *testing.T) {
	cfg := testJWTConfig()

	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserID: 1, UserName: "visitor"})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	other := cfg
	other.Audience = "http://other.example"
	if _, err = ParseAccessToken(other, token); err == nil {
		t.Fatal("expected audience mismatch error")
	}
}

func TestMintAccessTokenMissingUser(t *testing.T) {
	cfg := testJWTConfig()

	if _, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserName: "visitor"}); err == nil {
		t.Fatal("expected missing user id error")
	}
	if _, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserID: 7}); err == nil {
		t.Fatal("expected missing user name error")
	}
}
