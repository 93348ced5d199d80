package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgauth "github.com/parkslookup/parks-api/pkg/auth"
	"github.com/parkslookup/parks-api/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "middleware-test-secret-middleware-test",
		Issuer:            "parks-api",
		Audience:          "parks-clients",
		ExpirationMinutes: 60,
	}
}

func mintToken(t *testing.T) string {
	t.Helper()
	parkID := uint(3)
	token, err := pkgauth.MintAccessToken(testJWTConfig(), time.Now(), pkgauth.AccessTokenPayload{
		UserID:     7,
		UserName:   "alice",
		ParkID:     &parkID,
		IsEmployee: true,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestAuthSeedsContext(t *testing.T) {
	var gotUserID uint
	var gotUserName string
	var gotParkID *uint
	var gotEmployee bool

	handler := Auth(testJWTConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
		gotUserName = UserNameFromContext(r.Context())
		gotParkID = ParkIDFromContext(r.Context())
		gotEmployee = IsEmployeeFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+mintToken(t))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotUserID != 7 || gotUserName != "alice" || !gotEmployee {
		t.Fatalf("context not seeded: id=%d name=%q employee=%v", gotUserID, gotUserName, gotEmployee)
	}
	if gotParkID == nil || *gotParkID != 3 {
		t.Fatalf("park id not seeded: %v", gotParkID)
	}
}

func TestAuthRejections(t *testing.T) {
	handler := Auth(testJWTConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	cases := map[string]string{
		"missing header": "",
		"empty bearer":   "Bearer ",
		"garbage token":  "Bearer not.a.jwt",
	}
	for name, header := range cases {
		r := httptest.NewRequest("GET", "/", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, rec.Code)
		}
	}
}

func TestAuthRejectsWrongSecret(t *testing.T) {
	other := testJWTConfig()
	other.Secret = "completely-different-secret-value!!"
	token, err := pkgauth.MintAccessToken(other, time.Now(), pkgauth.AccessTokenPayload{UserID: 7, UserName: "alice"})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	handler := Auth(testJWTConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
