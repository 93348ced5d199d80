package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/parkslookup/parks-api/pkg/errors"
)

type registerBody struct {
	UserName    string `json:"user_name" validate:"required,min=3"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,phone"`
}

func requireValidationError(t *testing.T, err error) map[string]string {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %#v", typed.Details())
	}
	return details
}

func TestDecodeJSONBodyValid(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(
		`{"user_name":"alice","email":"alice@example.com","phone_number":"360-569-6571"}`))

	var body registerBody
	if err := DecodeJSONBody(r, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.UserName != "alice" {
		t.Fatalf("unexpected username %q", body.UserName)
	}
}

func TestDecodeJSONBodyUnknownField(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(
		`{"user_name":"alice","email":"alice@example.com","phone_number":"360-569-6571","extra":true}`))

	var body registerBody
	err := DecodeJSONBody(r, &body)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyFieldErrors(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(
		`{"user_name":"al","email":"not-an-email","phone_number":"12345"}`))

	var body registerBody
	details := requireValidationError(t, DecodeJSONBody(r, &body))
	for _, field := range []string{"user_name", "email", "phone_number"} {
		if _, ok := details[field]; !ok {
			t.Fatalf("expected detail for %q, got %v", field, details)
		}
	}
}

func TestPhoneTag(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{"360-569-6571", true},
		{"907-683-9532", true},
		{"060-569-6571", false},
		{"360-069-6571", false},
		{"3605696571", false},
		{"360-569-657", false},
		{"360-569-65712", false},
	}
	for _, tc := range cases {
		r := httptest.NewRequest("POST", "/", strings.NewReader(
			`{"user_name":"alice","email":"alice@example.com","phone_number":"`+tc.value+`"}`))
		var body registerBody
		err := DecodeJSONBody(r, &body)
		if tc.valid && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.value, err)
		}
		if !tc.valid && err == nil {
			t.Fatalf("%s: expected rejection", tc.value)
		}
	}
}

func TestParseQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/?pageSize=20", nil)
	value, err := ParseQueryInt(r, "pageSize", 10, 1, 100)
	if err != nil || value != 20 {
		t.Fatalf("got %d, %v", value, err)
	}

	value, err = ParseQueryInt(r, "pageIndex", 1, 1, 100)
	if err != nil || value != 1 {
		t.Fatalf("default: got %d, %v", value, err)
	}

	r = httptest.NewRequest("GET", "/?pageSize=abc", nil)
	if _, err := ParseQueryInt(r, "pageSize", 10, 1, 100); err == nil {
		t.Fatal("expected error for non-numeric value")
	}

	r = httptest.NewRequest("GET", "/?pageSize=500", nil)
	if _, err := ParseQueryInt(r, "pageSize", 10, 1, 100); err == nil {
		t.Fatal("expected error for out-of-range value")
	}
}

func TestParseSortOrder(t *testing.T) {
	for _, raw := range []string{"", "asc", "desc", "DESC"} {
		r := httptest.NewRequest("GET", "/?sortOrder="+raw, nil)
		if _, err := ParseSortOrder(r); err != nil {
			t.Fatalf("%q: unexpected error %v", raw, err)
		}
	}
	r := httptest.NewRequest("GET", "/?sortOrder=sideways", nil)
	if _, err := ParseSortOrder(r); err == nil {
		t.Fatal("expected rejection of unknown sort order")
	}
}
