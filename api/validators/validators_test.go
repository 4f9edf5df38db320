package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/rewardplus/loyalty-console/pkg/errors"
)

type enrollPayload struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

func TestDecodeJSONBodyValid(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`))
	var payload enrollPayload
	if err := DecodeJSONBody(r, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.FirstName != "Ada" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestDecodeJSONBodyMissingRequiredField(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"firstName":"Ada","lastName":"Lovelace"}`))
	var payload enrollPayload
	err := DecodeJSONBody(r, &payload)
	if err == nil {
		t.Fatal("expected validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok || details["email"] != "is required" {
		t.Fatalf("unexpected details: %v", typed.Details())
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"firstName":"Ada","lastName":"L","email":"a@b.co","rogue":true}`))
	var payload enrollPayload
	if err := DecodeJSONBody(r, &payload); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestParseQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/?page=3", nil)
	page, err := ParseQueryInt(r, "page", 0, 0, 100)
	if err != nil || page != 3 {
		t.Fatalf("page = %d, err = %v", page, err)
	}

	r = httptest.NewRequest("GET", "/", nil)
	page, err = ParseQueryInt(r, "page", 7, 0, 100)
	if err != nil || page != 7 {
		t.Fatalf("default page = %d, err = %v", page, err)
	}

	r = httptest.NewRequest("GET", "/?page=abc", nil)
	if _, err = ParseQueryInt(r, "page", 0, 0, 100); err == nil {
		t.Fatal("expected error for non-numeric value")
	}

	r = httptest.NewRequest("GET", "/?page=101", nil)
	if _, err = ParseQueryInt(r, "page", 0, 0, 100); err == nil {
		t.Fatal("expected error for out-of-range value")
	}
}

func TestParsePathID(t *testing.T) {
	id, err := ParsePathID("42", "customerId")
	if err != nil || id != 42 {
		t.Fatalf("id = %d, err = %v", id, err)
	}
	if _, err := ParsePathID("0", "customerId"); err == nil {
		t.Fatal("expected error for zero id")
	}
	if _, err := ParsePathID("abc", "customerId"); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
}
