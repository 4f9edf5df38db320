package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		publicMsg string
		retryable bool
		detailsOK bool
	}{
		{code: CodeValidation, status: http.StatusBadRequest, publicMsg: "validation failed", detailsOK: true},
		{code: CodeUnauthorized, status: http.StatusUnauthorized, publicMsg: "authentication required"},
		{code: CodeForbidden, status: http.StatusForbidden, publicMsg: "access denied"},
		{code: CodeNotFound, status: http.StatusNotFound, publicMsg: "resource not found"},
		{code: CodeConflict, status: http.StatusConflict, publicMsg: "conflict detected"},
		{code: CodeInternal, status: http.StatusInternalServerError, publicMsg: "internal server error", retryable: true},
		{code: CodeDependency, status: http.StatusServiceUnavailable, publicMsg: "loyalty API unavailable", retryable: true, detailsOK: true},
		{code: CodeShape, status: http.StatusBadGateway, publicMsg: "loyalty API returned an unexpected payload", detailsOK: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.HTTPStatus != tt.status {
			t.Fatalf("code %s expected status %d got %d", tt.code, tt.status, meta.HTTPStatus)
		}
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal status, got %d", meta.HTTPStatus)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing endDate")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing endDate" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatalf("details should be nil by default")
	}

	cause := stdErrors.New("connection refused")
	wrapped := Wrap(CodeDependency, cause, "fetch points summary")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("wrapped error should unwrap to cause")
	}
	if As(wrapped) == nil {
		t.Fatalf("As should locate a typed error in the chain")
	}

	if got := Wrap(CodeDependency, nil, "no cause"); got.Unwrap() != nil {
		t.Fatalf("nil cause should produce a plain error")
	}
}

func TestDumpCollectsRemoteDetail(t *testing.T) {
	remote := &RemoteError{StatusCode: 503, Endpoint: "/v1/analytics/summary", Body: "upstream down"}
	err := Wrap(CodeDependency, remote, "fetch analytics summary")

	d := Dump(err)
	if d.Code != CodeDependency {
		t.Fatalf("unexpected code %s", d.Code)
	}
	if d.HTTPStatus != 503 {
		t.Fatalf("unexpected status %d", d.HTTPStatus)
	}
	if d.Endpoint != "/v1/analytics/summary" {
		t.Fatalf("unexpected endpoint %q", d.Endpoint)
	}
	if len(d.Chain) < 2 {
		t.Fatalf("expected chain entries, got %v", d.Chain)
	}
}
