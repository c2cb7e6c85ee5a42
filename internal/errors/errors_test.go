package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	testCases := []struct {
		name   string
		err    *Error
		kind   Kind
		status int
	}{
		{"validation", NewValidation("bad config"), KindValidation, http.StatusBadRequest},
		{"domain", NewDomain("bad char"), KindDomain, http.StatusBadRequest},
		{"capability", NewCapability("unknown kind"), KindCapability, http.StatusNotFound},
		{"internal", NewInternal("boom"), KindInternal, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !IsKind(tc.err, tc.kind) {
				t.Errorf("IsKind(%v, %v) = false", tc.err, tc.kind)
			}
			if got := ToHTTPStatus(tc.err); got != tc.status {
				t.Errorf("ToHTTPStatus = %d, want %d", got, tc.status)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := NewInternalWithCause("wrapper", cause)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
	if err.Error() != "wrapper: root cause" {
		t.Errorf("Error() = %q", err.Error())
	}
}

// Kind checks must see through fmt.Errorf %w wrapping, the way pipeline
// stages wrap stage errors.
func TestKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("stage %q: %w", "caesar", NewDomain("bad char"))
	if !IsDomain(err) {
		t.Error("IsDomain should see through fmt.Errorf wrapping")
	}
	if ToHTTPStatus(err) != http.StatusBadRequest {
		t.Errorf("ToHTTPStatus = %d, want %d", ToHTTPStatus(err), http.StatusBadRequest)
	}
}

func TestKindString(t *testing.T) {
	if KindValidation.String() != "validation" {
		t.Errorf("KindValidation.String() = %q", KindValidation.String())
	}
	if KindDomain.String() != "domain" {
		t.Errorf("KindDomain.String() = %q", KindDomain.String())
	}
}

func TestNonAppError(t *testing.T) {
	err := stderrors.New("plain")
	if IsValidation(err) || IsDomain(err) || IsCapability(err) {
		t.Error("plain errors should not match any kind")
	}
	if ToHTTPStatus(err) != http.StatusInternalServerError {
		t.Errorf("ToHTTPStatus = %d, want 500", ToHTTPStatus(err))
	}
}
