package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgErrors "realtime-checklist/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	base := pkgErrors.NewHTTPError(404, "checklist not found")
	wrapped := fmt.Errorf("handler: %w", base)

	he, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok {
		t.Fatal("expected wrapped HTTPError to be found")
	}
	if he.Code != 404 || he.Message != "checklist not found" {
		t.Errorf("unexpected error: %+v", he)
	}

	if _, ok := pkgErrors.AsHTTPError(errors.New("plain")); ok {
		t.Error("plain error should not be an HTTPError")
	}
	if base.Error() != "404: checklist not found" {
		t.Errorf("Error() = %q", base.Error())
	}
}
