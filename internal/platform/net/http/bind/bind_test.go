package bind

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "lexis/internal/platform/errors"
)

type payload struct {
	Value string `json:"value" validate:"required,min=1"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

func TestParseJSON_OK(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"value":"racecar","limit":10}`))
	got, err := ParseJSON[payload](r)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got.Value != "racecar" || got.Limit != 10 {
		t.Fatalf("parsed mismatch: %+v", got)
	}
}

func TestParseJSON_EmptyBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(""))
	if _, err := ParseJSON[payload](r); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("empty body should be a JSON error, got %v", err)
	}

	// safe methods tolerate empty bodies
	g := httptest.NewRequest("GET", "/x", strings.NewReader(""))
	if _, err := ParseJSON[payload](g); err != nil {
		t.Fatalf("GET empty body should parse to zero value, got %v", err)
	}
}

func TestParseJSON_UnknownField(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"value":"a","nope":1}`))
	if _, err := ParseJSON[payload](r); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("unknown field should be a JSON error, got %v", err)
	}
}

func TestParseJSON_TrailingData(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"value":"a"} {"value":"b"}`))
	if _, err := ParseJSON[payload](r); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("trailing data should be a JSON error, got %v", err)
	}
}

func TestParseJSON_ValidationFailure(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"value":"","limit":10}`))
	_, err := ParseJSON[payload](r)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("missing required value should be a validation error, got %v", err)
	}
	if e, ok := perr.As(err); !ok || e.Field() != "value" {
		t.Fatalf("validation error should carry the field name, got %+v", e)
	}

	r2 := httptest.NewRequest("POST", "/x", strings.NewReader(`{"value":"a","limit":500}`))
	if _, err := ParseJSON[payload](r2); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("out-of-range limit should be a validation error, got %v", err)
	}
}

func TestValidationFieldAndMessage(t *testing.T) {
	if f, m := ValidationFieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil error should yield empty pair")
	}
	err := Get().Validator.Struct(payload{Value: ""})
	f, m := ValidationFieldAndMessage(err)
	if f != "value" || m == "" {
		t.Fatalf("field/message = %q/%q", f, m)
	}
}
