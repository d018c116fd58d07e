package json

import (
	"errors"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	type payload struct {
		Value string `json:"value"`
	}

	tests := []struct {
		name      string
		body      string
		wantValue string
		wantError bool
	}{
		{name: "single object", body: `{"value":"ab@x.co"}`, wantValue: "ab@x.co"},
		{name: "surrounding whitespace", body: "  {\"value\":\"x\"}\n", wantValue: "x"},
		{name: "unknown field", body: `{"value":"x","other":1}`, wantError: true},
		{name: "trailing object", body: `{"value":"x"}{"value":"y"}`, wantError: true},
		{name: "empty body", body: ``, wantError: true},
		{name: "malformed", body: `{"value":`, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			err := Decode(strings.NewReader(tt.body), &p)
			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Value != tt.wantValue {
				t.Errorf("expected %q, got %q", tt.wantValue, p.Value)
			}
		})
	}

	var p payload
	if err := Decode(strings.NewReader(`{"value":"x"} 1`), &p); !errors.Is(err, ErrTrailingData) {
		t.Errorf("expected %v, got %v", ErrTrailingData, err)
	}
}
