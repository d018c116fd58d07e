package form

import (
	"testing"

	"github.com/matt-dz/formcheck/internal/email"
	"github.com/matt-dz/formcheck/internal/validation"
)

func TestRender(t *testing.T) {
	invalid := Render(validation.Email, validation.Validate(validation.Email, "a@x.co", validation.Context{}))
	if invalid.ID != "email" {
		t.Errorf("expected id %q, got %q", "email", invalid.ID)
	}
	if invalid.Class != ClassInvalid {
		t.Errorf("expected class %q, got %q", ClassInvalid, invalid.Class)
	}
	if !invalid.ErrorVisible {
		t.Error("expected error to be visible")
	}
	if invalid.ErrorText != email.ErrLocalTooShort.Error() {
		t.Errorf("expected error text %q, got %q", email.ErrLocalTooShort.Error(), invalid.ErrorText)
	}

	valid := Render(validation.FullName, validation.Validate(validation.FullName, "Al Lee", validation.Context{}))
	if valid.Class != ClassValid {
		t.Errorf("expected class %q, got %q", ClassValid, valid.Class)
	}
	if valid.ErrorVisible || valid.ErrorText != "" {
		t.Errorf("expected hidden empty error, got %+v", valid)
	}
}

func TestRenderStrength(t *testing.T) {
	tests := []struct {
		score     int
		wantText  string
		wantClass string
	}{
		{score: 0, wantText: "Weak Password", wantClass: "password-strength strength-weak"},
		{score: 1, wantText: "Weak Password", wantClass: "password-strength strength-weak"},
		{score: 2, wantText: "Medium Password", wantClass: "password-strength strength-medium"},
		{score: 3, wantText: "Medium Password", wantClass: "password-strength strength-medium"},
		{score: 4, wantText: "Strong Password", wantClass: "password-strength strength-strong"},
	}

	for _, tt := range tests {
		got := RenderStrength(tt.score)
		if got.Text != tt.wantText || got.Class != tt.wantClass {
			t.Errorf("RenderStrength(%d) = %+v, want {%q %q}", tt.score, got, tt.wantText, tt.wantClass)
		}
	}
}

func TestForm_Input(t *testing.T) {
	f := New(nil)

	if state := f.Field(validation.Email); state.Class != "" {
		t.Errorf("expected untouched field to have no class, got %q", state.Class)
	}

	state := f.Input(validation.Password, "abcdefgh")
	if state.Class != ClassInvalid {
		t.Errorf("expected weak password to be invalid, got %+v", state)
	}
	if got := f.Strength(); got.Text != "Weak Password" {
		t.Errorf("expected weak indicator, got %+v", got)
	}

	f.Input(validation.Password, "Abcdefg1!")
	if got := f.Strength(); got.Text != "Strong Password" {
		t.Errorf("expected strong indicator, got %+v", got)
	}

	// The confirm field reads the password as it is now.
	if state := f.Input(validation.ConfirmPassword, "Abcdefg1!"); state.Class != ClassValid {
		t.Errorf("expected confirm to match, got %+v", state)
	}
	f.Input(validation.Password, "Abcdefg2!")
	if state := f.Field(validation.ConfirmPassword); state.Class != ClassValid {
		t.Errorf("expected confirm state to be untouched by password input, got %+v", state)
	}
	if state := f.Input(validation.ConfirmPassword, "Abcdefg1!"); state.Class != ClassInvalid {
		t.Errorf("expected confirm to mismatch after password change, got %+v", state)
	}
}

func TestForm_Submit(t *testing.T) {
	f := New(validation.New())
	f.Input(validation.FullName, "Jane Doe")
	f.Input(validation.Email, "jane@example")
	f.Input(validation.Password, "Sunrise#42")
	f.Input(validation.ConfirmPassword, "Sunrise#42")

	if f.Submit() {
		t.Fatal("expected submit to fail with an invalid email")
	}
	if state := f.Field(validation.Email); !state.ErrorVisible {
		t.Errorf("expected email error to stay visible, got %+v", state)
	}
	if f.Values().FullName != "Jane Doe" {
		t.Error("expected values to be kept after a failed submit")
	}

	f.Input(validation.Email, "jane@example.com")
	if !f.Submit() {
		t.Fatalf("expected submit to succeed, got %+v", f.Fields())
	}

	if f.Values() != (validation.Values{}) {
		t.Errorf("expected values to be cleared, got %+v", f.Values())
	}
	for _, state := range f.Fields() {
		if state.Class != "" || state.ErrorVisible {
			t.Errorf("expected field %q to be reset, got %+v", state.ID, state)
		}
	}
	if got := f.Strength(); got.Text != "" {
		t.Errorf("expected strength indicator to be cleared, got %+v", got)
	}
}

func TestForm_Fields(t *testing.T) {
	f := New(nil)
	fields := f.Fields()
	want := []string{"fullName", "email", "password", "confirmPassword"}
	if len(fields) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(fields))
	}
	for i, id := range want {
		if fields[i].ID != id {
			t.Errorf("field %d: expected %q, got %q", i, id, fields[i].ID)
		}
	}
}

func TestForm_Load(t *testing.T) {
	f := New(nil)
	values := validation.Values{
		FullName:        "Jane Doe",
		Email:           "a@x.co",
		Password:        "Abcdefg1!",
		ConfirmPassword: "Abcdefg1!",
	}
	f.Load(values)

	if f.Values() != values {
		t.Errorf("expected values %+v, got %+v", values, f.Values())
	}
	for _, state := range f.Fields() {
		if state.Class != "" || state.ErrorVisible {
			t.Errorf("expected %s to stay unrendered after load, got %+v", state.ID, state)
		}
	}
	if got := f.Strength(); got.Text != "" {
		t.Errorf("expected empty indicator after load, got %+v", got)
	}

	if f.Submit() {
		t.Fatal("expected submit to fail on the short email")
	}
	if state := f.Field(validation.Email); state.Class != ClassInvalid {
		t.Errorf("expected email to be invalid after submit, got %+v", state)
	}
	if state := f.Field(validation.FullName); state.Class != ClassValid {
		t.Errorf("expected full name to be valid after submit, got %+v", state)
	}
	if got := f.Strength(); got.Text != "Strong Password" {
		t.Errorf("expected strong indicator after submit, got %+v", got)
	}
}
