package validation

import (
	"errors"
	"fmt"
)

// FieldKind identifies one of the registration form fields.
type FieldKind int

const (
	FullName FieldKind = iota
	Email
	Password
	ConfirmPassword

	fieldKindCount
)

var ErrUnknownField = errors.New("unknown field")

// FieldKinds lists every field in form order.
var FieldKinds = []FieldKind{FullName, Email, Password, ConfirmPassword}

var fieldIDs = [fieldKindCount]string{
	FullName:        "fullName",
	Email:           "email",
	Password:        "password",
	ConfirmPassword: "confirmPassword",
}

// String returns the field id used by the form, e.g. "confirmPassword".
func (k FieldKind) String() string {
	if k < 0 || k >= fieldKindCount {
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
	return fieldIDs[k]
}

// Valid reports whether k is one of the known fields.
func (k FieldKind) Valid() bool {
	return k >= 0 && k < fieldKindCount
}

// ParseFieldKind parses a field id as returned by FieldKind.String.
func ParseFieldKind(id string) (FieldKind, error) {
	for i, fieldID := range fieldIDs {
		if fieldID == id {
			return FieldKind(i), nil
		}
	}
	return 0, fmt.Errorf("field %q: %w", id, ErrUnknownField)
}

func (k FieldKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("field %d: %w", int(k), ErrUnknownField)
	}
	return []byte(k.String()), nil
}

func (k *FieldKind) UnmarshalText(text []byte) error {
	kind, err := ParseFieldKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
