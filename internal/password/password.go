// Package password contains the password rule and the strength scorer
// behind the password strength indicator.
package password

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

const (
	minimumLength = 8
	minimumScore  = 2
	maximumScore  = 4
	strongScore   = maximumScore
	literal       = "password"
)

var (
	uppercaseRe = regexp.MustCompile(`[A-Z]`)
	digitRe     = regexp.MustCompile(`[0-9]`)
	symbolRe    = regexp.MustCompile(`[^A-Za-z0-9]`)
)

var (
	ErrTooShort     = errors.New("password must be at least 8 characters long")
	ErrLiteral      = errors.New(`password cannot be "password"`)
	ErrContainsName = errors.New("password cannot contain your name")
	ErrTooWeak      = errors.New("password is too weak")
)

// Strength scores a password from 0 to 4, one point per satisfied
// criterion: at least 8 characters, an uppercase letter, a digit, and a
// character that is neither a letter nor a digit.
func Strength(password string) int {
	score := 0
	if utf8.RuneCountInString(password) >= minimumLength {
		score++
	}
	if uppercaseRe.MatchString(password) {
		score++
	}
	if digitRe.MatchString(password) {
		score++
	}
	if symbolRe.MatchString(password) {
		score++
	}
	return score
}

// Entropy returns the estimated entropy bits of the password. It is
// reported alongside the score and never affects validity.
func Entropy(password string) float64 {
	return passwordvalidator.GetEntropy(password)
}

// Validate checks a password against the registration policy. fullName is
// the current value of the full name field; an empty name skips the
// contains-name check. The name is matched as a literal lowercase substring,
// spaces included.
func Validate(password, fullName string) error {
	if utf8.RuneCountInString(password) < minimumLength {
		return ErrTooShort
	}

	lowered := strings.ToLower(password)
	if lowered == literal {
		return ErrLiteral
	}

	if name := strings.ToLower(fullName); name != "" && strings.Contains(lowered, name) {
		return ErrContainsName
	}

	if Strength(password) < minimumScore {
		return ErrTooWeak
	}

	return nil
}
