// Package email implements the registration rule for email addresses.
//
// The address is checked in two phases. The first phase covers the overall
// shape and the part before the @ and stops at the first failure. The second
// phase covers the domain and the character set of the whole address; every
// check in it runs, and the caller picks which failure to report.
package email

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minimumLocalLength = 2
)

var (
	twoAlnumRe     = regexp.MustCompile(`^[a-zA-Z0-9]{2}$`)
	alnumStartRe   = regexp.MustCompile(`^[a-zA-Z0-9]`)
	localInvalidRe = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
	letterRe       = regexp.MustCompile(`[a-zA-Z]`)
	domainNameRe   = regexp.MustCompile(`^[a-z0-9._-]+$`)
	lowercaseRe    = regexp.MustCompile(`[a-z]`)
	extensionRe    = regexp.MustCompile(`^[a-z._-]{2,}$`)
	uppercaseRe    = regexp.MustCompile(`[A-Z]`)
	invalidRe      = regexp.MustCompile(`[^a-zA-Z0-9@._-]`)
)

var (
	ErrMultipleAt         = errors.New("email cannot contain more than one @ symbol")
	ErrMissingAtOrDot     = errors.New("email must contain @ and . symbols")
	ErrLocalTooShort      = errors.New("email must have at least 2 characters before @")
	ErrShortLocalNotAlnum = errors.New("if using only 2 characters before @, they must be alphanumeric only")
	ErrLocalStart         = errors.New("email must start with a letter or number")
	ErrLocalCharacters    = errors.New("email can only contain letters, numbers, and the special characters . - _")
	ErrLocalNoLetter      = errors.New("email must contain at least one letter before @")
	ErrDomainNoDot        = errors.New("email must have a domain with at least one alphabetical character")
	ErrDomainCharacters   = errors.New("domain name must contain only lowercase letters, numbers, and the special characters . - _")
	ErrDomainNoLowercase  = errors.New("domain name must contain at least one lowercase letter")
	ErrExtension          = errors.New("domain extension must have at least 2 lowercase letters and can include . - _")
	ErrUppercase          = errors.New("email cannot contain uppercase letters except as the first character")
	ErrCharacters         = errors.New("email can only contain letters, numbers, and the special characters . - _")
)

// Order selects which failure is reported when several domain or character
// set checks fail for the same address.
type Order string

const (
	OrderLast  Order = "last"
	OrderFirst Order = "first"
)

func (o Order) Validate() error {
	switch o {
	case OrderLast, OrderFirst:
		return nil
	}
	return fmt.Errorf("unknown email message order: %q", o)
}

// Validate checks an address and reports the last failing domain check,
// which is what the registration form has always shown.
func Validate(address string) error {
	return ValidateWithOrder(address, OrderLast)
}

// ValidateWithOrder checks an address. An unknown order behaves as OrderLast.
func ValidateWithOrder(address string, order Order) error {
	violations := Violations(address)
	if len(violations) == 0 {
		return nil
	}
	if order == OrderFirst {
		return violations[0]
	}
	return violations[len(violations)-1]
}

// Violations returns every failure for the address in evaluation order. A
// failure in the first phase is returned on its own.
func Violations(address string) []error {
	local, domain, err := checkShape(address)
	if err != nil {
		return []error{err}
	}
	if err := checkLocal(local); err != nil {
		return []error{err}
	}

	// Nothing after the @ leaves the domain unchecked.
	if domain == "" {
		return nil
	}
	return domainViolations(address, domain)
}

func checkShape(address string) (local, domain string, err error) {
	if strings.Count(address, "@") > 1 {
		return "", "", ErrMultipleAt
	}
	if !strings.Contains(address, "@") || !strings.Contains(address, ".") {
		return "", "", ErrMissingAtOrDot
	}
	local, domain, _ = strings.Cut(address, "@")
	return local, domain, nil
}

func checkLocal(local string) error {
	length := utf8.RuneCountInString(local)
	switch {
	case length < minimumLocalLength:
		return ErrLocalTooShort
	case length == minimumLocalLength && !twoAlnumRe.MatchString(local):
		return ErrShortLocalNotAlnum
	case !alnumStartRe.MatchString(local):
		return ErrLocalStart
	case localInvalidRe.MatchString(local):
		return ErrLocalCharacters
	case !letterRe.MatchString(local):
		return ErrLocalNoLetter
	}
	return nil
}

func domainViolations(address, domain string) []error {
	var violations []error

	parts := strings.Split(domain, ".")
	if len(parts) < 2 {
		violations = append(violations, ErrDomainNoDot)
	} else {
		name, extension := parts[0], parts[len(parts)-1]
		if !domainNameRe.MatchString(name) {
			violations = append(violations, ErrDomainCharacters)
		} else if !lowercaseRe.MatchString(name) {
			violations = append(violations, ErrDomainNoLowercase)
		}
		if !extensionRe.MatchString(extension) {
			violations = append(violations, ErrExtension)
		}
	}

	// The first character may be uppercase.
	_, size := utf8.DecodeRuneInString(address)
	if uppercaseRe.MatchString(address[size:]) {
		violations = append(violations, ErrUppercase)
	}

	if invalidRe.MatchString(address) {
		violations = append(violations, ErrCharacters)
	}

	return violations
}
