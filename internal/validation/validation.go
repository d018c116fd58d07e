// Package validation is the validation engine for the registration form.
//
// Every rule is a pure function of the field value and the read-only
// Context snapshot passed in by the caller, so fields can be validated in
// any order and from any goroutine.
package validation

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/matt-dz/formcheck/internal/email"
	"github.com/matt-dz/formcheck/internal/password"
)

const (
	minimumNameLength = 5
)

var (
	ErrNameTooShort     = errors.New("name must be at least 5 characters long")
	ErrNameSingleWord   = errors.New("please enter both first and last name")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Context holds the values of the other fields a rule depends on.
type Context struct {
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

func (c Context) trimmed() Context {
	return Context{
		FullName: strings.TrimSpace(c.FullName),
		Password: strings.TrimSpace(c.Password),
	}
}

// Result is the verdict for one field. Message is empty when the field is
// valid. Strength is set for the password field only, valid or not.
type Result struct {
	Valid    bool             `json:"valid"`
	Message  string           `json:"message,omitempty"`
	Err      error            `json:"-"`
	Strength *password.Report `json:"strength,omitempty"`
}

func resultFrom(err error) Result {
	if err == nil {
		return Result{Valid: true}
	}
	return Result{Valid: false, Message: err.Error(), Err: err}
}

type rule func(e *Engine, value string, ctx Context) Result

var rules = [fieldKindCount]rule{
	FullName:        (*Engine).fullName,
	Email:           (*Engine).email,
	Password:        (*Engine).password,
	ConfirmPassword: (*Engine).confirmPassword,
}

// Engine validates form fields. The zero value is not usable; use New.
type Engine struct {
	emailOrder email.Order
}

type Option func(*Engine)

// WithEmailOrder selects which email failure is reported when more than one
// domain check fails.
func WithEmailOrder(order email.Order) Option {
	return func(e *Engine) {
		if order.Validate() == nil {
			e.emailOrder = order
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{emailOrder: email.OrderLast}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = New()

// Validate validates a field with the default engine.
func Validate(kind FieldKind, value string, ctx Context) Result {
	return defaultEngine.Validate(kind, value, ctx)
}

// Validate trims value and the context values and applies the rule for kind.
// An unknown kind yields an invalid result wrapping ErrUnknownField.
func (e *Engine) Validate(kind FieldKind, value string, ctx Context) Result {
	if !kind.Valid() {
		return resultFrom(ErrUnknownField)
	}
	return rules[kind](e, strings.TrimSpace(value), ctx.trimmed())
}

func (e *Engine) fullName(value string, _ Context) Result {
	if utf8.RuneCountInString(value) < minimumNameLength {
		return resultFrom(ErrNameTooShort)
	}
	if !strings.Contains(value, " ") {
		return resultFrom(ErrNameSingleWord)
	}
	return resultFrom(nil)
}

func (e *Engine) email(value string, _ Context) Result {
	return resultFrom(email.ValidateWithOrder(value, e.emailOrder))
}

func (e *Engine) password(value string, ctx Context) Result {
	res := resultFrom(password.Validate(value, ctx.FullName))
	report := password.NewReport(value)
	res.Strength = &report
	return res
}

func (e *Engine) confirmPassword(value string, ctx Context) Result {
	if value != ctx.Password {
		return resultFrom(ErrPasswordMismatch)
	}
	return resultFrom(nil)
}
