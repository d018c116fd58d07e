// Package form renders validation results the way the registration page
// shows them and keeps the state of one form between input events.
package form

import (
	"github.com/matt-dz/formcheck/internal/password"
	"github.com/matt-dz/formcheck/internal/validation"
)

const (
	ClassValid   = "is-valid"
	ClassInvalid = "is-invalid"

	strengthClass = "password-strength"
)

// FieldState is what the page shows for one input. Class is empty until the
// field has been validated.
type FieldState struct {
	ID           string `json:"id"`
	Class        string `json:"class,omitempty"`
	ErrorText    string `json:"error_text,omitempty"`
	ErrorVisible bool   `json:"error_visible"`
}

// StrengthIndicator is the text and class of the password strength element.
type StrengthIndicator struct {
	Text  string `json:"text"`
	Class string `json:"class"`
}

// Render maps a validation result to the state of the field's input and
// error element.
func Render(kind validation.FieldKind, res validation.Result) FieldState {
	if !res.Valid {
		return FieldState{
			ID:           kind.String(),
			Class:        ClassInvalid,
			ErrorText:    res.Message,
			ErrorVisible: true,
		}
	}
	return FieldState{
		ID:    kind.String(),
		Class: ClassValid,
	}
}

// RenderStrength maps a strength score to the indicator.
func RenderStrength(score int) StrengthIndicator {
	level := password.Classify(score)
	return StrengthIndicator{
		Text:  level.Text(),
		Class: strengthClass + " " + level.Class,
	}
}

func emptyStrength() StrengthIndicator {
	return StrengthIndicator{Class: strengthClass}
}

// Form tracks the values and rendered state of one registration form.
// It is not safe for concurrent use.
type Form struct {
	engine   *validation.Engine
	values   validation.Values
	fields   map[validation.FieldKind]FieldState
	strength StrengthIndicator
}

// New creates an empty form. A nil engine uses the default rules.
func New(engine *validation.Engine) *Form {
	if engine == nil {
		engine = validation.New()
	}
	f := &Form{engine: engine}
	f.Reset()
	return f
}

// Input records a new raw value for a field and re-validates that field
// only, as the page does on every input and change event.
func (f *Form) Input(kind validation.FieldKind, raw string) FieldState {
	f.values.Set(kind, raw)
	return f.validate(kind)
}

// Load replaces every value at once without validating or rendering
// anything. Submit renders the result.
func (f *Form) Load(values validation.Values) {
	f.values = values
}

func (f *Form) validate(kind validation.FieldKind) FieldState {
	res := f.engine.Validate(kind, f.values.Get(kind), f.values.Context())
	if res.Strength != nil {
		f.strength = RenderStrength(res.Strength.Score)
	}
	state := Render(kind, res)
	if kind.Valid() {
		f.fields[kind] = state
	}
	return state
}

// Submit validates every field. When all of them pass the form is reset
// and true is returned; otherwise the rendered errors stay in place.
func (f *Form) Submit() bool {
	valid := true
	for _, kind := range validation.FieldKinds {
		if state := f.validate(kind); state.Class == ClassInvalid {
			valid = false
		}
	}
	if valid {
		f.Reset()
	}
	return valid
}

// Reset clears all values, field states and the strength indicator.
func (f *Form) Reset() {
	f.values = validation.Values{}
	f.fields = make(map[validation.FieldKind]FieldState, len(validation.FieldKinds))
	for _, kind := range validation.FieldKinds {
		f.fields[kind] = FieldState{ID: kind.String()}
	}
	f.strength = emptyStrength()
}

func (f *Form) Field(kind validation.FieldKind) FieldState {
	return f.fields[kind]
}

// Fields returns the state of every field in form order.
func (f *Form) Fields() []FieldState {
	out := make([]FieldState, 0, len(validation.FieldKinds))
	for _, kind := range validation.FieldKinds {
		out = append(out, f.fields[kind])
	}
	return out
}

func (f *Form) Strength() StrengthIndicator {
	return f.strength
}

func (f *Form) Values() validation.Values {
	return f.values
}
