package validation

// Values is a full form submission.
type Values struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Get returns the raw value of a field.
func (v Values) Get(kind FieldKind) string {
	switch kind {
	case FullName:
		return v.FullName
	case Email:
		return v.Email
	case Password:
		return v.Password
	case ConfirmPassword:
		return v.ConfirmPassword
	}
	return ""
}

// Context returns the cross-field snapshot for this submission.
func (v Values) Context() Context {
	return Context{FullName: v.FullName, Password: v.Password}
}

// Report holds one result per field of a submission.
type Report struct {
	Valid  bool                 `json:"valid"`
	Fields map[FieldKind]Result `json:"fields"`
}

// ValidateAll validates every field of a submission with the default engine.
func ValidateAll(values Values) Report {
	return defaultEngine.ValidateAll(values)
}

// ValidateAll validates every field, without stopping at the first
// invalid one, so each field gets its own verdict.
func (e *Engine) ValidateAll(values Values) Report {
	ctx := values.Context()
	report := Report{Valid: true, Fields: make(map[FieldKind]Result, len(FieldKinds))}
	for _, kind := range FieldKinds {
		res := e.Validate(kind, values.Get(kind), ctx)
		if !res.Valid {
			report.Valid = false
		}
		report.Fields[kind] = res
	}
	return report
}

// Set stores the raw value of a field. Unknown kinds are ignored.
func (v *Values) Set(kind FieldKind, value string) {
	switch kind {
	case FullName:
		v.FullName = value
	case Email:
		v.Email = value
	case Password:
		v.Password = value
	case ConfirmPassword:
		v.ConfirmPassword = value
	}
}
