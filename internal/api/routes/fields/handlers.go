// Package fields contains handlers for validating single form fields.
package fields

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	apiError "github.com/matt-dz/formcheck/internal/api/error"
	"github.com/matt-dz/formcheck/internal/api/requestid"
	"github.com/matt-dz/formcheck/internal/env"
	"github.com/matt-dz/formcheck/internal/form"
	mJson "github.com/matt-dz/formcheck/internal/json"
	"github.com/matt-dz/formcheck/internal/log"
	"github.com/matt-dz/formcheck/internal/password"
	"github.com/matt-dz/formcheck/internal/validation"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// HandleValidateField godoc
//
//	@Summary		Validate one form field.
//	@Description	Runs the rule for the field against the value and the
//	@Description	context values it depends on. A failing rule is not an
//	@Description	error: the verdict is always returned with status 200.
//	@Tags			Fields
//
//	@Accept			json
//	@Produce		json
//	@Param			field	path		string					true	"Field id"	Enums(fullName, email, password, confirmPassword)
//	@Param			request	body		ValidateFieldRequest	true	"Validate Field Request"
//
//	@Success		200		{object}	ValidateFieldResponse
//	@Failure		400		{object}	apiError.Error	"Bad Request"
//	@Failure		404		{object}	apiError.Error	"Unknown field"
//	@Router			/api/fields/{field}/validate [POST]
func HandleValidateField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	fieldID := chi.URLParam(r, "field")
	kind, err := validation.ParseFieldKind(fieldID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Unknown field", slog.String("field", fieldID))
		_ = apiError.EncodeError(w, apiError.UnknownField, err.Error(), requestID)
		return
	}
	ctx = log.AppendCtx(ctx, slog.String("field", kind.String()))

	var request ValidateFieldRequest
	env.Logger.DebugContext(ctx, "Reading request body")
	defer func() { _ = r.Body.Close() }()
	if err := mJson.Decode(r.Body, &request); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	if err := validate.Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Validating field")
	result := env.Engine.Validate(kind, request.Value, request.Context)
	response := ValidateFieldResponse{
		Field:  kind,
		Result: result,
		State:  form.Render(kind, result),
	}
	if result.Strength != nil {
		indicator := form.RenderStrength(result.Strength.Score)
		response.Indicator = &indicator
	}

	if err := apiError.WriteJSON(w, http.StatusOK, response); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandlePasswordStrength godoc
//
//	@Summary	Score password strength.
//	@Tags		Fields
//
//	@Accept		json
//	@Produce	json
//	@Param		request	body		StrengthRequest	true	"Strength Request"
//
//	@Success	200		{object}	StrengthResponse
//	@Failure	400		{object}	apiError.Error	"Bad Request"
//	@Router		/api/password/strength [POST]
func HandlePasswordStrength(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var request StrengthRequest
	env.Logger.DebugContext(ctx, "Reading request body")
	defer func() { _ = r.Body.Close() }()
	if err := mJson.Decode(r.Body, &request); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	if err := validate.Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	report := password.NewReport(strings.TrimSpace(request.Password))
	response := StrengthResponse{
		Score:       report.Score,
		Label:       report.Level.Label,
		Class:       report.Level.Class,
		Text:        report.Level.Text(),
		EntropyBits: report.EntropyBits,
	}

	if err := apiError.WriteJSON(w, http.StatusOK, response); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}
