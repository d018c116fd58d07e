// Package register contains the handler for submitting the whole
// registration form.
package register

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	apiError "github.com/matt-dz/formcheck/internal/api/error"
	"github.com/matt-dz/formcheck/internal/api/requestid"
	"github.com/matt-dz/formcheck/internal/env"
	"github.com/matt-dz/formcheck/internal/form"
	mJson "github.com/matt-dz/formcheck/internal/json"
	"github.com/matt-dz/formcheck/internal/validation"
)

const successMessage = "registration successful"

var validate = validator.New(validator.WithRequiredStructEnabled())

// HandleRegister godoc
//
//	@Summary		Submit the registration form.
//	@Description	Validates every field. Nothing is stored: a valid
//	@Description	submission only returns a confirmation.
//	@Tags			Register
//
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Register Request"
//
//	@Success		200		{object}	RegisterResponse
//	@Failure		400		{object}	apiError.Error				"Bad Request"
//	@Failure		422		{object}	ValidationFailedResponse	"Unprocessible Entity"
//	@Router			/api/register [POST]
func HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)

	var request RegisterRequest
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

	f := form.New(env.Engine)
	f.Load(request.Values())

	env.Logger.DebugContext(ctx, "Submitting form")
	if !f.Submit() {
		invalid := make([]string, 0, len(validation.FieldKinds))
		for _, state := range f.Fields() {
			if state.Class == form.ClassInvalid {
				invalid = append(invalid, state.ID)
			}
		}
		env.Logger.InfoContext(ctx, "Registration rejected", slog.Any("invalid_fields", invalid))

		response := ValidationFailedResponse{
			Error:     *apiError.New(apiError.ValidationFailed, "form contains invalid fields", requestID),
			Fields:    f.Fields(),
			Indicator: f.Strength(),
		}
		if err := apiError.WriteJSON(w, response.Status, response); err != nil {
			env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
		}
		return
	}

	env.Logger.InfoContext(ctx, "Registration accepted")
	if err := apiError.WriteJSON(w, http.StatusOK, RegisterResponse{Message: successMessage}); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}
