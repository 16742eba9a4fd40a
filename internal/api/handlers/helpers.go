package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/shopease/shopease/internal/errors"
	"github.com/shopease/shopease/internal/api/middleware"
	"github.com/shopease/shopease/internal/utils/response"
)

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) error {
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(dest)

	if errors.Is(err, io.EOF) {
		middleware.LoggerFromContext(r.Context()).Warn("Empty request body")
		response.Error(w, apperrors.BadRequestError("Request body cannot be empty"))

		return err
	}

	if err != nil {
		middleware.LoggerFromContext(r.Context()).Warn("Failed to decode request body")
		response.Error(w, apperrors.BadRequestError("Malformed request body"))

		return err
	}

	return nil
}

func validateStruct(w http.ResponseWriter, validate *validator.Validate, data any) bool {
	if err := validate.Struct(data); err != nil {

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
		} else {
			response.Error(w, apperrors.InternalError("Validation failed unexpectedly").WithError(err))
		}

		return false
	}

	return true
}
