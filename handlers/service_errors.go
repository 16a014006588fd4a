package handlers

import (
	"errors"
	"net/http"

	"github.com/olegamobile/lets-play/services"
	"github.com/olegamobile/lets-play/utils"
	"go.uber.org/zap"
)

// HandleServiceError maps domain errors to HTTP responses.
// Clients only ever see the domain message, never the wrapped cause.
func HandleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if err == nil {
		return
	}

	message := clientMessage(err)
	details := services.GetErrorDetails(err)
	if len(details) == 0 {
		details = nil
	}

	var writeErr error
	switch {
	case services.IsNotFoundError(err):
		writeErr = utils.WriteNotFound(w, message)

	case services.IsValidationError(err):
		writeErr = utils.WriteBadRequest(w, message, details)

	case services.IsUnauthorizedError(err):
		writeErr = utils.WriteUnauthorized(w, message)

	case services.IsForbiddenError(err):
		writeErr = utils.WriteForbidden(w, message)

	case services.IsConflictError(err):
		writeErr = utils.WriteConflict(w, message, details)

	case services.IsInternalError(err):
		logger.Error("internal server error", zap.Error(err))
		writeErr = utils.WriteInternalServerError(w, "An internal error occurred")

	default:
		logger.Error("unhandled error type",
			zap.Error(err),
			zap.String("error_type", string(services.GetErrorType(err))))
		writeErr = utils.WriteInternalServerError(w, "An unexpected error occurred")
	}

	if writeErr != nil {
		logger.Error("failed to write error response", zap.Error(writeErr))
	}
}

// HandleDecodeError answers a request whose body could not be decoded.
// Only the BodyError message and JSON field name reach the client.
func HandleDecodeError(w http.ResponseWriter, err error, logger *zap.Logger) {
	logger.Debug("request body rejected", zap.Error(err))

	message := "invalid JSON body"
	var details map[string]interface{}
	var bodyErr *utils.BodyError
	if errors.As(err, &bodyErr) {
		message = bodyErr.Message
		if bodyErr.Field != "" {
			details = map[string]interface{}{"field": bodyErr.Field}
		}
	}

	if writeErr := utils.WriteBadRequest(w, message, details); writeErr != nil {
		logger.Error("failed to write bad request response", zap.Error(writeErr))
	}
}

// HandleValidationError handles validation errors from request parsing
func HandleValidationError(w http.ResponseWriter, err error, logger *zap.Logger) {
	var details map[string]interface{}
	var validationErr *utils.ValidationError
	if errors.As(err, &validationErr) {
		details = validationErr.Details()
	}
	if writeErr := utils.WriteBadRequest(w, "Validation failed", details); writeErr != nil {
		logger.Error("failed to write validation error response", zap.Error(writeErr))
	}
}

func clientMessage(err error) string {
	var domainErr *services.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return ""
}
