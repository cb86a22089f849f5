package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"competition-hub/internal/competitionerrors"
	"competition-hub/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, competitionerrors.ErrCompetitionNotFound):
		return http.StatusNotFound, "competition not found"
	case errors.Is(err, competitionerrors.ErrPostNotFound):
		return http.StatusNotFound, "post not found"
	case errors.Is(err, competitionerrors.ErrPostNotInCompetition):
		return http.StatusNotFound, "post is not a submission of this competition"
	case errors.Is(err, competitionerrors.ErrInvalidCompetition):
		return http.StatusBadRequest, "invalid competition details"
	case errors.Is(err, competitionerrors.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, competitionerrors.ErrSubmissionClosed):
		return http.StatusConflict, "submission window is closed"
	case errors.Is(err, competitionerrors.ErrVotingClosed):
		return http.StatusConflict, "voting is not open"
	case errors.Is(err, competitionerrors.ErrAlreadySubmitted):
		return http.StatusConflict, "post already submitted"
	case errors.Is(err, competitionerrors.ErrAlreadyVoted):
		return http.StatusConflict, "already voted in this competition"
	case errors.Is(err, competitionerrors.ErrActionInFlight):
		return http.StatusConflict, "action already in progress"
	case errors.Is(err, competitionerrors.ErrReadOnlySource):
		return http.StatusNotImplemented, "source does not accept writes"
	case errors.Is(err, competitionerrors.ErrMalformedRecord):
		return http.StatusBadGateway, "malformed record from source"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps err, writes the error envelope and logs it
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+message, fields)
		return
	}
	utils.Warn(handlerName+": "+message, fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
