package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"cinema-ebooking/pkg/apperror"
	"cinema-ebooking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError writes the status for the error's kind. Only
// taxonomy messages reach the client; anything else becomes a 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	msg := apperror.Message(err)

	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		log.Warn(operation+" rejected", zap.Error(err), zap.String("operation", operation))
		var appErr *apperror.Error
		if errors.As(err, &appErr) && len(appErr.Fields) > 0 {
			utils.ResponseBadRequest(w, msg, appErr.Fields)
			return
		}
		utils.ResponseBadRequest(w, msg, nil)

	case apperror.KindNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err), zap.String("operation", operation))
		utils.ResponseNotFound(w, msg)

	case apperror.KindConflict:
		log.Warn(operation+" failed - conflict", zap.Error(err), zap.String("operation", operation))
		var appErr *apperror.Error
		if errors.As(err, &appErr) && len(appErr.Seats) > 0 {
			utils.ResponseConflict(w, msg, map[string][]string{"seats": appErr.Seats})
			return
		}
		utils.ResponseConflict(w, msg, nil)

	case apperror.KindPrecondition:
		log.Warn(operation+" failed - precondition", zap.Error(err), zap.String("operation", operation))
		utils.ResponsePreconditionFailed(w, msg)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, msg)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
