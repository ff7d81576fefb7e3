// README: Shared handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Blast-git/Journey-Sync/internal/http/middleware"
	"github.com/Blast-git/Journey-Sync/internal/modules/booking"
	"github.com/Blast-git/Journey-Sync/internal/modules/ride"
	"github.com/Blast-git/Journey-Sync/internal/modules/sos"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

// requireOwner aborts with 403 unless the authenticated caller is userID.
// With auth disabled there is no caller identity and the check is a no-op;
// the deployment is then responsible for access control.
func requireOwner(c *gin.Context, userID string) bool {
	uid := middleware.CallerUID(c)
	if uid != "" && uid != userID {
		writeError(c, http.StatusForbidden, "forbidden: id does not match authenticated user")
		return false
	}
	return true
}

func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrBadRequest), errors.Is(err, sos.ErrInvalidContact):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrNotFound), errors.Is(err, ride.ErrNotFound), errors.Is(err, sos.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrNoSeats),
		errors.Is(err, booking.ErrAlreadyBooked),
		errors.Is(err, booking.ErrNotPending),
		errors.Is(err, booking.ErrNotActive),
		errors.Is(err, sos.ErrContactLimit):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, sos.ErrNoContacts):
		writeError(c, http.StatusPreconditionFailed, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
