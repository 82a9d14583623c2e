package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
	"github.com/finance-tracker/paycycle/internal/integration/entrypoint/dto"
)

// SerializeWrites holds the user's state lock for the duration of every mutating request,
// so concurrent writes cannot overwrite each other's state documents.
// It must run after RequireUserScope.
func SerializeWrites(locker adapter.UserLocker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isReadOnly(c.Request.Method) {
			c.Next()
			return
		}

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.Next()
			return
		}

		unlock, err := locker.Lock(c.Request.Context(), userID)
		if err != nil {
			if !errors.Is(err, domainerror.ErrStateBusy) {
				slog.ErrorContext(c.Request.Context(), "failed to acquire state lock", "error", err)
			}
			c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Error: domainerror.ErrStateBusy.Error(),
				Code:  string(domainerror.ErrCodeStateBusy),
			})
			c.Abort()
			return
		}
		defer unlock()

		c.Next()
	}
}
