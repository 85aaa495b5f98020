package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
)

// respondMissingAuth answers requests that reached a handler without an
// authenticated account in the context.
func respondMissingAuth(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Authentication required",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// respondInvalidBody answers requests whose JSON body failed binding.
func respondInvalidBody(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body",
		Code:  string(domainerror.ErrCodeMissingField),
	})
}

// respondInvalidID answers requests whose path parameter is not a UUID.
func respondInvalidID(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid identifier",
		Code:  string(domainerror.ErrCodeMissingField),
	})
}

// intQuery reads an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func intQuery(ctx *gin.Context, name string, def int) int {
	raw := ctx.Query(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}

// dateQuery reads a YYYY-MM-DD query parameter. Malformed values are treated
// as absent.
func dateQuery(ctx *gin.Context, name string) (time.Time, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return time.Time{}, false
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
