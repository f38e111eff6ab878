package controllers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/enrollment/internal/pkg/apperrors"
)

// bindRequest decodes a JSON or form body into obj according to Content-Type.
// An empty body leaves every field absent.
func bindRequest(ctx *gin.Context, obj any) error {
	if err := ctx.ShouldBind(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperrors.NewValidationError(err.Error())
	}
	return nil
}

// pathID parses an unsigned integer path parameter
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 63)
	if err != nil {
		return 0, false
	}
	return int64(id), true
}
