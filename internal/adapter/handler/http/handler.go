package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	if _, ok := statusOf(err); !ok {
		h.logger.Error("error processing request",
			zap.String("path", ctx.FullPath()), zap.Error(err))
	}
	handleAbort(ctx, err)
}

// parseUUID parses a path or query value, answering 400 when it is not a uuid.
func (h *Handler) parseUUID(ctx *gin.Context, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		handleValidationError(ctx, err)
		return uuid.Nil, false
	}
	return id, true
}
