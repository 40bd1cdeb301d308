package http

import (
	"strings"
	"time"

	"github.com/gad/ecommerce-msvc/internal/core/domain"
	"github.com/gad/ecommerce-msvc/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const customerPayloadKey = "customer_payload"

func authCheck(tokenService port.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Fields(header)
		if len(words) != 2 {
			handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			handleAbort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		token := words[1]
		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Set(customerPayloadKey, payload)

		ctx.Next()
	}
}

func getAuthPayload(ctx *gin.Context) *port.TokenPayload {
	return ctx.MustGet(customerPayloadKey).(*port.TokenPayload)
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		logger.Info("request",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Int("size", ctx.Writer.Size()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
