package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(svc SubscriptionAPI, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware(log))
	RegisterHandlers(r, svc, log)
	return r
}
