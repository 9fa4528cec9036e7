package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/richardliu001/newsletter-service/internal/service"
	"go.uber.org/zap"
)

// SubscriptionAPI is what the handlers need from the service layer.
type SubscriptionAPI interface {
	Subscribe(ctx context.Context, name, email string) error
	Ready(ctx context.Context) error
}

func RegisterHandlers(r *gin.Engine, svc SubscriptionAPI, log *zap.SugaredLogger) {
	r.GET("/health_check", healthCheckHandler(svc))
	r.POST("/subscriptions", subscribeHandler(svc, log))
}

type subscribeForm struct {
	Name  string `form:"name"`
	Email string `form:"email"`
}

func subscribeHandler(svc SubscriptionAPI, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form subscribeForm
		if err := c.ShouldBindWith(&form, binding.Form); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		err := svc.Subscribe(c.Request.Context(), form.Name, form.Email)
		switch {
		case err == nil:
			c.Status(http.StatusOK)
		case service.IsValidation(err):
			log.Infow("rejected subscription", "reason", err.Error(), "request_id", c.GetString("request_id"))
			c.Status(http.StatusBadRequest)
		default:
			log.Errorw("subscription failed", "error_chain", service.ErrorChain(err), "request_id", c.GetString("request_id"))
			c.Status(http.StatusInternalServerError)
		}
	}
}

func healthCheckHandler(svc SubscriptionAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Ready(c.Request.Context()); err != nil {
			c.Status(http.StatusServiceUnavailable)
			return
		}
		c.Status(http.StatusOK)
	}
}
