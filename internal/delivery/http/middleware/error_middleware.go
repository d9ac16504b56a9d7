package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"go-candidate-backend/config"
	"go-candidate-backend/internal/delivery/http/response"
	"go-candidate-backend/pkg/apperror"
	"go-candidate-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors pushed onto the gin context as the uniform
// envelope. Internal error detail only reaches the client in development;
// production callers get a generic message while the cause is logged.
func ErrorHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code == http.StatusInternalServerError {
				renderInternal(c, cfg, appErr.Unwrap())
				return
			}
			var details interface{}
			if len(appErr.Details) > 0 {
				details = appErr.Details
			}
			response.Error(c, appErr.Code, appErr.Message, "", details)
			return
		}

		renderInternal(c, cfg, err)
	}
}

func renderInternal(c *gin.Context, cfg *config.Config, err error) {
	log := logger.Log
	if log == nil {
		log = slog.Default()
	}
	log.Error("internal server error",
		"error", err,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	message := ""
	if cfg.IsDevelopment() && err != nil {
		message = err.Error()
	}
	response.Error(c, http.StatusInternalServerError, "Internal server error", message, nil)
}
