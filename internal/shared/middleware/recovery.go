package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookreview-backend/internal/shared/response"
)

// Recovery converts a handler panic into the same generic 500 envelope
// every other internal failure produces, after logging the panic value.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Str("path", c.Request.URL.Path).
					Err(fmt.Errorf("%v", rec)).
					Msg("panic recovered")

				response.InternalServerError(c, "server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
