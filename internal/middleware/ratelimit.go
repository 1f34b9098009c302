package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit throttles per client IP using an in-process store. The rate
// comes from config in limiter notation, e.g. "120-M" for 120 per minute.
func RateLimit(formatted string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		logrus.WithError(err).Fatalf("invalid rate limit %q", formatted)
	}

	instance := limiter.New(memory.NewStore(), rate)
	wrapped := stdlib.NewMiddleware(instance)

	return func(c *gin.Context) {
		wrapped.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Next()
		})).ServeHTTP(c.Writer, c.Request)

		if c.Writer.Status() == http.StatusTooManyRequests {
			c.Abort()
		}
	}
}
