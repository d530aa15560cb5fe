package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger middleware logs HTTP requests
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		if errs := c.Errors.String(); errs != "" {
			log.Printf("[%s] %s %s %d %v | %s",
				c.Request.Method, path, c.ClientIP(),
				c.Writer.Status(), time.Since(start), errs)
			return
		}
		log.Printf("[%s] %s %s %d %v",
			c.Request.Method, path, c.ClientIP(),
			c.Writer.Status(), time.Since(start))
	}
}
