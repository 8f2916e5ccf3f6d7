// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package server

import (
	"time"

	metrixlog "metrix/utils/log"

	"github.com/gin-gonic/gin"
)

const hsts = "max-age=63072000; includeSubDomains; preload"

func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Strict-Transport-Security", hsts)
		c.Next()
	}
}

func requestLogger(log *metrixlog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debugw("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
