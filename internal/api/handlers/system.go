package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"product-catalog/internal/api/interfaces"
	"product-catalog/internal/api/models"

	"github.com/gin-gonic/gin"
)

const version = "1.0.0"

var startTime = time.Now()

// HealthCheck reports service and database health
func HealthCheck(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := "healthy"
		code := http.StatusOK

		start := time.Now()
		dbCheck := models.HealthCheck{Status: "healthy"}
		if err := services.Ping(ctx); err != nil {
			services.GetLogger().Error("Database health check failed: %v", err)
			dbCheck = models.HealthCheck{Status: "unhealthy", Message: "database unreachable"}
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		dbCheck.Latency = time.Since(start).String()

		c.JSON(code, models.HealthCheckResponse{
			Status:    status,
			Timestamp: time.Now().Unix(),
			Version:   version,
			Uptime:    int64(time.Since(startTime).Seconds()),
			Checks: map[string]models.HealthCheck{
				"database": dbCheck,
				"feed": {
					Status:  "healthy",
					Message: subscriberCount(services),
				},
			},
		})
	}
}

func subscriberCount(services interfaces.Services) string {
	n := services.Hub().ClientCount()
	if n == 1 {
		return "1 subscriber"
	}
	return strconv.Itoa(n) + " subscribers"
}
