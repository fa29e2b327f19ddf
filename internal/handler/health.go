package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports whether the stock store (postgres) and the notification
// queue (redis) are reachable. Never exposes credentials or internals.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		stockStore := "up"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			stockStore = "down"
		}

		notifyQueue := "up"
		if rdb.Ping(ctx).Err() != nil {
			notifyQueue = "down"
		}

		status := http.StatusOK
		overall := "ok"
		if stockStore == "down" || notifyQueue == "down" {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		c.JSON(status, gin.H{
			"service":      "stock-inventory",
			"status":       overall,
			"stock_store":  stockStore,
			"notify_queue": notifyQueue,
		})
	}
}
