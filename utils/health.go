package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth pings the given backends once and stores the result. A nil
// client counts as healthy: that backend is not in use.
func CheckHealth(ctx context.Context, redisClient *redis.Client, mongoClient *mongo.Client) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := HealthStatus{Mongo: true, Redis: true, CheckedAt: time.Now()}
	if redisClient != nil {
		status.Redis = redisClient.Ping(ctx).Err() == nil
	}
	if mongoClient != nil {
		status.Mongo = mongoClient.Ping(ctx, nil) == nil
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client) {
	CheckHealth(context.Background(), redisClient, mongoClient)
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			CheckHealth(context.Background(), redisClient, mongoClient)
		}
	}()
}
