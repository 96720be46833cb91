package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/localnerve/roulette-api/internal/config"
	"github.com/localnerve/roulette-api/internal/utils"
	"gorm.io/gorm"
)

const healthPingTimeout = 1500 * time.Millisecond

// HealthCheckResult is the deep health report written by cmd/healthcheck and
// the readiness route.
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Server       string            `json:"server,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// Healthy reports whether every check passed.
func (r *HealthCheckResult) Healthy() bool {
	return r.Status == "healthy"
}

func (r *HealthCheckResult) fail(detailKey, summary string, err error) {
	r.Status = "unhealthy"
	r.Details[detailKey] = err.Error()
	msg := fmt.Sprintf("%s: %v", summary, err)
	if r.ErrorMessage == "" {
		r.ErrorMessage = msg
	} else {
		r.ErrorMessage += "; " + msg
	}
	slog.Error("Health check failed", slog.String("check", detailKey), slog.Any("error", err))
}

// HealthCheck pings the database and reports whether the service can work.
func HealthCheck(ctx context.Context, cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: map[string]string{"database_type": cfg.DBType},
	}

	sqlDB, err := db.DB()
	if err != nil {
		result.Database = "error"
		result.fail("database_error", "Database connection error", err)
		return result
	}

	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		result.Database = "unreachable"
		result.fail("database_ping_error", "Database ping failed", err)
		return result
	}

	stats := sqlDB.Stats()
	result.Database = "ok"
	result.Details["database_name"] = cfg.DBDatabase
	result.Details["database_open_connections"] = strconv.Itoa(stats.OpenConnections)
	slog.Debug("Health check passed", slog.String("database_type", cfg.DBType))

	return result
}

// CheckServer adds a TCP reachability check of serverURL to result.
func CheckServer(ctx context.Context, result *HealthCheckResult, serverURL string) {
	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	elapsed, err := utils.PingService(pingCtx, serverURL)
	if err != nil {
		result.Server = "unreachable"
		result.fail("server_error", "Server ping failed", err)
		return
	}
	result.Server = "ok"
	result.Details["server_url"] = serverURL
	result.Details["server_latency"] = elapsed.String()
}
