// handlers_test.go
//
// Backend data service for the roulette name picker
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of roulette-api.
// roulette-api is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// roulette-api is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with roulette-api.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/localnerve/roulette-api/internal/database"
	"github.com/localnerve/roulette-api/internal/handlers"
	"github.com/localnerve/roulette-api/internal/models"
	"github.com/localnerve/roulette-api/internal/services"
	"github.com/localnerve/roulette-api/internal/testutil"
	"github.com/localnerve/roulette-api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	cfg := testutil.SQLiteConfig()
	db := testutil.OpenTestDB(t, cfg)

	h := &handlers.RootHandler{Config: cfg, DB: db}
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Get("/", h.Root)
	app.Get("/health", h.Health)
	app.Get("/health/ready", h.Ready)
	app.Get("/fail/:kind", func(c *fiber.Ctx) error {
		switch c.Params("kind") {
		case "validation":
			_, err := models.NewName(models.NameParams{Name: " "})
			return err
		case "missing":
			_, err := services.GetUser(c.UserContext(), db, uuid.New())
			return err
		case "teapot":
			return fiber.NewError(fiber.StatusTeapot, "short and stout")
		case "duplicate":
			return fmt.Errorf("create: %w", gorm.ErrDuplicatedKey)
		}
		return errors.New("boom")
	})
	app.Use(handlers.NotFound)
	return app, db
}

func TestRoot(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var body map[string]any
	testutil.ParseJSON(t, resp, &body)
	assert.Equal(t, map[string]any{"message": "Welcome to Roulette API"}, body)
}

func TestHealth(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var body map[string]any
	testutil.ParseJSON(t, resp, &body)
	assert.Equal(t, map[string]any{"status": "healthy"}, body)
}

func TestReady(t *testing.T) {
	app, db := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.NoError(t, err)
	testutil.AssertStatus(t, resp, fiber.StatusOK)

	var result services.HealthCheckResult
	testutil.ParseJSON(t, resp, &result)
	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "ok", result.Database)

	require.NoError(t, database.Close(db))
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.NoError(t, err)
	testutil.AssertStatus(t, resp, fiber.StatusServiceUnavailable)
	testutil.ParseJSON(t, resp, &result)
	assert.Equal(t, "unhealthy", result.Status)
}

func TestErrorHandler(t *testing.T) {
	app, _ := setupApp(t)

	tests := []struct {
		path      string
		status    int
		errorType string
		message   string
	}{
		{"/fail/validation", fiber.StatusUnprocessableEntity, "validation.name", "Name cannot be empty"},
		{"/fail/missing", fiber.StatusNotFound, "not_found", "[404] Resource Not Found"},
		{"/fail/teapot", fiber.StatusTeapot, "unknown", "short and stout"},
		{"/fail/duplicate", fiber.StatusConflict, "conflict", "create: duplicated key not allowed"},
		{"/fail/other", fiber.StatusInternalServerError, "unknown", "boom"},
		{"/no/such/route", fiber.StatusNotFound, "not_found", "[404] Resource Not Found"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			testutil.AssertStatus(t, resp, tt.status)

			var body utils.ErrorResponseStruct
			testutil.ParseJSON(t, resp, &body)
			assert.Equal(t, tt.status, body.Status)
			assert.False(t, body.Ok)
			assert.Equal(t, tt.errorType, body.Type)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, tt.path, body.URL)
			assert.NotEmpty(t, body.Timestamp)
		})
	}
}
