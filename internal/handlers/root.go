// root.go
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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/roulette-api/internal/config"
	"github.com/localnerve/roulette-api/internal/services"
	"github.com/localnerve/roulette-api/internal/utils"
	"gorm.io/gorm"
)

// RootHandler serves the service root and health routes
type RootHandler struct {
	Config *config.Config
	DB     *gorm.DB
}

// Root handles GET /
// @Summary Welcome message
// @Description Confirms the API is reachable
// @Tags Root
// @Produce json
// @Success 200 {object} utils.MessageResponse
// @Router / [get]
func (h *RootHandler) Root(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, utils.MessageResponse{Message: "Welcome to Roulette API"}, fiber.StatusOK)
}

// Health handles GET /health
// @Summary Liveness check
// @Description Reports that the process is serving requests
// @Tags Root
// @Produce json
// @Success 200 {object} utils.StatusResponse
// @Router /health [get]
func (h *RootHandler) Health(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, utils.StatusResponse{Status: "healthy"}, fiber.StatusOK)
}

// Ready handles GET /health/ready
// @Summary Readiness check
// @Description Pings the database
// @Tags Root
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health/ready [get]
func (h *RootHandler) Ready(c *fiber.Ctx) error {
	result := services.HealthCheck(c.UserContext(), h.Config, h.DB)
	status := fiber.StatusOK
	if !result.Healthy() {
		status = fiber.StatusServiceUnavailable
	}
	return utils.SuccessResponse(c, result, status)
}
