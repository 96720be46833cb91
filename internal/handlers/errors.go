// errors.go
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
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/roulette-api/internal/models"
	"github.com/localnerve/roulette-api/internal/services"
	"github.com/localnerve/roulette-api/internal/utils"
)

// ErrorHandler renders every error returned by a route in the JSON error
// envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var fiberErr *fiber.Error
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
		if code == fiber.StatusNotFound {
			errorType = "not_found"
		}
	case errors.As(err, &validationErr):
		code = fiber.StatusUnprocessableEntity
		message = validationErr.Message
		errorType = "validation." + validationErr.Field
	case services.IsNotFound(err):
		code = fiber.StatusNotFound
		message = "[404] Resource Not Found"
		errorType = "not_found"
	case services.IsUniqueViolation(err):
		code = fiber.StatusConflict
		errorType = "conflict"
	}

	if code >= fiber.StatusInternalServerError {
		slog.Error("Request failed", slog.String("url", c.OriginalURL()), slog.Any("error", err))
	}

	return utils.ErrorResponse(c, message, code, errorType)
}

// NotFound is the fallback route.
func NotFound(c *fiber.Ctx) error {
	return utils.NotFoundResponse(c, "[404] Resource Not Found")
}
