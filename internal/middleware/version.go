package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/mod/semver"
)

// APIVersion is the version of the HTTP API.
const APIVersion = "0.1.0"

// VersionMiddleware negotiates the X-Api-Version request header. Partial
// versions such as "0" or "0.1" are completed, a missing header means the
// current version, and a different major version is rejected with 400.
// The negotiated version is stored in locals as "apiVersion".
func VersionMiddleware() fiber.Handler {
	served := "v" + APIVersion

	return func(c *fiber.Ctx) error {
		c.Set("X-Api-Version", APIVersion)

		requested := strings.TrimSpace(c.Get("X-Api-Version"))
		if requested == "" {
			c.Locals("apiVersion", APIVersion)
			return c.Next()
		}

		canonical := semver.Canonical("v" + strings.TrimPrefix(requested, "v"))
		if canonical == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid X-Api-Version: "+requested)
		}
		if semver.Major(canonical) != semver.Major(served) || semver.Compare(canonical, served) > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Unsupported X-Api-Version: "+requested)
		}

		c.Locals("apiVersion", strings.TrimPrefix(canonical, "v"))
		return c.Next()
	}
}
