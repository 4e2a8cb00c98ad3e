// utils/http.go - request parsing helpers shared by the handlers
package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParseUintParam parses a numeric path parameter, returning an error the
// handler should surface as a 400.
func ParseUintParam(c *fiber.Ctx, key string) (uint, error) {
	raw := c.Params(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// ParseProjectFilter turns the projectId query parameter into an optional
// numeric filter. Both "" and "all" mean no filtering; anything
// non-numeric is ignored the same way.
func ParseProjectFilter(raw string) *uint {
	if raw == "" || raw == "all" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	projectID := uint(id)
	return &projectID
}

// ParseUserFilter turns the userId query parameter into an optional
// numeric filter.
func ParseUserFilter(raw string) *uint {
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	userID := uint(id)
	return &userID
}
