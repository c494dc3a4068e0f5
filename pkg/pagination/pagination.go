package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// DefaultLimit is the truncation limit applied to list queries when the
// request does not specify one.
const DefaultLimit = 10

// Limit extracts the "limit" query parameter from the request. A missing or
// non-numeric value falls back to the given default; a negative value is
// clamped to zero, which callers treat as "return nothing".
func Limit(c echo.Context, fallback int) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	if n < 0 {
		return 0
	}
	return n
}
