package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// MaxLimit caps the limit query parameter.
const MaxLimit = 1000

// ParsePagination safely parses and validates offset and limit query parameters.
// Offset defaults to 0. Limit defaults to 0, which means no limit, and cannot exceed MaxLimit.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offsetStr := c.DefaultQuery("offset", "0")
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		return 0, 0, fmt.Errorf("invalid offset parameter: must be a non-negative integer")
	}

	limitStr := c.DefaultQuery("limit", "0")
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 0 || limit > MaxLimit {
		return 0, 0, fmt.Errorf("invalid limit parameter: must be between 0 and %d", MaxLimit)
	}

	return offset, limit, nil
}
