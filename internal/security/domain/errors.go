package domain

import (
	"github.com/allisson/authgate/internal/errors"
)

// ErrInvalidThreshold indicates a negative alert threshold.
var ErrInvalidThreshold = errors.Wrap(errors.ErrInvalidInput, "alert threshold must not be negative")

// ErrUnsupportedDriver indicates an unknown security log driver.
var ErrUnsupportedDriver = errors.Wrap(errors.ErrInvalidInput, "unsupported security log driver")
