package metrics

import (
	"context"
	"errors"
)

const unknownLabel = "unknown"

// status labels an operation outcome. Lookups canceled by a sibling failure are not counted as errors.
func status(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}

func orUnknown(label string) string {
	if label == "" {
		return unknownLabel
	}
	return label
}
