// Package validators checks host-supplied input before it reaches the
// climate patcher.
//
// The HTTP surface validates every patch request with [NewClimateValidator].
// Validation can be restricted to named fields, which lets callers check a
// bare climate record or only the name of a request.
package validators

import "context"

// Validator validates obj. When fields are given, only those fields are
// checked; unknown field names yield ErrUnknownField.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
