// File: errors.go
// Role: sentinel errors for the metric package.

package metric

import "errors"

// ErrUnknownKind is returned when a Kind value outside the three defined
// constants is passed to Score.
var ErrUnknownKind = errors.New("metric: unknown kind")
