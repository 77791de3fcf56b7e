// File: errors.go
// Role: sentinel errors for the tree package.
//
// Error policy (grounded on lvlath/core/types.go and lvlath/builder/errors.go):
//   - Only sentinel package-level vars are exported.
//   - Callers branch with errors.Is; call sites add context via fmt.Errorf("%w: ...").
//   - Loader failures are fatal-to-the-caller (spec §4.1 "Failure semantics");
//     query methods never error on unknown IDs, they return zero values.

package tree

import "errors"

var (
	// ErrDataUnavailable is returned by Load when the source blob is missing,
	// unparsable, lacks required fields, or names a class-start node absent
	// from the loaded node table. Fatal to the whole process per spec §7.
	ErrDataUnavailable = errors.New("tree: data unavailable")

	// ErrUnknownClass is returned by ValidateTreeConnectivity and ClassStart
	// when the given class name has no configured starting node.
	ErrUnknownClass = errors.New("tree: unknown class")

	// ErrNilGraph is a sentinel for a nil *Graph. No function in this
	// package returns it; Graph methods do not check for a nil receiver.
	ErrNilGraph = errors.New("tree: graph is nil")
)
