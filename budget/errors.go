// File: errors.go
// Role: sentinel errors for the budget package.

package budget

import "errors"

// ErrBudgetViolation is the panic value used by Tracker.Apply when asked to
// apply a mutation CanApply would have rejected (spec §7 "BudgetViolation
// (assertion)... Fatal; indicates a caller bug").
var ErrBudgetViolation = errors.New("budget: violation")
