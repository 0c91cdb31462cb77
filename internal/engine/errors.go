package engine

import "fmt"

// NotFoundError reports an operation that referenced a missing entity. The
// store itself degrades to nil results; the engine surfaces the condition as
// a typed error when an operation cannot proceed without the entity.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// PurchaseError reports a rejected reward purchase. It is a typed failure,
// not a fatal condition: the caller decides how to present it.
type PurchaseError struct {
	Reason string
}

func (e PurchaseError) Error() string {
	return e.Reason
}
