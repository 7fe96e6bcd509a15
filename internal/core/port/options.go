package port

import "github.com/jackc/pgx/v5"

// SortOrder selects the direction of a sort hint.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sort orders result sets on read paths.
type Sort struct {
	Column string
	Order  SortOrder
}

// Options is the per-call execution context threaded through every
// repository lookup a feature operation performs. A non-nil Tx makes the
// multi-step check-then-act sequences observe one consistent snapshot;
// ForUpdate requests a row lock on the lookup preceding a mutation.
type Options struct {
	Tx             pgx.Tx
	ForUpdate      bool
	Sort           *Sort
	Limit          int
	IncludeAccount bool
}
