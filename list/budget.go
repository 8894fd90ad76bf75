package list

// Budget caps the number of live nodes charged to it. Acquiring a node past
// the limit fails, which lists treat as an allocation failure.
// A nil *Budget is unlimited and tracks nothing.
type Budget struct {
	limit int
	live  int
}

// NewBudget returns a budget allowing up to limit live nodes.
// A limit of zero or less means unlimited.
func NewBudget(limit int) *Budget {
	return &Budget{limit: max(limit, 0)}
}

// Limit returns the configured limit, zero if unlimited.
func (b *Budget) Limit() int {
	if b == nil {
		return 0
	}

	return b.limit
}

// Live returns the number of nodes currently charged to the budget.
func (b *Budget) Live() int {
	if b == nil {
		return 0
	}

	return b.live
}

func (b *Budget) acquire() bool {
	if b == nil {
		return true
	}

	if b.limit > 0 && b.live >= b.limit {
		return false
	}

	b.live++

	return true
}

func (b *Budget) release() {
	if b == nil || b.live == 0 {
		return
	}

	b.live--
}
