package order

// Status is the lifecycle state of an order. Stored values are kept verbatim,
// so a Status may hold a value outside the known set; such values rank below
// pending.
type Status string

const (
	Pending   Status = "pending"
	Confirmed Status = "confirmed"
	Preparing Status = "preparing"
	Completed Status = "completed"
	Cancelled Status = "cancelled"
)

const unknownRank = -1

var ranks = map[Status]int{
	Pending:   0,
	Confirmed: 1,
	Preparing: 2,
	Completed: 3,
	Cancelled: 99,
}

// StoredStatus reads a status column. A missing value reads as Pending; any
// present value, blank included, is kept verbatim.
func StoredStatus(s *string) Status {
	if s == nil {
		return Pending
	}
	return Status(*s)
}

// Rank returns the position of the status in the progression; unknown
// statuses rank -1.
func (s Status) Rank() int {
	if rank, ok := ranks[s]; ok {
		return rank
	}
	return unknownRank
}

// IsTerminal reports whether no further progression applies.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

func (s Status) String() string {
	return string(s)
}
