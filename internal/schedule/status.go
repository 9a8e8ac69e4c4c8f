// event-app10/internal/schedule/status.go

package schedule

// Canonical attendance status tokens. Nothing else is ever stored.
const (
	StatusAttend  = "attend"
	StatusAbsent  = "absent"
	StatusPending = "pending"
)

// NormalizeStatus maps free-form form input (Japanese labels or already
// canonical tokens) to one of the three canonical statuses. Unknown, empty
// and explicitly undecided values all become pending.
func NormalizeStatus(raw string) string {
	switch raw {
	case "参加", "attend", "attending":
		return StatusAttend
	case "不参加", "欠席", "absent":
		return StatusAbsent
	default:
		return StatusPending
	}
}

// IsExplicit reports whether raw normalizes to a definite answer. The strict
// status-update endpoint rejects anything that does not.
func IsExplicit(raw string) bool {
	return NormalizeStatus(raw) != StatusPending
}
