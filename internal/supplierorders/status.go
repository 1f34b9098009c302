package supplierorders

import "strings"

// Status is the supplier order lifecycle state. Incoming orders end in
// received rather than delivered.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusReceived  Status = "received"
	StatusCancelled Status = "cancelled"
)

// ParseStatus normalizes case and reports whether the value belongs to
// the supplier order enum.
func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, true
	case StatusConfirmed:
		return StatusConfirmed, true
	case StatusShipped:
		return StatusShipped, true
	case StatusReceived:
		return StatusReceived, true
	case StatusCancelled:
		return StatusCancelled, true
	}
	return "", false
}
