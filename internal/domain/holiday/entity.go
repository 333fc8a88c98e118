package holiday

import (
	"time"
)

// Holiday is one declared non-working day. At most one holiday applies per
// date; when duplicate rows exist upstream, the first one wins during
// reconciliation.
type Holiday struct {
	ID          string
	Date        time.Time
	Description string
	CreatedAt   time.Time
}
