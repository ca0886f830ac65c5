package citation

import (
	"fmt"
	"time"
)

// numberAttempts bounds transparent retries on a citation-number collision
// before ErrDuplicateCitationNumber is surfaced to the caller.
const numberAttempts = 5

// suffixRange is the space of the random citation-number suffix.
const suffixRange = 100000

// NewNumber builds a human-facing citation number: the issuance date as YYMMDD
// followed by a zero-padded 5-digit suffix. Uniqueness is enforced by the
// store; collisions are retried with a fresh suffix.
func NewNumber(issuedAt time.Time, suffix int) string {
	return fmt.Sprintf("%s%05d", issuedAt.Format("060102"), suffix%suffixRange)
}
