package booking

import (
	"errors"

	"github.com/lib/pq"
)

// isPQConflict reports whether err is the exclusion constraint firing or
// a lost serializable race. Both mean the requested window is taken.
func isPQConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqExclusionViolation || pqErr.Code == pqSerializationFailure
}

// IsConflict reports whether err means the requested booking window is
// taken: the repository's own conflict sentinel, or a raw PostgreSQL
// conflict that surfaced at commit time outside the repository (the
// transaction manager wraps but preserves the error chain).
func IsConflict(err error) bool {
	return errors.Is(err, ErrRoomConflict) || isPQConflict(err)
}
