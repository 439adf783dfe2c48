package valueobjects

import (
	"strconv"
	"strings"
)

// IsFieldEditableOnRevision reports whether a site identifier may be changed
// while its purchase request is returned for revision. Only identifiers that
// were never resolved are open: nil, empty, "0", or anything that is not a
// positive integer. A resolved identifier stays locked.
func IsFieldEditableOnRevision(currentValue *string) bool {
	if currentValue == nil {
		return true
	}
	id, err := strconv.ParseInt(strings.TrimSpace(*currentValue), 10, 64)
	return err != nil || id <= 0
}
