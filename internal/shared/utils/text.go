package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// FoldKey normalizes a catalog token for comparison: surrounding space is
// trimmed, inner runs of space collapse to one, and case is folded.
// Example: "  Sewa   Tower " -> "sewa tower"
func FoldKey(s string) string {
	return folder.String(strings.Join(strings.Fields(s), " "))
}

// NormalizeFieldName folds a payload key so that the casing and separator
// variants of one name compare equal.
// Example: "PurchaseRequestType", "purchaseRequestType" and
// "purchase_request_type" all become "purchaserequesttype".
func NormalizeFieldName(key string) string {
	key = strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, key)
	return folder.String(key)
}

// TruncateForLog shortens s to maxLen bytes for logging, marking the cut with "...".
func TruncateForLog(s string, maxLen int) string {
	if maxLen <= 0 {
		return "..."
	}
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
