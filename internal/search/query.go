// Package search holds the query rules, the title filter and the state
// container behind the search widget.
package search

import (
	"errors"
	"strings"
)

// RequiredMessage is shown next to the search field on an empty submit.
const RequiredMessage = "Search query is required"

var ErrQueryRequired = errors.New("search query is required")

// Validate rejects empty and whitespace-only input.
func Validate(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrQueryRequired
	}
	return nil
}

// Normalize lower-cases the raw input. Spaces are kept so that
// "buy " still only matches titles containing "buy ".
func Normalize(raw string) string {
	return strings.ToLower(raw)
}
