// Package menu resolves the item references customers type in chat.
// A token may be a menu letter (A, B, C... in listing order), the
// item's printed code, or the full item name.
package menu

import (
	"strings"

	"github.com/zync/orderline/internal/core/domain"
)

// Resolve finds the available item a token refers to. Rules are tried
// in strict priority order and the first hit wins, so a token can
// never be ambiguous:
//
//  1. single letter A-Z (case-insensitive): position into items
//  2. exact external code match (case-insensitive)
//  3. exact name match (case-insensitive, trimmed)
//
// items must be the shop's available items in listing order; the
// letter a customer sees on the menu is the index here.
func Resolve(token string, items []domain.MenuItem) (*domain.MenuItem, bool) {
	t := strings.TrimSpace(token)
	if t == "" {
		return nil, false
	}

	if len(t) == 1 {
		c := t[0]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c >= 'A' && c <= 'Z' {
			idx := int(c - 'A')
			if idx < len(items) {
				return &items[idx], true
			}
			return nil, false
		}
	}

	for i := range items {
		if items[i].ExternalID != "" && strings.EqualFold(items[i].ExternalID, t) {
			return &items[i], true
		}
	}

	for i := range items {
		if strings.EqualFold(strings.TrimSpace(items[i].Name), t) {
			return &items[i], true
		}
	}

	return nil, false
}

// Letter returns the menu letter printed for position idx, or "" past Z.
func Letter(idx int) string {
	if idx < 0 || idx > 25 {
		return ""
	}
	return string(rune('A' + idx))
}
