// Package validators holds the uniqueness rules and input checks shared by
// the coffee and review stores.
package validators

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// FoldKey returns the caseless form of s. Two strings that differ only in
// letter case produce the same key.
func FoldKey(s string) string {
	// A Caser is stateful, so each call gets its own.
	return cases.Fold().String(s)
}

// CoffeeKey is the uniqueness key of a coffee: its name, compared without case.
func CoffeeKey(name string) string {
	return FoldKey(name)
}

// ReviewKey is the uniqueness key of a review: the caseless coffee name plus
// the exact rating and comment. The coffee name is length-prefixed so no
// comment can forge a collision.
func ReviewKey(coffeeName string, rating int, comment string) string {
	folded := FoldKey(coffeeName)

	var b strings.Builder
	b.Grow(len(folded) + len(comment) + 16)
	b.WriteString(strconv.Itoa(len(folded)))
	b.WriteByte(':')
	b.WriteString(folded)
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(rating))
	b.WriteByte('|')
	b.WriteString(comment)
	return b.String()
}
