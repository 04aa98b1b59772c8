package main

import (
	"strings"

	"github.com/okrauss/nit/pkg/object"
)

// shortHash abbreviates a digest to its first 8 characters for display.
func shortHash(h object.Hash) string {
	s := string(h)
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
