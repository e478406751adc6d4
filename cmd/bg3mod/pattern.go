// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// newNameMatcher compiles a case-insensitive wildcard pattern matched
// against mod names. The pattern selects any name containing it, so a
// plain pattern without wildcards is a substring search: "Gustav" selects
// both "Gustav" and "GustavDev".
func newNameMatcher(pattern string) (func(string) bool, error) {
	lowered := strings.ToLower(pattern)
	if !doublestar.ValidatePattern(lowered) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}
	contains := "*" + lowered + "*"

	return func(name string) bool {
		ok, err := doublestar.Match(contains, strings.ToLower(name))
		return err == nil && ok
	}, nil
}
