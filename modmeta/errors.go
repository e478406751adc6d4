// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package modmeta

import "errors"

var (
	// ErrMalformedSettings is returned for an XML syntax fault in the
	// settings document. No reliable enabled-mods list can be established
	// from a document that does not parse.
	ErrMalformedSettings = errors.New("modmeta: malformed settings document")

	// ErrMalformedMeta is returned for an XML syntax fault in an embedded
	// meta.lsx fragment.
	ErrMalformedMeta = errors.New("modmeta: malformed meta.lsx")
)
