// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package modmeta

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ReadModInfo parses one meta.lsx fragment. Attribute elements are captured
// while the innermost open node is ModuleInfo. The fragment yields a
// descriptor only if both Name and UUID were observed by end of document;
// otherwise ReadModInfo returns (nil, nil), which is not an error.
func ReadModInfo(content []byte) (*ModInfo, error) {
	dec := xml.NewDecoder(bytes.NewReader(content))

	var stack nodeStack
	var acc modAccumulator

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMeta, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "node":
				id, _ := findAttr(t, "id")
				stack.push(id)
			case "attribute":
				if stack.top() != "ModuleInfo" {
					continue
				}
				id, okID := findAttr(t, "id")
				value, okValue := findAttr(t, "value")
				if okID && okValue {
					acc.set(id, value)
				}
			}
		case xml.EndElement:
			if t.Name.Local == "node" {
				stack.pop()
			}
		}
	}

	info, ok := acc.finalize()
	if !ok {
		return nil, nil
	}
	return &info, nil
}
