// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package modmeta

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/beevik/etree"
)

// Fixed version stamp written to every settings document.
const (
	versionMajor    = "4"
	versionMinor    = "0"
	versionRevision = "10"
	versionBuild    = "400"
)

// ReadModSettings parses the settings document and returns the enabled mods
// in play order. The order map is built from ModOrder/Module entries
// (uuid → first-seen index); descriptors come from Mods/ModuleShortDesc
// entries. Descriptors whose uuid never appeared under ModOrder sort before
// all ordered ones, keeping their relative document order. An XML syntax
// fault yields ErrMalformedSettings.
func ReadModSettings(r io.Reader) ([]ModInfo, error) {
	dec := xml.NewDecoder(r)

	var stack nodeStack
	var acc modAccumulator
	order := make(map[string]int)
	var mods []ModInfo

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedSettings, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "node":
				id, _ := findAttr(t, "id")
				stack.push(id)
			case "attribute":
				switch stack.top() {
				case "Module":
					if uuid, ok := findAttr(t, "value"); ok {
						if _, seen := order[uuid]; !seen {
							order[uuid] = len(order)
						}
					}
				case "ModuleShortDesc":
					id, okID := findAttr(t, "id")
					value, okValue := findAttr(t, "value")
					if okID && okValue {
						acc.set(id, value)
					}
				}
			}
		case xml.EndElement:
			if t.Name.Local != "node" {
				continue
			}
			if stack.pop() == "ModuleShortDesc" {
				if info, ok := acc.finalize(); ok {
					mods = append(mods, info)
				}
				acc.reset()
			}
		}
	}

	// Unknown uuids sort first, in document order, as the game orders them.
	sort.SliceStable(mods, func(i, j int) bool {
		oi, iKnown := order[mods[i].UUID]
		oj, jKnown := order[mods[j].UUID]
		switch {
		case !iKnown && !jKnown:
			return false
		case !iKnown:
			return true
		case !jKnown:
			return false
		default:
			return oi < oj
		}
	})

	return mods, nil
}

// WriteModSettings emits a complete settings document for the given mods in
// list order. The document is fully regenerated on every write: a version
// stamp, the ModuleSettings region, the ModOrder subtree (one Module/UUID
// per mod) and the Mods subtree (one ModuleShortDesc per mod). Output is
// pretty-printed with a 4-space indent and self-closing empty elements.
func WriteModSettings(w io.Writer, mods []ModInfo) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	save := doc.CreateElement("save")

	version := save.CreateElement("version")
	version.CreateAttr("major", versionMajor)
	version.CreateAttr("minor", versionMinor)
	version.CreateAttr("revision", versionRevision)
	version.CreateAttr("build", versionBuild)

	region := save.CreateElement("region")
	region.CreateAttr("id", "ModuleSettings")

	root := region.CreateElement("node")
	root.CreateAttr("id", "root")
	children := root.CreateElement("children")

	modOrder := children.CreateElement("node")
	modOrder.CreateAttr("id", "ModOrder")
	orderChildren := modOrder.CreateElement("children")
	for i := range mods {
		module := orderChildren.CreateElement("node")
		module.CreateAttr("id", "Module")
		writeAttribute(module, attrUUID, "FixedString", mods[i].UUID)
	}

	modsNode := children.CreateElement("node")
	modsNode.CreateAttr("id", "Mods")
	modsChildren := modsNode.CreateElement("children")
	for i := range mods {
		desc := modsChildren.CreateElement("node")
		desc.CreateAttr("id", "ModuleShortDesc")
		writeAttribute(desc, attrName, "LSString", mods[i].Name)
		writeAttribute(desc, attrFolder, "LSString", mods[i].Folder)
		writeAttribute(desc, attrMD5, "LSString", mods[i].MD5)
		writeAttribute(desc, attrUUID, "FixedString", mods[i].UUID)
		version := mods[i].Version
		if version == "" {
			version = "1"
		}
		writeAttribute(desc, attrVersion64, "int64", version)
	}

	doc.Indent(4)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// writeAttribute appends one empty attribute element carrying the id, type
// and value triple used throughout lsx documents.
func writeAttribute(parent *etree.Element, id, typ, value string) {
	attr := parent.CreateElement("attribute")
	attr.CreateAttr("id", id)
	attr.CreateAttr("type", typ)
	attr.CreateAttr("value", value)
}
