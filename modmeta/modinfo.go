// Copyright (c) 2026 bg3tools
// SPDX-License-Identifier: MIT

package modmeta

import "encoding/xml"

// ModInfo identifies one mod. UUID is the identity key; uniqueness within
// an enabled-mods list is a precondition of entry, not enforced on read.
// Folder, MD5 and Version are optional; the empty string means absent.
// A ModInfo is only ever replaced wholesale, never partially updated.
type ModInfo struct {
	UUID    string `json:"uuid"`
	Name    string `json:"name"`
	Folder  string `json:"folder,omitempty"`
	MD5     string `json:"md5,omitempty"`
	Version string `json:"version,omitempty"`
}

// IsInternal reports whether the mod is one of the game's own modules,
// which must never be disabled or reordered.
func (m *ModInfo) IsInternal() bool {
	return m.Name == "Gustav" || m.Name == "GustavDev"
}

// Attribute ids recognized in meta.lsx ModuleInfo nodes and in
// ModuleShortDesc nodes of the settings document.
const (
	attrName      = "Name"
	attrFolder    = "Folder"
	attrMD5       = "MD5"
	attrUUID      = "UUID"
	attrVersion64 = "Version64"
)

// nodeStack tracks the ids of currently-open node elements during a
// streaming traversal. Every node open pushes its id (empty when the
// element carries none), every node close pops, so the stack stays
// balanced on any well-formed document.
type nodeStack []string

func (s *nodeStack) push(id string) { *s = append(*s, id) }

func (s *nodeStack) pop() string {
	if len(*s) == 0 {
		return ""
	}
	id := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return id
}

func (s nodeStack) top() string {
	if len(s) == 0 {
		return ""
	}
	return s[len(s)-1]
}

// findAttr returns the value of the named XML attribute. Values come from
// the decoder already entity-unescaped.
func findAttr(e xml.StartElement, name string) (string, bool) {
	for _, a := range e.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// modAccumulator gathers recognized attribute values until a descriptor can
// be finalized. Name and UUID must both have been observed; the other
// fields are optional.
type modAccumulator struct {
	info    ModInfo
	hasName bool
	hasUUID bool
}

func (acc *modAccumulator) set(id, value string) {
	switch id {
	case attrName:
		acc.info.Name = value
		acc.hasName = true
	case attrFolder:
		acc.info.Folder = value
	case attrMD5:
		acc.info.MD5 = value
	case attrUUID:
		acc.info.UUID = value
		acc.hasUUID = true
	case attrVersion64:
		acc.info.Version = value
	}
}

func (acc *modAccumulator) finalize() (ModInfo, bool) {
	if !acc.hasName || !acc.hasUUID {
		return ModInfo{}, false
	}
	return acc.info, true
}

func (acc *modAccumulator) reset() { *acc = modAccumulator{} }
