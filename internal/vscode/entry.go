package vscode

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Entry is one item of a recently-opened list, classified by shape.
// The concrete types are URIString, LegacyPath, Record and Unrecognized.
type Entry interface {
	isEntry()
}

// URIString is a bare string entry holding a file:// URI.
type URIString struct {
	URI string
}

// LegacyPath is a bare filesystem path to a workspace descriptor, as
// written by older builds.
type LegacyPath struct {
	Path string
}

// Record is an object entry. At most one reference is normally set.
type Record struct {
	FolderURI string
	FileURI   string
	// WorkspaceConfig is the nested workspace.configPath.
	WorkspaceConfig string
}

// Unrecognized is any entry matching none of the known shapes.
type Unrecognized struct {
	Raw json.RawMessage
}

func (URIString) isEntry()    {}
func (LegacyPath) isEntry()   {}
func (Record) isEntry()       {}
func (Unrecognized) isEntry() {}

type recordJSON struct {
	FolderURI string `json:"folderUri"`
	FileURI   string `json:"fileUri"`
	Workspace *struct {
		ConfigPath string `json:"configPath"`
	} `json:"workspace"`
}

// Classify decodes a raw JSON entry into its Entry variant.
func Classify(raw json.RawMessage) Entry {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Unrecognized{Raw: raw}
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return Unrecognized{Raw: raw}
		}
		switch {
		case strings.HasPrefix(s, fileScheme):
			return URIString{URI: s}
		case strings.HasSuffix(s, WorkspaceSuffix):
			return LegacyPath{Path: s}
		}
	case '{':
		var r recordJSON
		if err := json.Unmarshal(trimmed, &r); err != nil {
			return Unrecognized{Raw: raw}
		}
		rec := Record{FolderURI: r.FolderURI, FileURI: r.FileURI}
		if r.Workspace != nil {
			rec.WorkspaceConfig = r.Workspace.ConfigPath
		}
		if rec != (Record{}) {
			return rec
		}
	}
	return Unrecognized{Raw: raw}
}

// Ref returns the reference a record stands for in a store of the given
// kind. The state database pairs folderUri with fileUri; storage.json
// pairs folderUri with the workspace descriptor and ignores fileUri.
func (r Record) Ref(kind Kind) string {
	if r.FolderURI != "" {
		return r.FolderURI
	}
	switch kind {
	case KindKeyValueStore:
		return r.FileURI
	case KindJSONFile:
		return r.WorkspaceConfig
	default:
		return ""
	}
}

// Resolve maps an entry read from a store of the given kind to the project
// path it represents. Workspace descriptors resolve to their containing
// directory. It reports false for entries the store kind does not accept and
// for entries that do not point at the local filesystem.
func Resolve(e Entry, kind Kind, fam Family) (string, bool) {
	switch e := e.(type) {
	case URIString:
		if kind == KindJSONFile {
			return resolveURI(e.URI, fam)
		}
	case LegacyPath:
		if kind == KindJSONFile {
			return resolveLegacy(e.Path, fam)
		}
	case Record:
		if ref := e.Ref(kind); strings.HasPrefix(ref, fileScheme) {
			return resolveURI(ref, fam)
		}
	case Unrecognized:
	}
	return "", false
}

func resolveURI(uri string, fam Family) (string, bool) {
	p, ok := NormalizeURI(uri, fam)
	if !ok {
		return "", false
	}
	if strings.HasSuffix(p, WorkspaceSuffix) {
		p = parentDir(p, fam)
	}
	return p, true
}

func resolveLegacy(p string, fam Family) (string, bool) {
	p = NormalizePath(p, fam)
	if p == "" {
		return "", false
	}
	return parentDir(p, fam), true
}
