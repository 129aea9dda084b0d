package vscode

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/blackwell-systems/codelaunch/internal/store"
)

// RecentlyOpenedKey is the ItemTable key holding the recently-opened list.
const RecentlyOpenedKey = "history.recentlyOpenedPathsList"

// storageJSONKeys are the openedPathsList sub-keys read from storage.json,
// newest schema first. All of them are unioned.
var storageJSONKeys = []string{"entries", "workspaces3", "files2", "workspaces2"}

// Extractor reads a located store into a ProjectSet.
type Extractor struct {
	Family Family
	Fs     afero.Fs
}

// NewExtractor returns an Extractor reading from the OS filesystem.
func NewExtractor(fam Family) *Extractor {
	return &Extractor{Family: fam, Fs: afero.NewOsFs()}
}

// Extract returns the projects recorded at loc. Failures are logged and
// yield an empty set.
func (x *Extractor) Extract(loc Location) ProjectSet {
	set, err := x.Load(loc)
	if err != nil {
		slog.Warn("could not load recent projects", "path", loc.Path, "kind", loc.Kind.String(), "err", err)
		return NewProjectSet()
	}
	return set
}

// Load is Extract with the failure returned instead of logged.
func (x *Extractor) Load(loc Location) (ProjectSet, error) {
	switch loc.Kind {
	case KindKeyValueStore:
		return x.loadStateDB(loc.Path)
	case KindJSONFile:
		return x.loadStorageJSON(loc.Path)
	default:
		return NewProjectSet(), ErrLocationNotFound
	}
}

func (x *Extractor) loadStateDB(path string) (ProjectSet, error) {
	set := NewProjectSet()

	value, ok, err := store.ReadItem(path, RecentlyOpenedKey)
	if err != nil {
		return set, fmt.Errorf("%w: %s: %w", ErrStoreRead, path, err)
	}
	if !ok {
		slog.Debug("recently-opened key not present", "path", path, "key", RecentlyOpenedKey)
		return set, nil
	}

	var doc struct {
		Entries []json.RawMessage `json:"entries"`
	}
	if err := json.Unmarshal(value, &doc); err != nil {
		return set, fmt.Errorf("%w: %s: %w", ErrParse, RecentlyOpenedKey, err)
	}
	x.addEntries(set, KindKeyValueStore, doc.Entries)
	return set, nil
}

func (x *Extractor) loadStorageJSON(path string) (ProjectSet, error) {
	set := NewProjectSet()

	fs := x.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return set, fmt.Errorf("%w: %s: %w", ErrStoreRead, path, err)
	}

	var doc struct {
		OpenedPathsList map[string]json.RawMessage `json:"openedPathsList"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return set, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	for _, key := range storageJSONKeys {
		raw, ok := doc.OpenedPathsList[key]
		if !ok {
			continue
		}
		var entries []json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			slog.Debug("skipping non-array openedPathsList key", "key", key, "err", err)
			continue
		}
		x.addEntries(set, KindJSONFile, entries)
	}
	return set, nil
}

func (x *Extractor) addEntries(set ProjectSet, kind Kind, entries []json.RawMessage) {
	for _, raw := range entries {
		if p, ok := Resolve(Classify(raw), kind, x.Family); ok {
			set.Add(p)
		}
	}
}
