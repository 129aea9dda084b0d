package vscode

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
)

// Kind identifies the format of a recently-opened store.
type Kind int

const (
	// KindKeyValueStore is the SQLite state database used by current builds.
	KindKeyValueStore Kind = iota + 1
	// KindJSONFile is the storage.json file used by older builds.
	KindJSONFile
)

func (k Kind) String() string {
	switch k {
	case KindKeyValueStore:
		return "state.vscdb"
	case KindJSONFile:
		return "storage.json"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by its file name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Fixed locations relative to a user-data directory.
var (
	StateDBSubpath  = filepath.Join("globalStorage", "state.vscdb")
	StorageJSONName = "storage.json"
)

// Location is a store path on disk together with its format and the editor
// build that owns it.
type Location struct {
	Path   string `json:"path"`
	Kind   Kind   `json:"kind"`
	Flavor Flavor `json:"flavor"`
}

// Locator enumerates the places the editor may keep its recently-opened
// store and picks the first one that exists.
type Locator struct {
	Family    Family
	Home      string
	Getenv    func(string) string
	Fs        afero.Fs
	Flavors   []Flavor
	ExtraDirs []string
}

// NewLocator returns a Locator for the running host.
func NewLocator(home string) *Locator {
	return &Locator{
		Family:  FamilyFor(runtime.GOOS),
		Home:    home,
		Getenv:  os.Getenv,
		Fs:      afero.NewOsFs(),
		Flavors: DefaultFlavors,
	}
}

type baseDir struct {
	dir    string
	flavor Flavor
}

func (l *Locator) flavors() []Flavor {
	if len(l.Flavors) == 0 {
		return DefaultFlavors
	}
	return l.Flavors
}

func (l *Locator) getenv(key string) string {
	if l.Getenv == nil {
		return ""
	}
	return l.Getenv(key)
}

// baseDirs lists user-data directories in probe order. Duplicates are
// removed, keeping the first occurrence.
func (l *Locator) baseDirs() []baseDir {
	flavors := l.flavors()
	var dirs []baseDir

	for _, d := range l.ExtraDirs {
		dirs = append(dirs, baseDir{dir: d, flavor: flavors[0]})
	}

	perFlavor := func(root string) {
		for _, f := range flavors {
			dirs = append(dirs, baseDir{dir: filepath.Join(root, f.Name, "User"), flavor: f})
		}
	}

	switch l.Family {
	case FamilyDarwin:
		perFlavor(filepath.Join(l.Home, "Library", "Application Support"))
	case FamilyXDG:
		if xdg := l.getenv("XDG_CONFIG_HOME"); xdg != "" {
			perFlavor(xdg)
		}
		perFlavor(filepath.Join(l.Home, ".config"))
		for _, f := range flavors {
			if f.Flatpak == "" {
				continue
			}
			dir := filepath.Join(l.Home, ".var", "app", f.Flatpak, "config", f.flatpakDir(), "User")
			dirs = append(dirs, baseDir{dir: dir, flavor: f})
		}
	case FamilyWindows:
		if appData := l.getenv("APPDATA"); appData != "" {
			perFlavor(appData)
		}
		perFlavor(filepath.Join(l.Home, "AppData", "Roaming"))
	default:
		return nil
	}

	seen := make(map[string]bool, len(dirs))
	out := dirs[:0]
	for _, d := range dirs {
		key := filepath.Clean(d.dir)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	return out
}

// Candidates returns every probed path in priority order: all state
// databases first, then all storage.json files.
func (l *Locator) Candidates() []Location {
	bases := l.baseDirs()
	out := make([]Location, 0, 2*len(bases))
	for _, b := range bases {
		out = append(out, Location{Path: filepath.Join(b.dir, StateDBSubpath), Kind: KindKeyValueStore, Flavor: b.flavor})
	}
	for _, b := range bases {
		out = append(out, Location{Path: filepath.Join(b.dir, StorageJSONName), Kind: KindJSONFile, Flavor: b.flavor})
	}
	return out
}

// Exists reports whether the candidate is present as a regular file.
func (l *Locator) Exists(loc Location) bool {
	fs := l.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	info, err := fs.Stat(loc.Path)
	return err == nil && !info.IsDir()
}

// Locate returns the first existing candidate. The state database wins
// over storage.json even when an older JSON file is also present.
func (l *Locator) Locate() (Location, bool) {
	candidates := l.Candidates()
	for _, c := range candidates {
		if l.Exists(c) {
			slog.Debug("found recently-opened store", "path", c.Path, "kind", c.Kind.String())
			return c, true
		}
	}
	slog.Warn("no recently-opened store found",
		"family", l.Family.String(),
		"checked", len(candidates))
	return Location{}, false
}
