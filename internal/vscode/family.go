// Package vscode locates the editor's recently-opened store on disk and
// extracts the projects recorded in it.
package vscode

// Family is an operating-system family with its own user-data convention.
type Family int

const (
	FamilyUnknown Family = iota
	// FamilyDarwin keeps user data under ~/Library/Application Support.
	FamilyDarwin
	// FamilyXDG keeps user data under ~/.config (and flatpak sandboxes).
	FamilyXDG
	// FamilyWindows keeps user data under the roaming AppData directory.
	FamilyWindows
)

// FamilyFor maps a runtime.GOOS value to its Family.
func FamilyFor(goos string) Family {
	switch goos {
	case "darwin":
		return FamilyDarwin
	case "linux", "freebsd", "openbsd", "netbsd":
		return FamilyXDG
	case "windows":
		return FamilyWindows
	default:
		return FamilyUnknown
	}
}

func (f Family) String() string {
	switch f {
	case FamilyDarwin:
		return "darwin"
	case FamilyXDG:
		return "xdg"
	case FamilyWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// Flavor is one build of the editor. Each build keeps its own user-data
// directory and ships its own launcher binary.
type Flavor struct {
	Name    string `json:"name" mapstructure:"name"`
	Flatpak string `json:"flatpak,omitempty" mapstructure:"flatpak"`
	// FlatpakDir is the config directory inside the flatpak sandbox. Both
	// flatpak builds use "Code"; empty means Name.
	FlatpakDir string `json:"flatpak_dir,omitempty" mapstructure:"flatpak_dir"`
	Binary     string `json:"binary" mapstructure:"binary"`
}

func (f Flavor) flatpakDir() string {
	if f.FlatpakDir == "" {
		return f.Name
	}
	return f.FlatpakDir
}

// DefaultFlavors lists the stable build before the Insiders build.
var DefaultFlavors = []Flavor{
	{Name: "Code", Flatpak: "com.visualstudio.code", FlatpakDir: "Code", Binary: "code"},
	{Name: "Code - Insiders", Flatpak: "com.visualstudio.code.insiders", FlatpakDir: "Code", Binary: "code-insiders"},
}
