package vscode

import (
	"net/url"
	"path"
	"strings"
)

const (
	fileScheme = "file://"

	// WorkspaceSuffix marks a saved multi-folder workspace descriptor.
	WorkspaceSuffix = ".code-workspace"
)

// NormalizeURI converts a file:// URI into a canonical path for the given
// family. It reports false for other schemes and for remote hosts outside
// Windows, where a host maps onto a UNC share.
func NormalizeURI(uri string, fam Family) (string, bool) {
	if !strings.HasPrefix(uri, fileScheme) {
		return "", false
	}
	rest := uri[len(fileScheme):]

	var host string
	if !strings.HasPrefix(rest, "/") {
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			host, rest = rest[:i], rest[i:]
		} else {
			host, rest = rest, ""
		}
		host = unescape(host)
		// file://C:/dir is a common malformed spelling of file:///C:/dir.
		if isDrive(host) {
			rest = "/" + host + rest
			host = ""
		}
	}
	if strings.EqualFold(host, "localhost") {
		host = ""
	}

	p := NormalizePath(unescape(rest), fam)
	if p == "" {
		return "", false
	}
	if host == "" {
		return p, true
	}
	if fam != FamilyWindows {
		return "", false
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return "//" + host + p, true
}

// NormalizePath cleans an already decoded path. On Windows backslashes become
// forward slashes, UNC prefixes survive and a leading separator before a
// drive letter is dropped. NormalizePath is idempotent.
func NormalizePath(p string, fam Family) string {
	if p == "" {
		return ""
	}
	if fam != FamilyWindows {
		return path.Clean(p)
	}

	p = strings.ReplaceAll(p, `\`, "/")
	if strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "///") {
		return "/" + path.Clean(p)
	}
	p = path.Clean(p)
	if len(p) >= 3 && p[0] == '/' && isDrive(p[1:3]) {
		p = p[1:]
	}
	if isDrive(p) {
		// Bare "C:" is drive-relative; the root is meant.
		p += "/"
	}
	return p
}

// parentDir returns the directory containing p, normalized for fam.
func parentDir(p string, fam Family) string {
	if fam == FamilyWindows && strings.HasPrefix(p, "//") {
		return "/" + path.Dir(p[1:])
	}
	return NormalizePath(path.Dir(p), fam)
}

// unescape percent-decodes s once. Invalid escapes leave s untouched.
func unescape(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

func isDrive(s string) bool {
	if len(s) != 2 || s[1] != ':' {
		return false
	}
	c := s[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
