package template

import (
	"strings"
)

// Ext is the extension every stored template carries.
const Ext = ".json"

// Unknown fills the user and skill of filenames outside the naming convention.
const Unknown = "Unknown"

// Info is what the filename convention <user>_<skill>_<shortname>.json says
// about a template.
type Info struct {
	Filename  string `json:"filename"`
	User      string `json:"user"`
	Skill     string `json:"skill"`
	ShortName string `json:"short_name"`
}

// ParseFilename splits a filename into user, skill and short name.
// Names with fewer than two parts fall back to Unknown.
func ParseFilename(filename string) Info {
	info := Info{Filename: filename}
	parts := strings.Split(Stem(filename), "_")
	switch {
	case len(parts) >= 3:
		info.User = parts[0]
		info.Skill = parts[1]
		info.ShortName = strings.Join(parts[2:], "_")
	case len(parts) == 2:
		info.User = parts[0]
		info.Skill = parts[1]
	default:
		info.User = Unknown
		info.Skill = Unknown
	}
	return info
}

// Stem returns the filename without its extension.
func Stem(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return filename[:i]
	}
	return filename
}

// FilenameFor derives the storage filename for a new template name:
// trimmed, spaces to underscores, lower-cased, with Ext appended.
func FilenameFor(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_")) + Ext
}

// IsTemplateFile reports whether a stored filename names a template document.
func IsTemplateFile(filename string) bool {
	return strings.HasSuffix(filename, Ext) && len(filename) > len(Ext)
}
