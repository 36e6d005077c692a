package constants

import "strings"

// Format is the declared file format stored on a document.
type Format string

const (
	TXT    Format = "TXT"
	PDF    Format = "PDF"
	IMAGE  Format = "IMAGE"
	OFFICE Format = "OFFICE"
)

// Formats holds the allowed values for the documents.file_type column.
var Formats = []string{string(TXT), string(PDF), string(IMAGE), string(OFFICE)}

// AllowedExtensions holds the file extensions accepted at upload time.
var AllowedExtensions = map[string]struct{}{
	"txt":  {},
	"pdf":  {},
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"csv":  {},
	"xlsx": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether a (possibly dotted, mixed-case) extension is
// in the supported upload set.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}

// MapExtToFormat maps a file extension to its processing format.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) Format {
	switch NormalizeExt(ext) {
	case "txt":
		return TXT
	case "pdf":
		return PDF
	case "png", "jpg", "jpeg":
		return IMAGE
	case "csv", "xlsx":
		return OFFICE
	}
	return ""
}

// AllowedExtList returns the supported extensions as a sorted-ish display list.
func AllowedExtList() []string {
	out := make([]string, 0, len(AllowedExtensions))
	for ext := range AllowedExtensions {
		out = append(out, ext)
	}
	return out
}
