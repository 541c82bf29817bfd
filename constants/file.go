package constants

import "strings"

// File formats stored in the extract_job.format column.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// FileTypes holds the allowed file types for the format field in ExtractJob.
var FileTypes = []string{PDF, IMAGE}

// AllowedExtensions holds the default allowed file extensions for invoice ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tif":  {},
	"tiff": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to its storage format.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png", "tif", "tiff":
		return IMAGE
	default:
		return ""
	}
}
