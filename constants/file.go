package constants

import "strings"

// Source formats accepted by text acquisition.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// AllowedExtensions holds the file extensions accepted for report upload.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tif":  {},
	"tiff": {},
	"bmp":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a source format.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) string {
	ext = NormalizeExt(ext)
	if ext == "pdf" {
		return PDF
	}
	if _, ok := AllowedExtensions[ext]; ok {
		return IMAGE
	}
	return ""
}

// MapMIMEToFormat maps a declared MIME type to a source format.
// Only application/pdf and image/* are accepted; returns "" otherwise.
func MapMIMEToFormat(mime string) string {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	switch {
	case mime == "application/pdf":
		return PDF
	case strings.HasPrefix(mime, "image/"):
		return IMAGE
	default:
		return ""
	}
}

// ExtForMIME picks a temp-file extension for a MIME type, defaulting to png
// for image subtypes tesseract reads directly.
func ExtForMIME(mime string) string {
	switch MapMIMEToFormat(mime) {
	case PDF:
		return "pdf"
	case IMAGE:
		sub := strings.TrimPrefix(strings.ToLower(mime), "image/")
		if i := strings.IndexByte(sub, ';'); i >= 0 {
			sub = strings.TrimSpace(sub[:i])
		}
		if sub == "jpeg" {
			sub = "jpg"
		}
		if _, ok := AllowedExtensions[sub]; ok {
			return sub
		}
		return "png"
	default:
		return ""
	}
}
