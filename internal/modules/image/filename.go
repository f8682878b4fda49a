package image

import (
	"regexp"
	"strings"
)

const defaultFilenameBase = "cloud-image"

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// extensionByContentType maps the negotiated content type to the download
// extension. Unknown or absent types fall back to .png, which is what the
// image model emits.
var extensionByContentType = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// AttachmentFilename derives the download filename from the article title,
// replacing every character outside [A-Za-z0-9] with an underscore.
func AttachmentFilename(title, contentType string) string {
	base := defaultFilenameBase
	if title != "" {
		base = unsafeFilenameChars.ReplaceAllString(title, "_")
	}
	return base + extensionForContentType(contentType)
}

func extensionForContentType(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = strings.TrimSpace(ct[:idx])
	}
	if ext, ok := extensionByContentType[ct]; ok {
		return ext
	}
	return ".png"
}
