package constants

import "strings"

// DocTypeReceipt is the only document type ingested today; invoices reuse it.
const DocTypeReceipt = "receipt"

// AllowedExtensions holds the default allowed file extensions for receipt uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"bmp":  {},
	"tiff": {},
	"txt":  {},
}

var contentTypes = map[string]string{
	"pdf":  "application/pdf",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
	"txt":  "text/plain",
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ContentTypeFor maps a filename to a MIME type for blob uploads.
func ContentTypeFor(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return "application/octet-stream"
	}
	if ct, ok := contentTypes[NormalizeExt(filename[i:])]; ok {
		return ct
	}
	return "application/octet-stream"
}
