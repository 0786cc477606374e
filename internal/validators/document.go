package validators

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/salestrak-pa/models"
)

// MaxDocumentSize is the upload ceiling: 2 MiB.
const MaxDocumentSize int64 = 2 * 1024 * 1024

// allowedDocumentTypes lists the MIME types a document file may have.
var allowedDocumentTypes = map[string]struct{}{
	"application/pdf":          {},
	"image/jpeg":               {},
	"image/png":                {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
}

// documentExtensions maps file extensions to the allowed MIME types. It is
// used when the picker did not report a content type.
var documentExtensions = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// DocumentContentType resolves the MIME type of a file: the reported content
// type without parameters, or the one implied by the extension.
func DocumentContentType(file models.FileRef) string {
	if file.ContentType != "" {
		if mt, _, err := mime.ParseMediaType(file.ContentType); err == nil {
			return mt
		}
		return strings.ToLower(file.ContentType)
	}

	name := file.Name
	if name == "" {
		name = file.Path
	}
	return documentExtensions[strings.ToLower(filepath.Ext(name))]
}

// ValidateDocument checks a document form. The name is always required; a
// file is required only when creating. A new file must be one of the allowed
// kinds and no larger than MaxDocumentSize. A reference to the file already
// stored on the server is not checked again.
func ValidateDocument(upload models.DocumentUpload, creating bool) error {
	fe := &FieldErrors{}
	if strings.TrimSpace(upload.Name) == "" {
		fe.add(FieldDocumentName, ErrRequiredFields, MsgDocumentRequired)
	}

	if upload.File == nil {
		if creating {
			fe.add(FieldFile, ErrFileRequired, MsgDocumentRequired)
		}
		return fe.orNil()
	}

	if !upload.HasNewFile() {
		return fe.orNil()
	}

	if _, ok := allowedDocumentTypes[DocumentContentType(*upload.File)]; !ok {
		fe.add(FieldFile, ErrFileKind, MsgFileKind)
	} else if upload.File.Size > MaxDocumentSize {
		fe.add(FieldFile, ErrFileTooLarge, MsgFileTooLarge)
	}
	return fe.orNil()
}
