package validators

import (
	"testing"

	"github.com/MKhiriev/salestrak-pa/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateDocument(t *testing.T) {
	pdf := func(size int64) *models.FileRef {
		return &models.FileRef{Name: "contract.pdf", ContentType: "application/pdf", Size: size}
	}

	tests := []struct {
		name     string
		upload   models.DocumentUpload
		creating bool
		wantErr  error
		wantMsg  string
	}{
		{"1 MB pdf", models.DocumentUpload{Name: "Contract", File: pdf(1 << 20)}, true, nil, ""},
		{"exactly 2 MiB", models.DocumentUpload{Name: "Contract", File: pdf(MaxDocumentSize)}, true, nil, ""},
		{"3 MB pdf", models.DocumentUpload{Name: "Contract", File: pdf(3 << 20)}, true, ErrFileTooLarge, MsgFileTooLarge},
		{"missing name", models.DocumentUpload{File: pdf(10)}, true, ErrRequiredFields, MsgDocumentRequired},
		{"missing file on create", models.DocumentUpload{Name: "Contract"}, true, ErrFileRequired, MsgDocumentRequired},
		{"missing file on edit", models.DocumentUpload{Name: "Contract", EditingID: 4}, false, nil, ""},
		{
			"existing stored file skips checks",
			models.DocumentUpload{Name: "Contract", EditingID: 4, File: &models.FileRef{Name: "big.zip", Size: 9 << 20, IsExisting: true}},
			false, nil, "",
		},
		{
			"zip rejected",
			models.DocumentUpload{Name: "Archive", File: &models.FileRef{Name: "a.zip", ContentType: "application/zip", Size: 10}},
			true, ErrFileKind, MsgFileKind,
		},
		{
			"xlsx by extension",
			models.DocumentUpload{Name: "Prices", File: &models.FileRef{Name: "Prices.XLSX", Size: 10}},
			true, nil, "",
		},
		{
			"jpeg with parameters",
			models.DocumentUpload{Name: "Photo", File: &models.FileRef{Name: "p", ContentType: "image/jpeg; charset=binary", Size: 10}},
			true, nil, "",
		},
		{
			"kind checked before size",
			models.DocumentUpload{Name: "Movie", File: &models.FileRef{Name: "m.mp4", Size: 9 << 20}},
			true, ErrFileKind, MsgFileKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.upload, tt.creating)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, MessageOf(err, ""))
		})
	}
}

func TestDocumentContentType(t *testing.T) {
	assert.Equal(t, "image/png", DocumentContentType(models.FileRef{Path: "/tmp/x.PNG"}))
	assert.Equal(t, "application/vnd.ms-excel", DocumentContentType(models.FileRef{Name: "a.xls"}))
	assert.Equal(t, "", DocumentContentType(models.FileRef{Name: "notes.txt"}))
}
