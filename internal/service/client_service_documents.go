package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/salestrak-pa/internal/adapter"
	"github.com/MKhiriev/salestrak-pa/internal/logger"
	"github.com/MKhiriev/salestrak-pa/internal/validators"
	"github.com/MKhiriev/salestrak-pa/models"
)

type clientDocumentService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientDocumentService(serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientDocumentService {
	return &clientDocumentService{adapter: serverAdapter, validator: validator, logger: logger}
}

func (s *clientDocumentService) Save(ctx context.Context, upload models.DocumentUpload) error {
	creating := upload.EditingID == 0

	fields := []string{}
	if creating {
		fields = append(fields, validators.FieldDocumentCreate)
	}
	if err := s.validator.Validate(ctx, upload, fields...); err != nil {
		return err
	}

	log := s.logger.Debug().Str("func", "clientDocumentService.Save").Str("doc_name", upload.Name)
	if upload.HasNewFile() {
		log = log.Str("file", upload.File.Name).Str("size", humanize.IBytes(uint64(upload.File.Size)))
	}
	log.Bool("creating", creating).Msg("saving document")

	var err error
	if creating {
		err = s.adapter.AddDocument(ctx, upload)
	} else {
		err = s.adapter.UpdateDocument(ctx, upload.EditingID, upload)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "clientDocumentService.Save").Msg("failed to save document")
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientDocumentService) Delete(ctx context.Context, id int64) error {
	if err := s.adapter.DeleteDocument(ctx, id); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientDocumentService) Download(ctx context.Context, id int64, dir string) (string, int64, error) {
	doc, err := s.adapter.DownloadDocument(ctx, id)
	if err != nil {
		return "", 0, mapAdapterError(err)
	}
	defer doc.Body.Close()

	if dir == "" {
		dir = "."
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("create download dir: %w", err)
	}

	path := filepath.Join(dir, filepath.Base(doc.FileName))
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("create %s: %w", path, err)
	}

	n, err := io.Copy(f, doc.Body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		s.logger.Err(err).Str("func", "clientDocumentService.Download").Int64("document_id", id).Msg("failed to write document")
		return "", 0, fmt.Errorf("write %s: %w", path, err)
	}

	s.logger.Info().
		Str("func", "clientDocumentService.Download").
		Int64("document_id", id).
		Str("path", path).
		Str("size", humanize.IBytes(uint64(n))).
		Msg("document downloaded")

	return path, n, nil
}

func (s *clientDocumentService) DownloadURL(id int64) string {
	return s.adapter.DownloadURL(id)
}
