package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/salestrak-pa/internal/logger"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSessionRepository returns the SQLite-backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sessionRepository) SaveCookies(ctx context.Context, baseURL string, cookies []*http.Cookie) error {
	log := s.logger

	deleteQuery, deleteArgs, err := buildDeleteCookiesQuery(baseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.SaveCookies").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", "sessionRepository.SaveCookies").Str("base_url", baseURL).Msg("failed to delete stored cookies")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(cookies) > 0 {
		insertQuery, insertArgs, err := buildInsertCookiesQuery(baseURL, cookies, s.now().UTC())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).Str("func", "sessionRepository.SaveCookies").Str("base_url", baseURL).Msg("failed to insert cookies")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sessionRepository.SaveCookies").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", "sessionRepository.SaveCookies").Int("cookies", len(cookies)).Msg("session cookies saved")
	return nil
}

func (s *sessionRepository) LoadCookies(ctx context.Context, baseURL string) ([]*http.Cookie, error) {
	query, args, err := buildSelectCookiesQuery(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "sessionRepository.LoadCookies").Str("base_url", baseURL).Msg("failed to query cookies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var cookies []*http.Cookie
	for rows.Next() {
		c := &http.Cookie{}
		if err = rows.Scan(&c.Name, &c.Value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		cookies = append(cookies, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(cookies) == 0 {
		return nil, ErrLocalSessionNotFound
	}
	return cookies, nil
}

func (s *sessionRepository) Clear(ctx context.Context, baseURL string) error {
	query, args, err := buildDeleteCookiesQuery(baseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sessionRepository.Clear").Str("base_url", baseURL).Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sessionRepository) SaveLastEmail(ctx context.Context, baseURL, email string) error {
	query, args, err := buildUpsertLastEmailQuery(baseURL, email, s.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sessionRepository.SaveLastEmail").Msg("failed to save last email")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sessionRepository) LastEmail(ctx context.Context, baseURL string) (string, error) {
	query, args, err := buildSelectLastEmailQuery(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var email string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrLocalSessionNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sessionRepository.LastEmail").Msg("failed to read last email")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return email, nil
}
