package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/models"
)

// ErrLocalSessionNotFound is returned when no session row exists locally,
// i.e. nobody is signed in on this device.
var ErrLocalSessionNotFound = errors.New("local session not found")

// ErrLocalPreferenceNotFound is returned when a preference key has never
// been written.
var ErrLocalPreferenceNotFound = errors.New("local preference not found")

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository].
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] on top of an open
// SQLite connection and bootstraps the local schema.
func NewSessionRepository(db *DB, logger *logger.Logger) (SessionRepository, error) {
	if _, err := db.Exec(localSchema); err != nil {
		logger.Err(err).Str("func", "NewSessionRepository").Msg("failed to bootstrap local schema")
		return nil, fmt.Errorf("failed to bootstrap local schema: %w", err)
	}

	return &sessionRepository{
		DB:     db,
		logger: logger,
	}, nil
}

// SaveSession writes the signed-in session, replacing any previous one.
func (s *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	savedAt := session.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	_, err := s.DB.ExecContext(ctx, localSaveSession, session.UserID, session.Login, session.Token, savedAt)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Int64("user_id", session.UserID).
			Msg("failed to save local session")
		return fmt.Errorf("failed to save local session: %w", err)
	}

	return nil
}

// GetSession returns the persisted session or [ErrLocalSessionNotFound].
func (s *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := s.DB.QueryRowContext(ctx, localGetSession)

	err := row.Scan(&session.UserID, &session.Login, &session.Token, &session.SavedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrLocalSessionNotFound
		}
		log.Err(err).
			Str("func", "sessionRepository.GetSession").
			Msg("failed to scan local session row")
		return models.Session{}, fmt.Errorf("failed to scan local session row: %w", err)
	}

	return session, nil
}

// UpdateToken replaces the stored bearer token in place. Used by the
// background session-refresh worker.
//
// Returns [ErrLocalSessionNotFound] when nobody is signed in.
func (s *sessionRepository) UpdateToken(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	result, err := s.DB.ExecContext(ctx, localUpdateToken, token, time.Now())
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.UpdateToken").
			Msg("failed to update local session token")
		return fmt.Errorf("failed to update local session token: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.UpdateToken").
			Msg("failed to read affected rows")
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return ErrLocalSessionNotFound
	}

	return nil
}

// ClearSession removes the session row. Clearing an empty table is a no-op,
// so logout is idempotent.
func (s *sessionRepository) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, localClearSession); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.ClearSession").
			Msg("failed to clear local session")
		return fmt.Errorf("failed to clear local session: %w", err)
	}

	return nil
}

// SavePreference stores a small UI preference (e.g. the chosen completion
// model), replacing any previous value for the key.
func (s *sessionRepository) SavePreference(ctx context.Context, key string, value string) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, localSavePreference, key, value); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SavePreference").
			Str("key", key).
			Msg("failed to save local preference")
		return fmt.Errorf("failed to save local preference: %w", err)
	}

	return nil
}

// GetPreference returns the stored value for key or
// [ErrLocalPreferenceNotFound].
func (s *sessionRepository) GetPreference(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := s.DB.QueryRowContext(ctx, localGetPreference, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrLocalPreferenceNotFound
		}
		log.Err(err).
			Str("func", "sessionRepository.GetPreference").
			Str("key", key).
			Msg("failed to scan local preference row")
		return "", fmt.Errorf("failed to scan local preference row: %w", err)
	}

	return value, nil
}
