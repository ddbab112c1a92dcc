package store

import (
	"context"

	"github.com/MKhiriev/levelup-fitness/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository is the client's local persistence for the signed-in
// session and small UI preferences. Exactly one session row exists at a time.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context) (models.Session, error)
	UpdateToken(ctx context.Context, token string) error
	ClearSession(ctx context.Context) error
	SavePreference(ctx context.Context, key string, value string) error
	GetPreference(ctx context.Context, key string) (string, error)
}
