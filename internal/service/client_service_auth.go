package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/levelup-fitness/internal/adapter"
	"github.com/MKhiriev/levelup-fitness/internal/store"
	"github.com/MKhiriev/levelup-fitness/internal/utils"
	"github.com/MKhiriev/levelup-fitness/models"
)

// prefLastPage is the preferences key under which the active page persists
// across runs.
const prefLastPage = "last_page"

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: serverAdapter}
}

func (a *clientAuthService) Register(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if err := a.adapter.Register(ctx, creds); err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	return a.persistSession(ctx, creds.Login)
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if err := a.adapter.Login(ctx, creds); err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	return a.persistSession(ctx, creds.Login)
}

// persistSession turns the bearer token the adapter captured from the
// Authorization header into the single local session row.
func (a *clientAuthService) persistSession(ctx context.Context, login string) (models.Session, error) {
	token := a.adapter.Token()

	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("parse user ID from token: %w", err)
	}

	session := models.Session{UserID: userID, Login: login, Token: token}
	if err := a.localStore.SessionRepository.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save local session: %w", err)
	}

	return session, nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.localStore.SessionRepository.GetSession(ctx)
	if err != nil {
		return models.Session{}, err
	}

	a.adapter.SetToken(session.Token)

	return session, nil
}

func (a *clientAuthService) ChangePassword(ctx context.Context, change models.ChangePasswordRequest) error {
	if change.NewPassword == "" {
		return ErrEmptyPassword
	}
	if change.NewPassword != change.ConfirmPassword {
		return ErrPasswordMismatch
	}

	if err := a.adapter.ChangePassword(ctx, change); err != nil {
		return mapAdapterError(err)
	}

	return nil
}

func (a *clientAuthService) RefreshToken(ctx context.Context) (string, error) {
	token, err := a.adapter.RefreshToken(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}

	if err := a.localStore.SessionRepository.UpdateToken(ctx, token); err != nil {
		return "", fmt.Errorf("update local session token: %w", err)
	}

	return token, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")

	return a.localStore.SessionRepository.ClearSession(ctx)
}

// LastPage returns the persisted page name, or "" when nothing was saved. A
// read failure is treated the same as an unsaved preference: the caller falls
// back to its default page.
func (a *clientAuthService) LastPage(ctx context.Context) string {
	page, err := a.localStore.SessionRepository.GetPreference(ctx, prefLastPage)
	if err != nil {
		return ""
	}
	return page
}

func (a *clientAuthService) SaveLastPage(ctx context.Context, page string) error {
	return a.localStore.SessionRepository.SavePreference(ctx, prefLastPage, page)
}
