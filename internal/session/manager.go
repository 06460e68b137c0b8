// Package session implements the local, unverified login: any well-formed
// email and password pair is accepted and recorded as the current user.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"interviewmate/internal/config"
	"interviewmate/internal/models"
	"interviewmate/internal/store"
	"interviewmate/internal/utils"

	"go.uber.org/zap"
)

var (
	ErrUnauthenticated = errors.New("not logged in")
	ErrSessionMismatch = errors.New("token does not match the current session")
)

// CacheClearer is satisfied by the interview repository.
type CacheClearer interface {
	ClearCache()
}

type Manager struct {
	store  store.Store
	cache  CacheClearer
	secret string
	delay  time.Duration
	logger *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	lastUID int64
}

func NewManager(s store.Store, cache CacheClearer, cfg config.AuthConfig, logger *zap.Logger) *Manager {
	return &Manager{
		store:  s,
		cache:  cache,
		secret: cfg.JWTSecret,
		delay:  cfg.LoginDelay,
		logger: utils.OrNop(logger),
		now:    time.Now,
	}
}

// Login waits for the configured delay, validates req and records a new
// session. Validation failures are *models.ErrorResponse and write nothing.
func (m *Manager) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := m.now()
	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		displayName = utils.DisplayNameFromEmail(req.Email)
	}

	user := models.UserSession{
		UID:         m.nextUID(now),
		DisplayName: displayName,
		Email:       req.Email,
		CreatedAt:   now.UTC(),
	}

	token, err := utils.IssueToken(m.secret, user.UID, user.Email, now)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if err := store.SaveJSON(ctx, m.store, store.KeySession, user); err != nil {
		return nil, err
	}

	m.logger.Info("user logged in", zap.String("uid", user.UID), zap.Bool("register", req.Register))
	return &models.LoginResponse{Token: token, User: user}, nil
}

// Current returns the stored session or ErrUnauthenticated.
func (m *Manager) Current(ctx context.Context) (*models.UserSession, error) {
	var user models.UserSession
	if !store.LoadJSON(ctx, m.store, store.KeySession, &user, m.logger) || user.UID == "" {
		return nil, ErrUnauthenticated
	}
	return &user, nil
}

// Authenticate checks the token signature and that it belongs to the
// session currently stored.
func (m *Manager) Authenticate(ctx context.Context, token string) (*models.UserSession, error) {
	claims, err := utils.ParseToken(token, m.secret)
	if err != nil {
		return nil, err
	}
	uid, err := utils.GetUserIDFromClaims(claims)
	if err != nil {
		return nil, utils.ErrInvalidClaims
	}

	user, err := m.Current(ctx)
	if err != nil {
		return nil, err
	}
	if user.UID != uid {
		return nil, ErrSessionMismatch
	}
	return user, nil
}

// Logout removes the session and drops cached interviews. Stored
// interviews are kept.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Remove(ctx, store.KeySession); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	if m.cache != nil {
		m.cache.ClearCache()
	}
	m.logger.Info("user logged out")
	return nil
}

// nextUID is the login time in unix milliseconds, strictly increasing.
func (m *Manager) nextUID(now time.Time) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	uid := now.UnixMilli()
	if uid <= m.lastUID {
		uid = m.lastUID + 1
	}
	m.lastUID = uid
	return strconv.FormatInt(uid, 10)
}
