package session

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gm2dev/interviewhub-client/internal/logger"
	"github.com/gm2dev/interviewhub-client/internal/model"
)

// Persisted keys. Cleared together on logout so the store never holds
// a partial session.
const (
	keyToken     = "ih_token"
	keyEmail     = "ih_email"
	keyExpiresAt = "ih_expires_at"
	keySubject   = "ih_subject"
)

var sessionKeys = []string{keyToken, keyEmail, keyExpiresAt, keySubject}

// Snapshot is the session read model handed to subscribers whenever
// the session changes.
type Snapshot struct {
	Email         string
	Subject       string
	Authenticated bool
}

// Store owns the authenticated session: the bearer token, the email
// reported by the identity provider, the expiry instant, and the
// unverified subject decoded from the token. All state lives in the
// injected KeyValueStore so it survives restarts; the store itself is
// the only writer.
type Store struct {
	kv      model.KeyValueStore
	baseURL string
	logger  *logger.Logger
	now     func() time.Time

	mu   sync.Mutex
	subs map[uuid.UUID]func(Snapshot)
}

// NewStore creates a session store persisting through kv. baseURL is
// the backend root used to build the identity-provider entry point.
func NewStore(kv model.KeyValueStore, baseURL string, logger *logger.Logger) *Store {
	return &Store{
		kv:      kv,
		baseURL: baseURL,
		logger:  logger,
		now:     time.Now,
		subs:    make(map[uuid.UUID]func(Snapshot)),
	}
}

// LoginURL returns the identity-provider entry point the user agent
// must be sent to. The store changes no local state for a login; state
// only appears once the provider calls back.
func (s *Store) LoginURL() string {
	return s.baseURL + "/auth/google"
}

// HandleCallback persists the session returned by the identity
// provider: the opaque token, the email, and an expiry instant of
// now + expiresIn seconds. The token's subject claim is decoded
// without verification; a token that does not decode leaves the
// subject absent and is not an error. Subscribers are notified
// synchronously.
func (s *Store) HandleCallback(token, email string, expiresIn int64) error {
	expiresAt := s.now().UnixMilli() + expiresIn*1000

	if err := s.kv.Set(keyToken, token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	if err := s.kv.Set(keyEmail, email); err != nil {
		return fmt.Errorf("failed to persist email: %w", err)
	}
	if err := s.kv.Set(keyExpiresAt, strconv.FormatInt(expiresAt, 10)); err != nil {
		return fmt.Errorf("failed to persist expiry: %w", err)
	}

	if claims, ok := DecodeClaims(token); ok {
		if err := s.kv.Set(keySubject, claims.Subject); err != nil {
			return fmt.Errorf("failed to persist subject: %w", err)
		}
	} else {
		// Identity stays unknown; drop any subject left over from a
		// previous session so ownership checks deny.
		s.logger.Debug("session: token claims did not decode, subject unset")
		if err := s.kv.Delete(keySubject); err != nil {
			return fmt.Errorf("failed to clear stale subject: %w", err)
		}
	}

	s.notify()
	return nil
}

// Token returns the persisted bearer token without any validation.
func (s *Store) Token() (string, bool) {
	return s.read(keyToken)
}

// Email returns the email persisted at callback time.
func (s *Store) Email() (string, bool) {
	return s.read(keyEmail)
}

// Subject returns the unverified identity subject, absent when the
// token never decoded.
func (s *Store) Subject() (string, bool) {
	return s.read(keySubject)
}

// IsAuthenticated reports whether a token is persisted and the expiry
// instant is still in the future. A cleared store or a callback with
// expiresIn <= 0 yields false.
func (s *Store) IsAuthenticated() bool {
	if _, ok := s.read(keyToken); !ok {
		return false
	}
	raw, ok := s.read(keyExpiresAt)
	if !ok {
		return false
	}
	expiresAt, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false
	}
	return s.now().UnixMilli() < expiresAt
}

// Logout clears every persisted session field together. Idempotent;
// subscribers are notified even when there was nothing to clear.
func (s *Store) Logout() error {
	if err := s.kv.Delete(sessionKeys...); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.notify()
	return nil
}

// Subscribe registers fn to receive a Snapshot after every session
// change. The returned function cancels the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	id := uuid.New()
	s.mu.Lock()
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Snapshot returns the current session read model.
func (s *Store) Snapshot() Snapshot {
	email, _ := s.Email()
	subject, _ := s.Subject()
	return Snapshot{
		Email:         email,
		Subject:       subject,
		Authenticated: s.IsAuthenticated(),
	}
}

func (s *Store) notify() {
	snap := s.Snapshot()

	s.mu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// read swallows persistence errors into absence: a session field that
// cannot be read must gate like a missing one.
func (s *Store) read(key string) (string, bool) {
	value, ok, err := s.kv.Get(key)
	if err != nil {
		s.logger.Warn("session: failed to read persisted field", "key", key, "error", err.Error())
		return "", false
	}
	return value, ok
}
