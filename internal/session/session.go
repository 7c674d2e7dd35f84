package session

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "admin_session"
	adminKey    = "admin"
)

// Store holds the signed+encrypted admin session cookie. There is a single
// admin account, so the session carries only an authenticated marker.
type Store struct {
	store *sessions.CookieStore
}

func NewStore(secret string, secure bool, maxAge int) *Store {
	// Two keys derived from one secret: signing and encryption.
	h := sha256.Sum256([]byte("auth:" + secret))
	e := sha256.Sum256([]byte("enc:" + secret))

	store := sessions.NewCookieStore(h[:], e[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}

	return &Store{store: store}
}

func (s *Store) SetAdmin(w http.ResponseWriter, r *http.Request) error {
	sess, err := s.store.Get(r, sessionName)
	if err != nil {
		return err
	}
	sess.Values[adminKey] = true
	return sess.Save(r, w)
}

func (s *Store) IsAdmin(r *http.Request) bool {
	sess, err := s.store.Get(r, sessionName)
	if err != nil {
		return false
	}
	v, ok := sess.Values[adminKey].(bool)
	return ok && v
}

func (s *Store) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, err := s.store.Get(r, sessionName)
	if err != nil {
		return err
	}
	delete(sess.Values, adminKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
