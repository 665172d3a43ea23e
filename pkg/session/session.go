package session

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	cookieName = "todo_session"
	userKey    = "username"
)

// CookieService keeps the authenticated username in a signed client-side
// cookie. There is no server-side session state: the cookie is the session.
type CookieService struct {
	store *sessions.CookieStore
}

func NewCookieService(secret []byte) *CookieService {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0, // browser-session cookie
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &CookieService{
		store: store,
	}
}

// SignIn binds the username to the request's session and writes the signed
// cookie to the response.
func (s *CookieService) SignIn(w http.ResponseWriter, r *http.Request, username string) error {
	// a decode failure yields a fresh session, which is what we want here
	sess, _ := s.store.Get(r, cookieName)
	sess.Values[userKey] = username

	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// SignOut drops the session cookie. Signing out an anonymous request is a no-op.
func (s *CookieService) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.store.Get(r, cookieName)
	delete(sess.Values, userKey)
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// CurrentUser reports the username carried by the request's session cookie.
// A missing, expired or tampered cookie is treated as anonymous.
func (s *CookieService) CurrentUser(r *http.Request) (string, bool) {
	sess, err := s.store.Get(r, cookieName)
	if err != nil {
		return "", false
	}

	username, ok := sess.Values[userKey].(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
