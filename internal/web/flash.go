package web

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const flashSession = "gigboard_flash"

// Flash stores one-shot messages in a cookie session, shown on the next
// rendered page and then discarded.
type Flash struct {
	store sessions.Store
}

// NewFlash builds a cookie-backed flash store keyed with the given secret.
func NewFlash(secret []byte) *Flash {
	store := sessions.NewCookieStore(secret)
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	return &Flash{store: store}
}

// Add queues a message for the next page load.
func (f *Flash) Add(w http.ResponseWriter, r *http.Request, message string) {
	session, _ := f.store.Get(r, flashSession)
	session.AddFlash(message)
	_ = session.Save(r, w)
}

// Pop returns and clears the queued messages.
func (f *Flash) Pop(w http.ResponseWriter, r *http.Request) []string {
	session, _ := f.store.Get(r, flashSession)
	raw := session.Flashes()
	if len(raw) > 0 {
		_ = session.Save(r, w)
	}
	messages := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
