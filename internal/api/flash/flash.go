// Package flash carries one-shot notices across a redirect using a cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
)

const cookieName = "analysishub_flash"

// Categories mirror the alert styles the page shell knows about.
const (
	CategorySuccess = "success"
	CategoryDanger  = "danger"
	CategoryInfo    = "info"
)

type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Add queues a flash message on the outgoing cookie. Messages already queued
// on this response, and unshown messages the request carried, are preserved,
// so a handler may flash more than once.
func Add(w http.ResponseWriter, r *http.Request, category, text string) {
	messages, ok := queued(w)
	if !ok {
		messages = peek(r)
	}
	messages = append(messages, Message{Category: category, Text: text})

	payload, err := json.Marshal(messages)
	if err != nil {
		return
	}

	dropQueued(w)
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the queued messages and clears the cookie.
func Pop(w http.ResponseWriter, r *http.Request) []Message {
	messages := peek(r)
	if len(messages) == 0 {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	return messages
}

func peek(r *http.Request) []Message {
	if r == nil {
		return nil
	}
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}
	return decode(cookie.Value)
}

// queued reads back messages a previous Add wrote to this response. The
// second return reports whether a flash cookie is pending at all; a pending
// cookie supersedes whatever the request carried.
func queued(w http.ResponseWriter) ([]Message, bool) {
	for _, line := range w.Header().Values("Set-Cookie") {
		if !strings.HasPrefix(line, cookieName+"=") {
			continue
		}
		value := strings.TrimPrefix(line, cookieName+"=")
		if i := strings.IndexByte(value, ';'); i >= 0 {
			value = value[:i]
		}
		return decode(value), true
	}
	return nil, false
}

// dropQueued removes any pending flash Set-Cookie line so the browser only
// ever sees one cookie for the name.
func dropQueued(w http.ResponseWriter) {
	header := w.Header()
	lines := header.Values("Set-Cookie")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if !strings.HasPrefix(line, cookieName+"=") {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(lines) {
		return
	}
	header.Del("Set-Cookie")
	for _, line := range kept {
		header.Add("Set-Cookie", line)
	}
}

func decode(value string) []Message {
	if value == "" {
		return nil
	}
	payload, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var messages []Message
	if err := json.Unmarshal(payload, &messages); err != nil {
		return nil
	}
	return messages
}
