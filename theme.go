package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// ThemeKey names the storage slot holding the dark-mode flag.
const ThemeKey = "prefers_dark_v1"

// colorSchemeHint is the client hint carrying the visitor's system preference.
const colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

var errNoStore = errors.New("preference store unavailable")

// PreferenceStore is durable per-origin key/value storage.
type PreferenceStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// AmbientSignal reports the environment's preferred color scheme. ok is false
// when no signal is available.
type AmbientSignal func() (dark bool, ok bool)

// Theme is one of the two mutually exclusive visual themes.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func themeFor(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// ThemeStore reads and writes the persisted dark-mode flag.
type ThemeStore struct {
	store   PreferenceStore
	ambient AmbientSignal
}

func NewThemeStore(store PreferenceStore, ambient AmbientSignal) ThemeStore {
	return ThemeStore{store: store, ambient: ambient}
}

// Initialize returns the persisted flag if one is stored, otherwise the
// ambient signal, otherwise false.
func (s ThemeStore) Initialize() bool {
	dark, _ := s.Resolve()
	return dark
}

// Resolve is Initialize that also reports whether the value was read from
// storage.
func (s ThemeStore) Resolve() (dark bool, persisted bool) {
	if s.store != nil {
		if raw, ok, err := s.store.Get(ThemeKey); err == nil && ok {
			var v bool
			if json.Unmarshal([]byte(raw), &v) == nil {
				return v, true
			}
		}
	}
	if s.ambient != nil {
		if v, ok := s.ambient(); ok {
			return v, false
		}
	}
	return false, false
}

// Toggle flips the flag.
func (s ThemeStore) Toggle(current bool) bool {
	return !current
}

// Persist writes value to storage. Failures are ignored.
func (s ThemeStore) Persist(value bool) {
	_ = s.write(value)
}

func (s ThemeStore) write(value bool) error {
	if s.store == nil {
		return errNoStore
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.store.Set(ThemeKey, string(raw))
}

// ThemeCell owns the current flag for one render. Only Set writes; Set
// persists once per actual change.
type ThemeCell struct {
	store ThemeStore
	dark  bool
}

// LoadThemeCell resolves the flag and persists it when nothing was stored
// yet, so a first visit records the inferred theme.
func LoadThemeCell(store ThemeStore) *ThemeCell {
	dark, persisted := store.Resolve()
	if !persisted {
		store.Persist(dark)
	}
	return &ThemeCell{store: store, dark: dark}
}

// NewThemeCell resolves the flag without writing it.
func NewThemeCell(store ThemeStore) *ThemeCell {
	return &ThemeCell{store: store, dark: store.Initialize()}
}

func (c *ThemeCell) Value() bool {
	return c.dark
}

func (c *ThemeCell) Theme() Theme {
	return themeFor(c.dark)
}

func (c *ThemeCell) Set(dark bool) {
	if dark == c.dark {
		return
	}
	c.dark = dark
	c.store.Persist(dark)
}

// Toggle flips the cell and returns the new value.
func (c *ThemeCell) Toggle() bool {
	c.Set(c.store.Toggle(c.dark))
	return c.dark
}

// cookieStore keeps preferences in cookies on the request's origin.
type cookieStore struct {
	w      http.ResponseWriter
	r      *http.Request
	maxAge int
	secure bool
}

func newCookieStore(w http.ResponseWriter, r *http.Request, maxAge int, secure bool) *cookieStore {
	return &cookieStore{w: w, r: r, maxAge: maxAge, secure: secure}
}

func (s *cookieStore) Get(key string) (string, bool, error) {
	if s.r == nil {
		return "", false, errNoStore
	}
	cookie, err := s.r.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return cookie.Value, true, nil
}

func (s *cookieStore) Set(key, value string) error {
	if s.w == nil {
		return errNoStore
	}
	cookie := &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   s.maxAge,
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if err := cookie.Valid(); err != nil {
		return err
	}
	http.SetCookie(s.w, cookie)
	return nil
}

// requestAmbientSignal reads the color-scheme client hint from r.
func requestAmbientSignal(r *http.Request) AmbientSignal {
	return func() (bool, bool) {
		if r == nil {
			return false, false
		}
		switch strings.Trim(strings.ToLower(r.Header.Get(colorSchemeHint)), `" `) {
		case "dark":
			return true, true
		case "light":
			return false, true
		}
		return false, false
	}
}
