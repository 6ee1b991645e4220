package transport

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/cookiejar"
	neturl "net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// FileJar persists session cookies to a JSON file so an established server
// session survives process restarts and a fresh client does not have to
// re-run the form login. It keeps its own cookie index because the standard
// jar does not expose enumeration.
type FileJar struct {
	mu    sync.RWMutex
	inner *cookiejar.Jar
	index map[string]persistedCookie
	path  string
}

type persistedCookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Domain   string    `json:"domain"`
	Path     string    `json:"path"`
	Expires  time.Time `json:"expires"`
	Secure   bool      `json:"secure"`
	HttpOnly bool      `json:"httpOnly"`
}

// NewFileJar creates a cookie jar persisted at path, rehydrating any
// unexpired cookies recorded by a previous run.
func NewFileJar(path string) (*FileJar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	j := &FileJar{inner: inner, index: map[string]persistedCookie{}, path: path}
	if err := j.load(); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *FileJar) Cookies(u *neturl.URL) []*http.Cookie {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.inner.Cookies(u)
}

func (j *FileJar) SetCookies(u *neturl.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.inner.SetCookies(u, cookies)
	for _, c := range cookies {
		domain := strings.TrimPrefix(strings.TrimSpace(c.Domain), ".")
		if domain == "" {
			// host-only cookie
			domain = u.Host
			if host, _, err := net.SplitHostPort(domain); err == nil && host != "" {
				domain = host
			}
		}
		cookiePath := c.Path
		if strings.TrimSpace(cookiePath) == "" {
			cookiePath = "/"
		}
		key := domain + "|" + cookiePath + "|" + c.Name
		if !c.Expires.IsZero() && time.Now().After(c.Expires) {
			delete(j.index, key)
			continue
		}
		j.index[key] = persistedCookie{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   domain,
			Path:     cookiePath,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		}
	}
	_ = j.save()
}

func (j *FileJar) save() error {
	cookies := make([]persistedCookie, 0, len(j.index))
	for _, pc := range j.index {
		cookies = append(cookies, pc)
	}
	data, err := json.MarshalIndent(map[string][]persistedCookie{"cookies": cookies}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(j.path), 0o700); err != nil {
		return err
	}
	tmp := j.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, j.path)
}

func (j *FileJar) load() error {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var snapshot map[string][]persistedCookie
	if err = json.Unmarshal(data, &snapshot); err != nil {
		return err
	}
	for _, pc := range snapshot["cookies"] {
		if pc.Domain == "" {
			continue
		}
		if !pc.Expires.IsZero() && time.Now().After(pc.Expires) {
			continue
		}
		scheme := "http"
		if pc.Secure {
			scheme = "https"
		}
		u := &neturl.URL{Scheme: scheme, Host: pc.Domain, Path: pc.Path}
		j.inner.SetCookies(u, []*http.Cookie{{
			Name:     pc.Name,
			Value:    pc.Value,
			Path:     pc.Path,
			Expires:  pc.Expires,
			Secure:   pc.Secure,
			HttpOnly: pc.HttpOnly,
		}})
		j.index[pc.Domain+"|"+pc.Path+"|"+pc.Name] = pc
	}
	return nil
}
