package server

import (
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"net/http"
)

// HashFS serves static files with content-hash cache busting: URLs carry
// a hash query parameter, and responses for a matching hash are marked
// immutable. Hashes are computed once at startup; the map is read-only
// afterwards.
type HashFS struct {
	serv   http.Handler
	hashes map[string]string
}

func NewHashFS(fsys fs.FS) (*HashFS, error) {
	h := &HashFS{
		serv:   http.FileServer(http.FS(fsys)),
		hashes: make(map[string]string),
	}

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		f, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		hash := sha256.New()
		if _, err := io.Copy(hash, f); err != nil {
			return err
		}
		h.hashes[path] = fmt.Sprintf("%x", hash.Sum(nil))
		return nil
	})

	return h, err
}

func (h *HashFS) GetHash(path string) string {
	return h.hashes[path]
}

// FormatWithHash turns a static asset path into its cache-busted URL.
func (h *HashFS) FormatWithHash(path string) string {
	hash := h.GetHash(path)
	if hash != "" {
		return fmt.Sprintf("/static/%s?hash=%s", path, hash)
	}
	return "/static/" + path
}

func (h *HashFS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	hash := r.URL.Query().Get("hash")
	if hash != "" && hash == h.GetHash(r.URL.Path) {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	}
	h.serv.ServeHTTP(w, r)
}
