// Package output owns persistence of rendered documents: an explicitly
// configured storage root, unguessable file ids, and slugified filenames.
// The renderers themselves never touch the filesystem; callers hand their
// byte buffers here.
package output

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// Store writes and serves rendered documents under a single root directory.
type Store struct {
	root string
}

// New creates a Store rooted at dir, creating the directory if needed.
// An empty dir defaults to a docpress directory under the OS temp root.
func New(dir string) (*Store, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "docpress")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage root: %w", err)
	}
	return &Store{root: dir}, nil
}

// Root returns the storage root directory.
func (s *Store) Root() string {
	return s.root
}

// Entry describes one stored document.
type Entry struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	SizeBytes int64     `json:"size_bytes"`
	Modified  time.Time `json:"modified"`
}

// NewID returns an unguessable 40-character id: 32 hex characters of
// cryptographic randomness plus the first 8 hex characters of a hash over
// the content and current time.
func NewID(content string) string {
	var token [16]byte
	if _, err := rand.Read(token[:]); err != nil {
		panic(err) // crypto/rand is documented never to fail
	}
	sum := sha256.Sum256([]byte(content + time.Now().Format(time.RFC3339Nano)))
	return hex.EncodeToString(token[:]) + hex.EncodeToString(sum[:4])
}

// Slugify converts a title into a safe filename fragment: lowercase,
// alphanumerics and spaces only, hyphen-joined, at most 50 characters.
// Titles that slug to nothing become "document".
func Slugify(title string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(title) {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == ' ' {
			b.WriteRune(ch)
		}
	}
	slug := strings.Join(strings.Fields(b.String()), "-")
	if len(slug) > 50 {
		slug = slug[:50]
	}
	if slug == "" {
		return "document"
	}
	return slug
}

// Save writes data under a fresh id and returns the resulting entry.
func (s *Store) Save(data []byte, ext string) (Entry, error) {
	id := NewID(string(data))
	filename := id + ext
	path := filepath.Join(s.root, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Entry{}, fmt.Errorf("writing %s: %w", path, err)
	}
	return Entry{
		ID:        id,
		Filename:  filename,
		SizeBytes: int64(len(data)),
		Modified:  time.Now().UTC(),
	}, nil
}

// Path resolves a stored filename to its full path. Names that try to step
// outside the root are rejected.
func (s *Store) Path(filename string) (string, error) {
	if filename == "" || filename == "." || filename == ".." || filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	return filepath.Join(s.root, filename), nil
}

// List returns the stored documents, .pdf and .docx entries only.
func (s *Store) List() ([]Entry, error) {
	dirents, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("reading storage root: %w", err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		if d.IsDir() {
			continue
		}
		ext := filepath.Ext(d.Name())
		if ext != ".pdf" && ext != ".docx" {
			continue
		}
		info, err := d.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			ID:        strings.TrimSuffix(d.Name(), ext),
			Filename:  d.Name(),
			SizeBytes: info.Size(),
			Modified:  info.ModTime().UTC(),
		})
	}
	return entries, nil
}
