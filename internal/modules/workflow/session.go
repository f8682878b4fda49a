package workflow

import (
	"errors"
	"strings"
	"sync"

	"github.com/cloudgen/core/internal/modules/article"
	"github.com/google/uuid"
)

var (
	// ErrTopicRequired rejects a submit with an empty trimmed topic.
	ErrTopicRequired = errors.New("topic is required")
	// ErrBusy rejects a transition while the same flow is already in flight.
	ErrBusy = errors.New("operation already in flight")
	// ErrNoArticle rejects image/download flows before any article exists.
	ErrNoArticle = errors.New("no article in session")
	// ErrNoImage rejects a download before an image URL is present.
	ErrNoImage = errors.New("no image in session")
)

// Session holds the single in-progress article for one UI session: one
// record-or-absent, the submitted topic, and three independent in-flight
// flags. The record carries a version that increments on every wholesale
// replacement; image completions for a stale version are discarded instead
// of silently mutating the wrong record.
type Session struct {
	mu sync.Mutex

	ID      string
	topic   string
	record  *article.Record
	version uint64

	generatingContent bool
	generatingImage   bool
	downloading       bool
}

func newSession() *Session {
	return &Session{ID: uuid.NewString()}
}

// View is a consistent snapshot of session state.
type View struct {
	ID                string          `json:"sessionId"`
	Topic             string          `json:"topic"`
	Article           *article.Record `json:"article,omitempty"`
	Version           uint64          `json:"version"`
	GeneratingContent bool            `json:"generatingContent"`
	GeneratingImage   bool            `json:"generatingImage"`
	Downloading       bool            `json:"downloading"`
}

func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		ID:                s.ID,
		Topic:             s.topic,
		Version:           s.version,
		GeneratingContent: s.generatingContent,
		GeneratingImage:   s.generatingImage,
		Downloading:       s.downloading,
	}
	if s.record != nil {
		rec := *s.record
		v.Article = &rec
	}
	return v
}

// BeginContent starts a content generation flow. Guarded by a non-empty
// trimmed topic and no content generation already in flight.
func (s *Session) BeginContent(topic string) error {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return ErrTopicRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generatingContent {
		return ErrBusy
	}
	s.generatingContent = true
	s.topic = topic
	return nil
}

// CompleteContent replaces the record wholesale and bumps the version,
// invalidating any image completion still in flight for the old record.
func (s *Session) CompleteContent(rec article.Record) View {
	s.mu.Lock()
	s.record = &rec
	s.version++
	s.generatingContent = false
	s.mu.Unlock()
	return s.Snapshot()
}

// FailContent clears only the content flag; a previously displayed record
// stays untouched.
func (s *Session) FailContent() {
	s.mu.Lock()
	s.generatingContent = false
	s.mu.Unlock()
}

// BeginImage starts an image generation flow against the current record and
// returns the record's version plus the fields the image prompt needs.
func (s *Session) BeginImage() (version uint64, title, topic string, tags []string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return 0, "", "", nil, ErrNoArticle
	}
	if s.generatingImage {
		return 0, "", "", nil, ErrBusy
	}
	s.generatingImage = true
	return s.version, s.record.Title, s.topic, s.record.Tags, nil
}

// CompleteImage mutates only the image URL, and only when the record the
// flow started against is still current. A stale completion is dropped.
func (s *Session) CompleteImage(version uint64, imageURL string) (applied bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generatingImage = false
	if s.record == nil || s.version != version {
		return false
	}
	s.record.ImageURL = imageURL
	return true
}

func (s *Session) FailImage() {
	s.mu.Lock()
	s.generatingImage = false
	s.mu.Unlock()
}

// BeginDownload starts a download of the current record's image.
func (s *Session) BeginDownload() (imageURL, title string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return "", "", ErrNoArticle
	}
	if s.record.ImageURL == "" {
		return "", "", ErrNoImage
	}
	if s.downloading {
		return "", "", ErrBusy
	}
	s.downloading = true
	return s.record.ImageURL, s.record.Title, nil
}

// EndDownload clears the download flag after success or failure.
func (s *Session) EndDownload() {
	s.mu.Lock()
	s.downloading = false
	s.mu.Unlock()
}

// Store keeps sessions in memory for the process lifetime. Nothing is
// persisted; a restart discards all sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (st *Store) Create() *Session {
	s := newSession()
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}
