// Package session keeps per-visitor gallery state in memory for the web
// front end.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/salan223/portfolio/internal/gallery"
)

// Session is one visitor's gallery and the key dispatcher its lightbox
// binds to. Access goes through Do, which serialises a visitor's events.
type Session struct {
	ID string

	mu       sync.Mutex
	gallery  *gallery.Gallery
	keys     *gallery.Dispatcher
	lastSeen time.Time
}

// Do runs fn with exclusive access to the session's gallery.
func (s *Session) Do(fn func(g *gallery.Gallery, keys *gallery.Dispatcher)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.gallery, s.keys)
}

func (s *Session) teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gallery.Teardown()
}

// Store holds sessions until they have been idle longer than the TTL.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	catalog  []gallery.Photo
	ttl      time.Duration
	now      func() time.Time
}

// NewStore returns a store whose sessions browse catalog.
func NewStore(catalog []gallery.Photo, ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		catalog:  catalog,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the session with id, refreshing its idle timer.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastSeen = s.now()
	return sess, true
}

// Create starts a new session with a fresh gallery.
func (s *Store) Create() *Session {
	keys := gallery.NewDispatcher()
	sess := &Session{
		ID:      uuid.New().String(),
		gallery: gallery.New(s.catalog, keys),
		keys:    keys,
	}

	s.mu.Lock()
	sess.lastSeen = s.now()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	log.Debug().Str("session", sess.ID).Msg("gallery session created")
	return sess
}

// GetOrCreate returns the session with id, or a new one if it is unknown
// or expired. The bool reports whether a new session was created.
func (s *Store) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		if sess, ok := s.Get(id); ok {
			return sess, false
		}
	}
	return s.Create(), true
}

// TTL is how long a session may sit idle before it is pruned.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Prune tears down sessions idle for longer than the TTL and returns how
// many were removed.
func (s *Store) Prune() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	var expired []*Session
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.teardown()
	}
	if len(expired) > 0 {
		log.Debug().Int("count", len(expired)).Msg("expired gallery sessions")
	}
	return len(expired)
}

// Run prunes every interval until ctx is done, then tears down all sessions.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.Close()
			return
		case <-ticker.C:
			s.Prune()
		}
	}
}

// Close tears down every session.
func (s *Store) Close() {
	s.mu.Lock()
	all := make([]*Session, 0, len(s.sessions))
	for id, sess := range s.sessions {
		all = append(all, sess)
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	for _, sess := range all {
		sess.teardown()
	}
}
