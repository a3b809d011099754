// Package memory is a process-local session store used when no database is
// configured, and by service tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"siteintel/internal/domain"
)

type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
	now      func() time.Time
	// seq orders sessions created within the same clock tick.
	seq   int64
	order map[string]int64
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string][]byte),
		order:    make(map[string]int64),
		now:      time.Now,
	}
}

// Sessions are held as JSON so callers never share state with the store.
func (s *SessionStore) load(id string) (domain.AnalysisSession, bool) {
	b, ok := s.sessions[id]
	if !ok {
		return domain.AnalysisSession{}, false
	}
	var sess domain.AnalysisSession
	if err := json.Unmarshal(b, &sess); err != nil {
		return domain.AnalysisSession{}, false
	}
	return sess, true
}

func (s *SessionStore) save(sess domain.AnalysisSession) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("%w: encode session: %v", domain.ErrPersistenceUnavailable, err)
	}
	s.sessions[sess.ID] = b
	return nil
}

func (s *SessionStore) Ping(context.Context) error { return nil }

func (s *SessionStore) Get(_ context.Context, id string) (domain.AnalysisSession, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.load(id)
	return sess, ok, nil
}

func (s *SessionStore) GetLatest(ctx context.Context, userID string) (domain.AnalysisSession, bool, error) {
	list, _ := s.ListByUser(ctx, userID, 1)
	if len(list) == 0 {
		return domain.AnalysisSession{}, false, nil
	}
	return list[0], true, nil
}

func (s *SessionStore) Insert(_ context.Context, sess domain.AnalysisSession) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	if sess.State == "" {
		sess.State = domain.StateCreated
	}
	now := s.now().UTC()
	sess.CreatedAt, sess.UpdatedAt = now, now
	if err := s.save(sess); err != nil {
		return "", err
	}
	s.seq++
	s.order[sess.ID] = s.seq
	return sess.ID, nil
}

func (s *SessionStore) Update(_ context.Context, id string, upd domain.SessionUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.load(id)
	if !ok {
		return fmt.Errorf("%w: session %s", domain.ErrNotFound, id)
	}
	if upd.State != nil {
		sess.State = *upd.State
	}
	if upd.Traffic != nil {
		sess.Traffic = upd.Traffic
	}
	if upd.TechStacks != nil {
		sess.TechStacks = upd.TechStacks
	}
	sess.Chat = append(sess.Chat, upd.AppendChat...)
	sess.UpdatedAt = s.now().UTC()
	return s.save(sess)
}

func (s *SessionStore) Delete(_ context.Context, id, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.load(id)
	if !ok || sess.UserID != userID {
		return false, nil
	}
	delete(s.sessions, id)
	delete(s.order, id)
	return true, nil
}

// ListByUser returns the user's sessions newest first.
func (s *SessionStore) ListByUser(_ context.Context, userID string, limit int) ([]domain.AnalysisSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.AnalysisSession{}
	for id := range s.sessions {
		sess, ok := s.load(id)
		if ok && sess.UserID == userID {
			out = append(out, sess)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return s.order[out[i].ID] > s.order[out[j].ID]
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
