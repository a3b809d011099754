// Package history exposes a user's stored analysis sessions.
package history

import (
	"context"
	"fmt"
	"sort"

	"siteintel/internal/domain"
	"siteintel/internal/logger"
	"siteintel/internal/ports"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type Service struct {
	sessions ports.SessionRepository
	log      logger.Logger
}

func New(sessions ports.SessionRepository, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{sessions: sessions, log: log.With(logger.String("service", "history"))}
}

// GetHistory lists the user's sessions newest first. Reads degrade to an
// empty list when the store is unavailable.
func (s *Service) GetHistory(ctx context.Context, userID string, limit int) []domain.AnalysisSession {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	list, err := s.sessions.ListByUser(ctx, userID, limit)
	if err != nil {
		s.log.Warn("history lookup failed", logger.String("user_id", userID), logger.Error(err))
		return []domain.AnalysisSession{}
	}
	return list
}

func (s *Service) GetSession(ctx context.Context, id string) (domain.AnalysisSession, error) {
	sess, found, err := s.sessions.Get(ctx, id)
	if err != nil {
		s.log.Warn("session lookup failed", logger.String("session_id", id), logger.Error(err))
		found = false
	}
	if !found {
		return domain.AnalysisSession{}, fmt.Errorf("%w: analysis session %s", domain.ErrNotFound, id)
	}
	return sess, nil
}

// DeleteSession removes a session owned by userID. Store failures are
// surfaced since the caller depends on the outcome.
func (s *Service) DeleteSession(ctx context.Context, id, userID string) error {
	if userID == "" {
		return domain.Invalid("user_id is required")
	}
	ok, err := s.sessions.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: analysis session not found or access denied", domain.ErrNotFound)
	}
	s.log.Info("session deleted", logger.String("session_id", id), logger.String("user_id", userID))
	return nil
}

// GetUserDomains returns the distinct domains across the user's history,
// sorted.
func (s *Service) GetUserDomains(ctx context.Context, userID string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, sess := range s.GetHistory(ctx, userID, MaxLimit) {
		for _, d := range sess.Domains {
			if !seen[d] {
				seen[d] = true
				out = append(out, d)
			}
		}
	}
	sort.Strings(out)
	return out
}
