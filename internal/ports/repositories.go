package ports

import (
	"context"

	"siteintel/internal/domain"
)

// SessionRepository persists analysis sessions. Implementations wrap driver
// failures as domain.ErrPersistenceUnavailable; absent rows are reported with
// found=false rather than an error.
type SessionRepository interface {
	Get(ctx context.Context, id string) (session domain.AnalysisSession, found bool, err error)
	GetLatest(ctx context.Context, userID string) (session domain.AnalysisSession, found bool, err error)
	Insert(ctx context.Context, session domain.AnalysisSession) (id string, err error)
	Update(ctx context.Context, id string, upd domain.SessionUpdate) error
	// Delete removes the session only when it belongs to userID.
	Delete(ctx context.Context, id, userID string) (deleted bool, err error)
	// ListByUser returns sessions newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.AnalysisSession, error)
	Ping(ctx context.Context) error
}
