package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"siteintel/internal/domain"
)

const sessionColumns = `id, user_id, domains, state, traffic_json, stack_json, chat_transcript_json, created_at, updated_at`

// SessionStore persists analysis sessions in analysis_sessions. Stage
// outputs live in JSONB columns so vendor shape changes need no migration.
type SessionStore struct {
	q   Querier
	now func() time.Time
}

func NewSessionStore(q Querier) *SessionStore {
	return &SessionStore{q: q, now: time.Now}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrPersistenceUnavailable, op, err)
}

func (s *SessionStore) Ping(ctx context.Context) error {
	if err := s.q.Ping(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (domain.AnalysisSession, bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.AnalysisSession{}, false, nil
	}
	row := s.q.QueryRow(ctx, `SELECT `+sessionColumns+` FROM analysis_sessions WHERE id = $1`, id)
	return scanOne(row, "get session")
}

func (s *SessionStore) GetLatest(ctx context.Context, userID string) (domain.AnalysisSession, bool, error) {
	row := s.q.QueryRow(ctx, `
		SELECT `+sessionColumns+`
		FROM analysis_sessions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID)
	return scanOne(row, "get latest session")
}

func (s *SessionStore) Insert(ctx context.Context, sess domain.AnalysisSession) (string, error) {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	if sess.State == "" {
		sess.State = domain.StateCreated
	}
	now := s.now().UTC()
	traffic, stacks, chat, err := encodeBlobs(sess.Traffic, sess.TechStacks, sess.Chat)
	if err != nil {
		return "", err
	}
	domains := sess.Domains
	if domains == nil {
		domains = []string{}
	}
	_, err = s.q.Exec(ctx, `
		INSERT INTO analysis_sessions (`+sessionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	`, sess.ID, sess.UserID, domains, string(sess.State), traffic, stacks, chat, now)
	if err != nil {
		return "", unavailable("insert session", err)
	}
	return sess.ID, nil
}

// Update applies the non-nil fields of upd. Chat entries are appended in SQL
// so concurrent appends never overwrite each other.
func (s *SessionStore) Update(ctx context.Context, id string, upd domain.SessionUpdate) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: session %s", domain.ErrNotFound, id)
	}
	var state, traffic, stacks, chat any
	if upd.State != nil {
		state = string(*upd.State)
	}
	if upd.Traffic != nil {
		b, err := json.Marshal(upd.Traffic)
		if err != nil {
			return err
		}
		traffic = b
	}
	if upd.TechStacks != nil {
		b, err := json.Marshal(upd.TechStacks)
		if err != nil {
			return err
		}
		stacks = b
	}
	if len(upd.AppendChat) > 0 {
		b, err := json.Marshal(upd.AppendChat)
		if err != nil {
			return err
		}
		chat = b
	}
	tag, err := s.q.Exec(ctx, `
		UPDATE analysis_sessions SET
			state = COALESCE($2, state),
			traffic_json = COALESCE($3::jsonb, traffic_json),
			stack_json = COALESCE($4::jsonb, stack_json),
			chat_transcript_json = chat_transcript_json || COALESCE($5::jsonb, '[]'::jsonb),
			updated_at = $6
		WHERE id = $1
	`, id, state, traffic, stacks, chat, s.now().UTC())
	if err != nil {
		return unavailable("update session", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: session %s", domain.ErrNotFound, id)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, id, userID string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	tag, err := s.q.Exec(ctx, `DELETE FROM analysis_sessions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, unavailable("delete session", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *SessionStore) ListByUser(ctx context.Context, userID string, limit int) ([]domain.AnalysisSession, error) {
	rows, err := s.q.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM analysis_sessions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, unavailable("list sessions", err)
	}
	defer rows.Close()

	out := []domain.AnalysisSession{}
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, unavailable("list sessions", err)
		}
		out = append(out, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("list sessions", err)
	}
	return out, nil
}

func scanOne(row pgx.Row, op string) (domain.AnalysisSession, bool, error) {
	sess, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.AnalysisSession{}, false, nil
	}
	if err != nil {
		return domain.AnalysisSession{}, false, unavailable(op, err)
	}
	return sess, true, nil
}

func scanSession(row pgx.Row) (domain.AnalysisSession, error) {
	var (
		sess                  domain.AnalysisSession
		state                 string
		traffic, stacks, chat []byte
	)
	if err := row.Scan(&sess.ID, &sess.UserID, &sess.Domains, &state, &traffic, &stacks, &chat, &sess.CreatedAt, &sess.UpdatedAt); err != nil {
		return domain.AnalysisSession{}, err
	}
	sess.State = domain.SessionState(state)
	if err := decodeBlob(traffic, &sess.Traffic); err != nil {
		return domain.AnalysisSession{}, fmt.Errorf("traffic_json: %w", err)
	}
	if err := decodeBlob(stacks, &sess.TechStacks); err != nil {
		return domain.AnalysisSession{}, fmt.Errorf("stack_json: %w", err)
	}
	if err := decodeBlob(chat, &sess.Chat); err != nil {
		return domain.AnalysisSession{}, fmt.Errorf("chat_transcript_json: %w", err)
	}
	return sess, nil
}

func decodeBlob(b []byte, dst any) error {
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, dst)
}

func encodeBlobs(traffic []domain.TrafficProfile, stacks []domain.TechStackProfile, chat []domain.ChatEntry) (t, s, c []byte, err error) {
	if traffic == nil {
		traffic = []domain.TrafficProfile{}
	}
	if stacks == nil {
		stacks = []domain.TechStackProfile{}
	}
	if chat == nil {
		chat = []domain.ChatEntry{}
	}
	if t, err = json.Marshal(traffic); err != nil {
		return nil, nil, nil, err
	}
	if s, err = json.Marshal(stacks); err != nil {
		return nil, nil, nil, err
	}
	if c, err = json.Marshal(chat); err != nil {
		return nil, nil, nil, err
	}
	return t, s, c, nil
}
