package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteintel/internal/domain"
)

var columns = []string{"id", "user_id", "domains", "state", "traffic_json", "stack_json", "chat_transcript_json", "created_at", "updated_at"}

const sessionID = "7d1c5a8e-3a4b-4f7e-9c1d-2b3a4c5d6e7f"

func newStore(t *testing.T) (*SessionStore, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	s := NewSessionStore(mock)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return s, mock
}

func TestGetDecodesBlobs(t *testing.T) {
	s, mock := newStore(t)
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .* FROM analysis_sessions WHERE id = \\$1").
		WithArgs(sessionID).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(
			sessionID, "u1", []string{"github.com"}, "TRAFFIC_READY",
			[]byte(`[{"domain":"github.com","name":"GitHub","globalRank":64,"bounceRate":0.28}]`),
			[]byte(`[]`),
			[]byte(`[{"timestamp":"2024-05-01T09:30:00Z","message":"hi","response":"hello"}]`),
			created, created,
		))

	got, found, err := s.Get(context.Background(), sessionID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.StateTrafficReady, got.State)
	assert.Equal(t, []string{"github.com"}, got.Domains)
	require.Len(t, got.Traffic, 1)
	assert.Equal(t, 64, got.Traffic[0].GlobalRank)
	require.Len(t, got.Chat, 1)
	assert.Equal(t, "hello", got.Chat[0].Response)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMissing(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectQuery("SELECT .* FROM analysis_sessions").
		WithArgs(sessionID).
		WillReturnError(pgx.ErrNoRows)

	_, found, err := s.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.False(t, found)

	// malformed ids never reach the database
	_, found, err = s.Get(context.Background(), "not-a-uuid")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestDriverError(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectQuery("ORDER BY created_at DESC").
		WithArgs("u1").
		WillReturnError(errors.New("connection refused"))

	_, _, err := s.GetLatest(context.Background(), "u1")
	assert.ErrorIs(t, err, domain.ErrPersistenceUnavailable)
}

func TestInsert(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectExec("INSERT INTO analysis_sessions").
		WithArgs(pgxmock.AnyArg(), "u1", []string{"salla.com"}, "CREATED", []byte(`[]`), []byte(`[]`), []byte(`[]`), s.now().UTC()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	id, err := s.Insert(context.Background(), domain.AnalysisSession{UserID: "u1", Domains: []string{"salla.com"}})
	require.NoError(t, err)
	assert.Len(t, id, 36)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAppendsChatInSQL(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectExec("chat_transcript_json = chat_transcript_json \\|\\|").
		WithArgs(sessionID, nil, nil, nil, pgxmock.AnyArg(), s.now().UTC()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := s.Update(context.Background(), sessionID, domain.SessionUpdate{
		AppendChat: []domain.ChatEntry{{Message: "hi", Response: "hello"}},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStateAndTraffic(t *testing.T) {
	s, mock := newStore(t)
	state := domain.StateTrafficReady
	mock.ExpectExec("UPDATE analysis_sessions SET").
		WithArgs(sessionID, "TRAFFIC_READY", pgxmock.AnyArg(), nil, nil, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := s.Update(context.Background(), sessionID, domain.SessionUpdate{
		State:   &state,
		Traffic: []domain.TrafficProfile{{Domain: "github.com", GlobalRank: 64}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteChecksOwner(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectExec("DELETE FROM analysis_sessions").
		WithArgs(sessionID, "u1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM analysis_sessions").
		WithArgs(sessionID, "intruder").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	ok, err := s.Delete(context.Background(), sessionID, "u1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Delete(context.Background(), sessionID, "intruder")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser(t *testing.T) {
	s, mock := newStore(t)
	newer := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-24 * time.Hour)
	mock.ExpectQuery("WHERE user_id = \\$1").
		WithArgs("u1", 50).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("11111111-1111-1111-1111-111111111111", "u1", []string{"a.com"}, "STACK_READY", []byte(`[]`), []byte(`[]`), []byte(`[]`), newer, newer).
			AddRow("22222222-2222-2222-2222-222222222222", "u1", []string{"b.com"}, "CREATED", []byte(`[]`), []byte(`[]`), []byte(`[]`), older, older))

	got, err := s.ListByUser(context.Background(), "u1", 50)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.StateStackReady, got[0].State)
	assert.Equal(t, []string{"b.com"}, got[1].Domains)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	mock.ExpectPing().WillReturnError(errors.New("down"))

	s := NewSessionStore(mock)
	assert.ErrorIs(t, s.Ping(context.Background()), domain.ErrPersistenceUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}
