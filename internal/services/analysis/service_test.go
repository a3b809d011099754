package analysis

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteintel/internal/adapters/memory"
	"siteintel/internal/domain"
	"siteintel/internal/logger"
	"siteintel/internal/normalize"
)

type fakeTraffic struct {
	err   error
	calls int
}

func (f *fakeTraffic) FetchTraffic(_ context.Context, domains []string) ([]domain.TrafficProfile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.TrafficProfile, 0, len(domains))
	for i, d := range domains {
		out = append(out, domain.TrafficProfile{Domain: d, Name: d, GlobalRank: 100 + i, BounceRate: 0.4})
	}
	return out, nil
}

type fakeStacks struct {
	panicFor string
	seen     []string
}

func (f *fakeStacks) FetchStack(_ context.Context, host string) domain.TechStackProfile {
	f.seen = append(f.seen, host)
	if host == f.panicFor {
		panic("boom")
	}
	return domain.TechStackProfile{
		Domain:       host,
		Technologies: []domain.Technology{{Name: "React", Tag: "JavaScript Frameworks"}, {Name: "nginx", Tag: "Web Servers"}},
		Source:       domain.StackFromVendor,
	}
}

type brokenStore struct{ *memory.SessionStore }

func (brokenStore) Insert(context.Context, domain.AnalysisSession) (string, error) {
	return "", fmt.Errorf("%w: down", domain.ErrPersistenceUnavailable)
}

func (brokenStore) GetLatest(context.Context, string) (domain.AnalysisSession, bool, error) {
	return domain.AnalysisSession{}, false, fmt.Errorf("%w: down", domain.ErrPersistenceUnavailable)
}

func newService(traffic *fakeTraffic, stacks *fakeStacks, policy domain.FallbackPolicy) (*Service, *memory.SessionStore) {
	store := memory.NewSessionStore()
	return New(store, traffic, stacks, policy, logger.NewNop()), store
}

func TestTrafficThenStackOnKnownDomain(t *testing.T) {
	svc, store := newService(&fakeTraffic{}, &fakeStacks{}, domain.PolicyStrict)
	ctx := context.Background()

	tr, err := svc.StartTrafficAnalysis(ctx, []string{"known-vendor-domain.com"}, "u1")
	require.NoError(t, err)
	require.Len(t, tr.Profiles, 1)
	assert.False(t, tr.Fallback)
	require.NotEmpty(t, tr.SessionID)

	sess, _, _ := store.Get(ctx, tr.SessionID)
	assert.Equal(t, domain.StateTrafficReady, sess.State)

	st, err := svc.AddTechStackAnalysis(ctx, []string{"known-vendor-domain.com"}, "u1")
	require.NoError(t, err)
	require.Len(t, st.Profiles, 1)
	n := len(st.Profiles[0].Technologies)
	assert.True(t, n >= 1 && n <= normalize.MaxTechnologies)
	assert.Equal(t, tr.SessionID, st.SessionID)
	assert.Contains(t, st.Note, "Found 2 technologies across 1 websites")

	sess, _, _ = store.Get(ctx, tr.SessionID)
	assert.Equal(t, domain.StateStackReady, sess.State)
	require.Len(t, sess.TechStacks, 1)
	require.NotNil(t, sess.Traffic[0].TechStack)
	assert.Equal(t, "React", sess.Traffic[0].TechStack.Technologies[0].Name)
}

func TestStackRequiresTrafficSession(t *testing.T) {
	stacks := &fakeStacks{}
	svc, _ := newService(&fakeTraffic{}, stacks, domain.PolicyPlaceholder)

	_, err := svc.AddTechStackAnalysis(context.Background(), []string{"github.com"}, "never-ran-stage-1")
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
	assert.Empty(t, stacks.seen)
}

func TestFailedStageOneKeepsPreviousSession(t *testing.T) {
	traffic := &fakeTraffic{}
	svc, store := newService(traffic, &fakeStacks{}, domain.PolicyStrict)
	ctx := context.Background()

	first, err := svc.StartTrafficAnalysis(ctx, []string{"github.com"}, "u1")
	require.NoError(t, err)

	traffic.err = fmt.Errorf("%w: apify down", domain.ErrVendorUnavailable)
	_, err = svc.StartTrafficAnalysis(ctx, []string{"medium.com"}, "u1")
	require.ErrorIs(t, err, domain.ErrVendorUnavailable)

	history, err := store.ListByUser(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, first.SessionID, history[0].ID)

	st, err := svc.AddTechStackAnalysis(ctx, []string{"github.com"}, "u1")
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, st.SessionID)
}

func TestStrictPolicySurfacesVendorError(t *testing.T) {
	traffic := &fakeTraffic{err: fmt.Errorf("%w: apify down", domain.ErrVendorUnavailable)}
	svc, store := newService(traffic, &fakeStacks{}, domain.PolicyStrict)
	ctx := context.Background()

	_, err := svc.StartTrafficAnalysis(ctx, []string{"github.com"}, "u1")
	assert.ErrorIs(t, err, domain.ErrVendorUnavailable)

	_, found, err := store.GetLatest(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, found)

	_, err = svc.AddTechStackAnalysis(ctx, []string{"github.com"}, "u1")
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
}

func TestPlaceholderPolicyAdvances(t *testing.T) {
	traffic := &fakeTraffic{err: fmt.Errorf("%w: apify down", domain.ErrVendorTimeout)}
	svc, store := newService(traffic, &fakeStacks{}, domain.PolicyPlaceholder)
	ctx := context.Background()

	res, err := svc.StartTrafficAnalysis(ctx, []string{"linkedin.com", "unknown.example.org"}, "u1")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	require.Len(t, res.Profiles, 2)
	assert.Equal(t, "linkedin.com", res.Profiles[0].Domain)
	assert.Equal(t, "unknown.example.org", res.Profiles[1].Domain)
	for _, p := range res.Profiles {
		assert.True(t, p.BounceRate >= 0 && p.BounceRate <= 1)
	}

	sess, _, _ := store.Get(ctx, res.SessionID)
	assert.Equal(t, domain.StateTrafficReady, sess.State)
}

func TestInputValidatedBeforeVendorCalls(t *testing.T) {
	traffic := &fakeTraffic{}
	svc, _ := newService(traffic, &fakeStacks{}, domain.PolicyStrict)
	ctx := context.Background()

	_, err := svc.StartTrafficAnalysis(ctx, nil, "u1")
	assert.ErrorIs(t, err, domain.ErrInputInvalid)
	_, err = svc.StartTrafficAnalysis(ctx, []string{"github.com"}, " ")
	assert.ErrorIs(t, err, domain.ErrInputInvalid)
	_, err = svc.StartTrafficAnalysis(ctx, []string{"not a domain"}, "u1")
	assert.ErrorIs(t, err, domain.ErrInputInvalid)
	assert.Zero(t, traffic.calls)
}

func TestDuplicatesKeptAndNormalized(t *testing.T) {
	svc, _ := newService(&fakeTraffic{}, &fakeStacks{}, domain.PolicyStrict)
	res, err := svc.StartTrafficAnalysis(context.Background(), []string{"https://www.GitHub.com/about", "github.com"}, "u1")
	require.NoError(t, err)
	require.Len(t, res.Profiles, 2)
	assert.Equal(t, "github.com", res.Profiles[0].Domain)
	assert.Equal(t, "github.com", res.Profiles[1].Domain)
}

func TestStackPanicBecomesEmptyProfile(t *testing.T) {
	stacks := &fakeStacks{panicFor: "medium.com"}
	svc, _ := newService(&fakeTraffic{}, stacks, domain.PolicyStrict)
	ctx := context.Background()

	_, err := svc.StartTrafficAnalysis(ctx, []string{"github.com", "medium.com"}, "u1")
	require.NoError(t, err)

	st, err := svc.AddTechStackAnalysis(ctx, []string{"github.com", "medium.com"}, "u1")
	require.NoError(t, err)
	require.Len(t, st.Profiles, 2)
	assert.Len(t, st.Profiles[0].Technologies, 2)
	assert.Empty(t, st.Profiles[1].Technologies)
	assert.Equal(t, domain.StackEmpty, st.Profiles[1].Source)
	assert.Equal(t, []string{"github.com", "medium.com"}, stacks.seen)
}

func TestStackJoinIsKeyedNotPositional(t *testing.T) {
	svc, store := newService(&fakeTraffic{}, &fakeStacks{}, domain.PolicyStrict)
	ctx := context.Background()

	tr, err := svc.StartTrafficAnalysis(ctx, []string{"github.com", "medium.com"}, "u1")
	require.NoError(t, err)

	// stage 2 in reverse order, and for only one of the domains
	_, err = svc.AddTechStackAnalysis(ctx, []string{"medium.com"}, "u1")
	require.NoError(t, err)

	sess, _, _ := store.Get(ctx, tr.SessionID)
	assert.Nil(t, sess.Traffic[0].TechStack)
	require.NotNil(t, sess.Traffic[1].TechStack)
	assert.Equal(t, "medium.com", sess.Traffic[1].TechStack.Domain)
}

func TestStackDefaultsToSessionDomains(t *testing.T) {
	stacks := &fakeStacks{}
	svc, store := newService(&fakeTraffic{}, stacks, domain.PolicyStrict)
	ctx := context.Background()

	tr, err := svc.StartTrafficAnalysis(ctx, []string{"github.com", "medium.com"}, "u1")
	require.NoError(t, err)

	st, err := svc.AddTechStackAnalysis(ctx, nil, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"github.com", "medium.com"}, stacks.seen)
	assert.Len(t, st.Profiles, 2)

	sess, _, _ := store.Get(ctx, tr.SessionID)
	for _, p := range sess.Traffic {
		assert.NotNil(t, p.TechStack)
	}
}

func TestStoreOutageDoesNotFailStageOne(t *testing.T) {
	store := brokenStore{memory.NewSessionStore()}
	svc := New(store, &fakeTraffic{}, &fakeStacks{}, domain.PolicyStrict, nil)

	res, err := svc.StartTrafficAnalysis(context.Background(), []string{"github.com"}, "u1")
	require.NoError(t, err)
	assert.Empty(t, res.SessionID)
	assert.Len(t, res.Profiles, 1)

	_, err = svc.AddTechStackAnalysis(context.Background(), []string{"github.com"}, "u1")
	assert.True(t, errors.Is(err, domain.ErrPreconditionFailed))
}
