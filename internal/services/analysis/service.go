// Package analysis runs the two persisted pipeline stages: traffic (stage 1)
// and tech stack (stage 2).
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"siteintel/internal/domain"
	"siteintel/internal/fixtures"
	"siteintel/internal/logger"
	"siteintel/internal/metrics"
	"siteintel/internal/ports"
)

const (
	noteTraffic         = "Step 1 complete: traffic analysis ready. Run the tech stack analysis to continue."
	noteTrafficFallback = "Step 1 complete (with placeholder data): the traffic vendor was unavailable."
)

type TrafficResult struct {
	Profiles  []domain.TrafficProfile
	SessionID string
	Note      string
	Fallback  bool
}

type StackResult struct {
	Profiles  []domain.TechStackProfile
	SessionID string
	Note      string
}

type Service struct {
	sessions ports.SessionRepository
	traffic  ports.TrafficProvider
	stacks   ports.TechStackProvider
	policy   domain.FallbackPolicy
	log      logger.Logger
}

func New(sessions ports.SessionRepository, traffic ports.TrafficProvider, stacks ports.TechStackProvider,
	policy domain.FallbackPolicy, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	if policy == "" {
		policy = domain.PolicyStrict
	}
	return &Service{
		sessions: sessions,
		traffic:  traffic,
		stacks:   stacks,
		policy:   policy,
		log:      log.With(logger.String("service", "analysis")),
	}
}

// StartTrafficAnalysis fetches stage 1 output and records it as a new
// session for the user. Under the strict policy a vendor failure is returned
// and nothing is recorded, so the user's previous session stays the latest
// one; under the placeholder policy fixture profiles are stored instead.
func (s *Service) StartTrafficAnalysis(ctx context.Context, rawDomains []string, userID string) (TrafficResult, error) {
	domains, err := domain.NormalizeDomains(rawDomains)
	if err != nil {
		return TrafficResult{}, err
	}
	if userID = strings.TrimSpace(userID); userID == "" {
		return TrafficResult{}, domain.Invalid("userId is required")
	}
	log := s.log.With(logger.String("user_id", userID), logger.Strings("domains", domains))

	// Vendor jobs outlive a disconnecting caller.
	profiles, err := s.traffic.FetchTraffic(context.WithoutCancel(ctx), domains)
	res := TrafficResult{Note: noteTraffic}
	if err != nil {
		if s.policy != domain.PolicyPlaceholder || errors.Is(err, domain.ErrInputInvalid) {
			log.Warn("traffic analysis failed", logger.Error(err))
			return TrafficResult{}, err
		}
		log.Warn("traffic vendor failed, using placeholder profiles", logger.Error(err))
		metrics.RecordFallback("traffic")
		profiles = fixtures.TrafficProfiles(domains)
		res.Fallback = true
		res.Note = noteTrafficFallback
	}
	res.Profiles = profiles

	sessionID, err := s.sessions.Insert(ctx, domain.AnalysisSession{
		UserID:  userID,
		Domains: domains,
		State:   domain.StateTrafficReady,
		Traffic: profiles,
	})
	if err != nil {
		log.Error("session insert failed, returning unpersisted profiles", logger.Error(err))
		sessionID = ""
	}
	res.SessionID = sessionID

	log.Info("traffic analysis complete", logger.String("session_id", sessionID), logger.Int("profiles", len(profiles)), logger.Bool("fallback", res.Fallback))
	return res, nil
}

// AddTechStackAnalysis runs stage 2 against the user's latest session. With
// no domains in the request the session's own domains are analyzed. Stack
// profiles are joined onto traffic profiles by domain; domains without a
// traffic profile keep a standalone stack entry.
func (s *Service) AddTechStackAnalysis(ctx context.Context, rawDomains []string, userID string) (StackResult, error) {
	var domains []string
	if len(rawDomains) > 0 {
		var err error
		if domains, err = domain.NormalizeDomains(rawDomains); err != nil {
			return StackResult{}, err
		}
	}
	if userID = strings.TrimSpace(userID); userID == "" {
		return StackResult{}, domain.Invalid("userId is required")
	}
	log := s.log.With(logger.String("user_id", userID))

	sess, found, err := s.sessions.GetLatest(ctx, userID)
	if err != nil {
		log.Warn("latest session lookup failed", logger.Error(err))
		return StackResult{}, fmt.Errorf("%w: no traffic analysis found for user (store unavailable)", domain.ErrPreconditionFailed)
	}
	if !found || !sess.State.HasTraffic() {
		return StackResult{}, fmt.Errorf("%w: run the traffic analysis before analyzing the technology stack", domain.ErrPreconditionFailed)
	}
	if len(domains) == 0 {
		domains = sess.Domains
	}
	log = log.With(logger.Strings("domains", domains))

	vendorCtx := context.WithoutCancel(ctx)
	stacks := make([]domain.TechStackProfile, 0, len(domains))
	total := 0
	for _, d := range domains {
		p := s.fetchStack(vendorCtx, d, log)
		total += len(p.Technologies)
		stacks = append(stacks, p)
	}

	traffic := attachStacks(sess.Traffic, stacks)
	state := domain.StateStackReady
	if err := s.sessions.Update(ctx, sess.ID, domain.SessionUpdate{State: &state, Traffic: traffic, TechStacks: stacks}); err != nil {
		log.Error("session update failed", logger.String("session_id", sess.ID), logger.Error(err))
	}

	log.Info("tech stack analysis complete", logger.String("session_id", sess.ID), logger.Int("technologies", total))
	return StackResult{
		Profiles:  stacks,
		SessionID: sess.ID,
		Note:      fmt.Sprintf("Step 2 complete: tech stack analysis added. Found %d technologies across %d websites.", total, len(stacks)),
	}, nil
}

// fetchStack isolates one domain's lookup so a misbehaving provider cannot
// abort the batch.
func (s *Service) fetchStack(ctx context.Context, host string, log logger.Logger) (p domain.TechStackProfile) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("tech stack lookup panicked", logger.String("domain", host), logger.String("panic", fmt.Sprint(r)))
			p = emptyStack(host)
		}
	}()
	p = s.stacks.FetchStack(ctx, host)
	if p.Domain == "" {
		p.Domain = host
	}
	if p.Technologies == nil {
		p.Technologies = []domain.Technology{}
	}
	if p.Source == "" {
		p.Source = domain.StackEmpty
	}
	return p
}

func emptyStack(host string) domain.TechStackProfile {
	return domain.TechStackProfile{Domain: host, Technologies: []domain.Technology{}, Source: domain.StackEmpty}
}

// attachStacks returns a copy of traffic with each profile's TechStack set
// from the stack profile for the same domain. Profiles with no matching stack
// keep whatever they had.
func attachStacks(traffic []domain.TrafficProfile, stacks []domain.TechStackProfile) []domain.TrafficProfile {
	byDomain := make(map[string]domain.TechStackProfile, len(stacks))
	for _, st := range stacks {
		byDomain[st.Domain] = st
	}
	out := make([]domain.TrafficProfile, len(traffic))
	for i, t := range traffic {
		if st, ok := byDomain[t.Domain]; ok {
			st := st
			t.TechStack = &st
		}
		out[i] = t
	}
	return out
}
