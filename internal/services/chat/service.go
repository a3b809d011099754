// Package chat answers analyst questions about a session's analysis data.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"siteintel/internal/domain"
	"siteintel/internal/logger"
	"siteintel/internal/metrics"
	"siteintel/internal/ports"
)

const maxSuggestions = 3

const systemPreamble = `You are an expert web analytics and technology stack analyst. You have access to comprehensive data about websites including traffic analytics, technology stacks, and competitive landscape.

Based on the following analysis data:
%s

Provide insightful, actionable answers to user questions about:
- Website traffic patterns and sources
- Technology stack analysis and recommendations
- Competitive positioning and opportunities
- Growth strategies and optimization suggestions

Keep responses conversational but professional, and always back up insights with specific data points from the analysis.`

type Request struct {
	Message   string
	SessionID string
	// Inline is used when SessionID is empty or does not resolve.
	Inline Context
}

type Response struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
	SessionID   string   `json:"session_id,omitempty"`
}

type Service struct {
	sessions ports.SessionRepository
	llm      ports.ChatCompleter
	log      logger.Logger
	now      func() time.Time
}

func New(sessions ports.SessionRepository, llm ports.ChatCompleter, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{sessions: sessions, llm: llm, log: log.With(logger.String("service", "chat")), now: time.Now}
}

// Answer never fails. Model errors produce a canned reply, and a transcript
// write failure is only logged.
func (s *Service) Answer(ctx context.Context, req Request) Response {
	message := strings.TrimSpace(req.Message)
	cctx, sessionID := s.resolve(ctx, req)

	var resp Response
	if message == "" {
		resp = canned("")
	} else {
		prompt := fmt.Sprintf(systemPreamble, BuildContext(cctx))
		text, err := s.llm.Complete(context.WithoutCancel(ctx), prompt, message)
		if err != nil {
			s.log.Warn("chat completion failed, using canned reply", logger.Error(err))
			metrics.RecordFallback("chat")
			resp = canned(message)
		} else {
			resp = Response{Response: text, Suggestions: Suggestions(message)}
		}
	}
	resp.SessionID = sessionID

	if sessionID != "" {
		entry := domain.ChatEntry{Timestamp: s.now().UTC(), Message: message, Response: resp.Response}
		if err := s.sessions.Update(ctx, sessionID, domain.SessionUpdate{AppendChat: []domain.ChatEntry{entry}}); err != nil {
			s.log.Warn("chat transcript append failed", logger.String("session_id", sessionID), logger.Error(err))
		}
	}
	return resp
}

func (s *Service) resolve(ctx context.Context, req Request) (Context, string) {
	if req.SessionID == "" {
		return req.Inline, ""
	}
	sess, found, err := s.sessions.Get(ctx, req.SessionID)
	if err != nil {
		s.log.Warn("session lookup failed, using inline data", logger.String("session_id", req.SessionID), logger.Error(err))
		return req.Inline, ""
	}
	if !found {
		return req.Inline, ""
	}
	// A session without stage output still records the exchange, but the
	// caller's inline data is the better context.
	stored := Context{Profiles: sess.Traffic, Stacks: sess.TechStacks}
	if stored.Empty() {
		return req.Inline, sess.ID
	}
	return stored, sess.ID
}

var (
	trafficSuggestions = []string{
		"What are the best channels for traffic growth?",
		"How can I reduce my bounce rate?",
		"What countries should I target for expansion?",
		"How effective is my current SEO strategy?",
	}
	techSuggestions = []string{
		"What modern frameworks should I adopt?",
		"How can I improve my website performance?",
		"What analytics tools do competitors use?",
		"Should I migrate to a different tech stack?",
	}
	competitorSuggestions = []string{
		"Who are my biggest competitive threats?",
		"What do top competitors do differently?",
		"How can I differentiate from competitors?",
		"What market gaps can I exploit?",
	}
	defaultSuggestions = []string{
		"How can I improve my website's traffic sources?",
		"What technologies should I consider implementing?",
		"How do I compare to my top competitors?",
		"What are the growth opportunities in my market?",
	}
	fallbackSuggestions = []string{
		"How can I improve my conversion rate?",
		"What are the latest industry trends?",
		"Show me detailed competitor analysis",
	}
)

// Suggestions picks follow-up questions by substring match on the message.
func Suggestions(message string) []string {
	m := strings.ToLower(message)
	list := defaultSuggestions
	switch {
	case strings.Contains(m, "traffic"):
		list = trafficSuggestions
	case strings.Contains(m, "technology"), strings.Contains(m, "tech"):
		list = techSuggestions
	case strings.Contains(m, "competitor"):
		list = competitorSuggestions
	}
	return append([]string(nil), list[:maxSuggestions]...)
}

var cannedReplies = []struct {
	key, text string
}{
	{"traffic", "Based on the analysis, strong direct traffic points to good brand recognition. There is room to grow organic search traffic through better SEO, so focus on content marketing and technical SEO improvements to capture more organic visitors."},
	{"technology", "The current stack uses established, modern choices. Keeping dependencies up to date and adding caching in front of heavy pages are the quickest ways to improve performance and security."},
	{"competitor", "Compared to its main competitors the site performs well on engagement metrics, but larger competitors still lead on traffic volume. Content strategy and user acquisition are the levers to close that gap."},
}

const defaultReply = "I can help you analyze website performance, technology stacks, and competitive positioning. What specific area would you like to explore further?"

func canned(message string) Response {
	m := strings.ToLower(message)
	text := defaultReply
	for _, r := range cannedReplies {
		if strings.Contains(m, r.key) {
			text = r.text
			break
		}
	}
	return Response{Response: text, Suggestions: append([]string(nil), fallbackSuggestions...)}
}
