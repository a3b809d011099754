// Package httpadapter serves the generated api contract over a chi router.
package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"siteintel/internal/api"
	"siteintel/internal/domain"
	"siteintel/internal/logger"
	"siteintel/internal/metrics"
	"siteintel/internal/ports"
	"siteintel/internal/services/analysis"
	"siteintel/internal/services/chat"
	"siteintel/internal/services/keywords"
)

const maxRequestBody = 1 << 20

type Analysis interface {
	StartTrafficAnalysis(ctx context.Context, domains []string, userID string) (analysis.TrafficResult, error)
	AddTechStackAnalysis(ctx context.Context, domains []string, userID string) (analysis.StackResult, error)
}

type Chat interface {
	Answer(ctx context.Context, req chat.Request) chat.Response
}

type Trends interface {
	GetTrends(ctx context.Context, keywords []string, timeframe, geography string) (domain.TrendsSummary, error)
	Compare(ctx context.Context, keywords []string, timeframe string) (domain.TrendsSummary, error)
	VisualReport(ctx context.Context, query, timeframe, geography string) (domain.TrendsReport, error)
}

type Keywords interface {
	SearchVolume(ctx context.Context, keywords []string, language, location string) ([]domain.KeywordVolume, error)
	KeywordsForSite(ctx context.Context, target, targetType, language, location string) ([]domain.KeywordVolume, error)
	KeywordsForKeywords(ctx context.Context, seeds []string, language, location string) ([]domain.KeywordVolume, error)
	AdTraffic(ctx context.Context, req keywords.AdTrafficRequest) ([]domain.AdTrafficEstimate, error)
}

type History interface {
	GetHistory(ctx context.Context, userID string, limit int) []domain.AnalysisSession
	GetSession(ctx context.Context, id string) (domain.AnalysisSession, error)
	DeleteSession(ctx context.Context, id, userID string) error
	GetUserDomains(ctx context.Context, userID string) []string
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Analysis    Analysis
	Chat        Chat
	Trends      Trends
	Keywords    Keywords
	History     History
	Store       Pinger
	StoreKind   string
	Vendors     map[string]ports.Configured
	CORSOrigins []string
	Version     string
	Log         logger.Logger
}

// Server implements api.StrictServerInterface.
type Server struct {
	deps Deps
	log  logger.Logger
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(deps Deps) *Server {
	log := deps.Log
	if log == nil {
		log = logger.NewNop()
	}
	return &Server{deps: deps, log: log.With(logger.String("component", "http"))}
}

// Routes returns the fully wired router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors(s.deps.CORSOrigins))
	r.Use(middleware.RequestSize(maxRequestBody))

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{BaseRouter: r, ErrorHandlerFunc: s.requestError})
	return r
}

func (s *Server) GetServiceInfo(_ context.Context, _ api.GetServiceInfoRequestObject) (api.GetServiceInfoResponseObject, error) {
	return api.GetServiceInfo200JSONResponse{Service: "siteintel", Version: s.deps.Version, Status: "running"}, nil
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	vendors := make(map[string]bool, len(s.deps.Vendors))
	for name, v := range s.deps.Vendors {
		vendors[name] = v.Configured()
	}
	store := api.StoreHealth{Kind: s.deps.StoreKind, Ok: true}
	if s.deps.Store != nil {
		if err := s.deps.Store.Ping(ctx); err != nil {
			msg := err.Error()
			store.Ok, store.Error = false, &msg
		}
	}
	// Degraded vendors and stores never fail liveness.
	return api.GetHealthz200JSONResponse{Status: "healthy", Services: vendors, Store: store}, nil
}

func (s *Server) AnalyzeTraffic(ctx context.Context, req api.AnalyzeTrafficRequestObject) (api.AnalyzeTrafficResponseObject, error) {
	res, err := s.deps.Analysis.StartTrafficAnalysis(ctx, req.Body.Websites, value(req.Body.UserId))
	if err != nil {
		return nil, err
	}
	return api.AnalyzeTraffic200JSONResponse{
		Success:   true,
		Data:      res.Profiles,
		Count:     len(res.Profiles),
		Note:      res.Note,
		SessionId: nullable(res.SessionID),
		Fallback:  res.Fallback,
	}, nil
}

func (s *Server) AnalyzeTechStack(ctx context.Context, req api.AnalyzeTechStackRequestObject) (api.AnalyzeTechStackResponseObject, error) {
	res, err := s.deps.Analysis.AddTechStackAnalysis(ctx, req.Body.Websites, value(req.Body.UserId))
	if err != nil {
		return nil, err
	}
	return api.AnalyzeTechStack200JSONResponse{
		Success:   true,
		Data:      res.Profiles,
		Count:     len(res.Profiles),
		Note:      res.Note,
		SessionId: nullable(res.SessionID),
	}, nil
}

func (s *Server) GetTrends(ctx context.Context, req api.GetTrendsRequestObject) (api.GetTrendsResponseObject, error) {
	summary, err := s.deps.Trends.GetTrends(ctx, req.Body.Keywords, value(req.Body.Timeframe), value(req.Body.Geography))
	if err != nil {
		return nil, err
	}
	return api.GetTrends200JSONResponse{Success: true, Data: summary}, nil
}

func (s *Server) CompareTrends(ctx context.Context, req api.CompareTrendsRequestObject) (api.CompareTrendsResponseObject, error) {
	summary, err := s.deps.Trends.Compare(ctx, strings.Split(req.Params.Keywords, ","), value(req.Params.Timeframe))
	if err != nil {
		return nil, err
	}
	return api.CompareTrends200JSONResponse{Success: true, Data: summary}, nil
}

func (s *Server) GetTrendsVisualReport(ctx context.Context, req api.GetTrendsVisualReportRequestObject) (api.GetTrendsVisualReportResponseObject, error) {
	report, err := s.deps.Trends.VisualReport(ctx, req.Params.Query, value(req.Params.Timeframe), value(req.Params.Geo))
	if err != nil {
		return nil, err
	}
	return api.GetTrendsVisualReport200JSONResponse{Success: true, Data: report}, nil
}

func (s *Server) GetSearchVolume(ctx context.Context, req api.GetSearchVolumeRequestObject) (api.GetSearchVolumeResponseObject, error) {
	out, err := s.deps.Keywords.SearchVolume(ctx, req.Body.Keywords, value(req.Body.LanguageCode), value(req.Body.LocationName))
	if err != nil {
		return nil, err
	}
	return api.GetSearchVolume200JSONResponse{Success: true, Data: out, Count: len(out)}, nil
}

func (s *Server) GetKeywordsForSite(ctx context.Context, req api.GetKeywordsForSiteRequestObject) (api.GetKeywordsForSiteResponseObject, error) {
	var targetType string
	if req.Body.TargetType != nil {
		targetType = string(*req.Body.TargetType)
	}
	out, err := s.deps.Keywords.KeywordsForSite(ctx, req.Body.Target, targetType, value(req.Body.LanguageCode), value(req.Body.LocationName))
	if err != nil {
		return nil, err
	}
	return api.GetKeywordsForSite200JSONResponse{Success: true, Data: out, Count: len(out)}, nil
}

func (s *Server) GetKeywordsForKeywords(ctx context.Context, req api.GetKeywordsForKeywordsRequestObject) (api.GetKeywordsForKeywordsResponseObject, error) {
	out, err := s.deps.Keywords.KeywordsForKeywords(ctx, req.Body.Keywords, value(req.Body.LanguageCode), value(req.Body.LocationName))
	if err != nil {
		return nil, err
	}
	return api.GetKeywordsForKeywords200JSONResponse{Success: true, Data: out, Count: len(out)}, nil
}

func (s *Server) GetAdTraffic(ctx context.Context, req api.GetAdTrafficRequestObject) (api.GetAdTrafficResponseObject, error) {
	in := keywords.AdTrafficRequest{
		Keywords: req.Body.Keywords,
		Bid:      req.Body.Bid,
		Match:    string(req.Body.Match),
		Language: value(req.Body.LanguageCode),
		Location: value(req.Body.LocationName),
	}
	if req.Body.DateInterval != nil {
		in.DateInterval = string(*req.Body.DateInterval)
	}
	out, err := s.deps.Keywords.AdTraffic(ctx, in)
	if err != nil {
		return nil, err
	}
	return api.GetAdTraffic200JSONResponse{Success: true, Data: out, Count: len(out)}, nil
}

// Chat always answers 200; model failures come back as a canned reply.
func (s *Server) Chat(ctx context.Context, req api.ChatRequestObject) (api.ChatResponseObject, error) {
	in := chat.Request{Message: req.Body.Message, SessionID: value(req.Body.SessionId)}
	if data := req.Body.AnalysisData; data != nil {
		if data.Data != nil {
			in.Inline.Profiles = *data.Data
		}
		if data.TechStacks != nil {
			in.Inline.Stacks = *data.TechStacks
		}
	}
	resp := s.deps.Chat.Answer(ctx, in)
	return api.Chat200JSONResponse{
		Response:    resp.Response,
		Suggestions: resp.Suggestions,
		SessionId:   nullable(resp.SessionID),
	}, nil
}

func (s *Server) GetHistory(ctx context.Context, req api.GetHistoryRequestObject) (api.GetHistoryResponseObject, error) {
	limit := 0
	if req.Params.Limit != nil {
		limit = *req.Params.Limit
	}
	list := s.deps.History.GetHistory(ctx, req.UserID, limit)
	return api.GetHistory200JSONResponse{Success: true, Data: list, Count: len(list)}, nil
}

func (s *Server) GetUserDomains(ctx context.Context, req api.GetUserDomainsRequestObject) (api.GetUserDomainsResponseObject, error) {
	list := s.deps.History.GetUserDomains(ctx, req.UserID)
	return api.GetUserDomains200JSONResponse{Success: true, Data: list, Count: len(list)}, nil
}

func (s *Server) GetSession(ctx context.Context, req api.GetSessionRequestObject) (api.GetSessionResponseObject, error) {
	sess, err := s.deps.History.GetSession(ctx, req.SessionID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return api.GetSession404JSONResponse{Success: false, Error: err.Error()}, nil
	case err != nil:
		return nil, err
	}
	return api.GetSession200JSONResponse{Success: true, Data: sess}, nil
}

func (s *Server) DeleteSession(ctx context.Context, req api.DeleteSessionRequestObject) (api.DeleteSessionResponseObject, error) {
	err := s.deps.History.DeleteSession(ctx, req.SessionID, req.Params.UserId)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return api.DeleteSession404JSONResponse{Success: false, Error: err.Error()}, nil
	case err != nil:
		return nil, err
	}
	return api.DeleteSession200JSONResponse{Success: true, Message: "Analysis session deleted successfully"}, nil
}

// StatusFor maps the error taxonomy onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrVendorTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrVendorUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrVendorDataInvalid):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrPreconditionFailed):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInputInvalid):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPersistenceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// requestError handles parameter binding and body decoding failures.
func (s *Server) requestError(w http.ResponseWriter, _ *http.Request, err error) {
	status := http.StatusBadRequest
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		status = http.StatusRequestEntityTooLarge
	}
	writeJSON(w, status, api.Error{Success: false, Error: err.Error()})
}

func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", logger.String("path", r.URL.Path), logger.String("request_id", middleware.GetReqID(r.Context())), logger.Error(err))
		msg = "internal server error"
	}
	writeJSON(w, status, api.Error{Success: false, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
