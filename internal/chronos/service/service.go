package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/now"

	mdwerror "github.com/msto63/mdw-chronos/foundation/core/error"
	"github.com/msto63/mdw-chronos/pkg/core/cache"
	"github.com/msto63/mdw-chronos/pkg/core/logging"
	"github.com/msto63/mdw-chronos/pkg/timex"
)

// ParseResult represents a parsed TIMEX expression
type ParseResult struct {
	Timex     string
	Canonical string
	Types     []string
	Property  *timex.Property
}

// ExpandResult represents an expanded range
type ExpandResult struct {
	Timex    string
	Kind     string // "datetimerange" or "timerange"
	Start    string
	End      string
	Duration string
}

// Config holds service configuration
type Config struct {
	CacheEnabled  bool
	CacheMaxItems int
	CacheTTL      time.Duration
	Location      *time.Location
}

// DefaultConfig returns default service configuration
func DefaultConfig() Config {
	return Config{
		CacheEnabled:  true,
		CacheMaxItems: 1024,
		CacheTTL:      10 * time.Minute,
		Location:      time.UTC,
	}
}

// Service is the Chronos temporal expression service
type Service struct {
	logger   *logging.Logger
	cache    *cache.Cache[*timex.Property]
	location *time.Location
}

// NewService creates a new Chronos service
func NewService(cfg Config) (*Service, error) {
	logger := logging.New("chronos")

	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	svc := &Service{
		logger:   logger,
		location: cfg.Location,
	}

	if cfg.CacheEnabled {
		svc.cache = cache.New[*timex.Property](cache.Config{
			MaxItems: cfg.CacheMaxItems,
			TTL:      cfg.CacheTTL,
		})
	}

	logger.Debug("Service created", "cache", cfg.CacheEnabled, "location", cfg.Location.String())
	return svc, nil
}

// Close releases the parse cache
func (s *Service) Close() {
	if s.cache != nil {
		s.cache.Close()
	}
}

// Location returns the zone used to interpret reference dates
func (s *Service) Location() *time.Location {
	return s.location
}

// CacheStats returns parse cache hits, misses and hit rate in percent
func (s *Service) CacheStats() (hits, misses int64, hitRate float64) {
	if s.cache == nil {
		return 0, 0, 0
	}
	return s.cache.Stats()
}

// Parse parses a TIMEX expression
func (s *Service) Parse(ctx context.Context, text string) (*ParseResult, error) {
	const op = "service.Parse"

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalidInput(op, "timex is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := s.parse(text)
	if err != nil {
		s.logger.Warn("Parse failed", "timex", text, "error", err)
		return nil, err
	}

	return &ParseResult{
		Timex:     text,
		Canonical: p.Timex(),
		Types:     p.Types().Strings(),
		Property:  p,
	}, nil
}

// Infer returns the semantic types of a TIMEX expression
func (s *Service) Infer(ctx context.Context, text string) ([]string, error) {
	result, err := s.Parse(ctx, text)
	if err != nil {
		return nil, err
	}
	return result.Types, nil
}

// Format returns the canonical TIMEX text of p
func (s *Service) Format(ctx context.Context, p *timex.Property) (string, error) {
	if p == nil {
		return "", invalidInput("service.Format", "property is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return timex.Format(p), nil
}

// FormatFields builds a property from TIMEX group names and formats it
func (s *Service) FormatFields(ctx context.Context, fields map[string]string) (string, error) {
	const op = "service.FormatFields"

	if len(fields) == 0 {
		return "", invalidInput(op, "fields are required")
	}

	p := &timex.Property{}
	if err := p.AssignProperties(fields); err != nil {
		return "", err
	}
	return s.Format(ctx, p)
}

// Expand expands a range expression into start, end and duration. A year and
// ISO week expands to that week rather than the whole year.
func (s *Service) Expand(ctx context.Context, text string) (*ExpandResult, error) {
	const op = "service.Expand"

	parsed, err := s.Parse(ctx, text)
	if err != nil {
		return nil, err
	}
	p := parsed.Property
	types := p.Types()

	var (
		r    timex.Range
		kind string
	)
	switch {
	case p.Year != nil && p.WeekOfYear != nil && !types.Has(timex.TypeDuration):
		r, err = timex.ExpandWeekRange(p)
		if err != nil {
			return nil, err
		}
		kind = timex.EntryDateTimeRange
	case types.Has(timex.TypeTimeRange) && !types.Has(timex.TypeDate):
		r, err = timex.ExpandTimeRange(p)
		if err != nil {
			return nil, err
		}
		kind = timex.EntryTimeRange
	case types.Has(timex.TypeDateRange) || types.Has(timex.TypeDateTimeRange):
		r = timex.ExpandDateTimeRange(p)
		kind = timex.EntryDateTimeRange
	default:
		return nil, mdwerror.Newf("%q is not a range", parsed.Timex).
			WithCode(mdwerror.CodeInvalidArgument).
			WithOperation(op)
	}

	return &ExpandResult{
		Timex:    parsed.Canonical,
		Kind:     kind,
		Start:    r.Start.Timex(),
		End:      r.End.Timex(),
		Duration: r.Duration.Timex(),
	}, nil
}

// Resolve resolves TIMEX expressions against ref. A zero ref means now in
// the service location.
func (s *Service) Resolve(ctx context.Context, timexes []string, ref time.Time) (*timex.Resolution, error) {
	const op = "service.Resolve"

	if len(timexes) == 0 {
		return nil, invalidInput(op, "at least one timex is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ref.IsZero() {
		ref = time.Now().In(s.location)
	}

	callID := uuid.NewString()
	s.logger.Debug("Resolving", "call", callID, "count", len(timexes), "reference", ref.Format(time.RFC3339))

	resolution, err := timex.Resolve(timexes, ref)
	if err != nil {
		s.logger.Warn("Resolve failed", "call", callID, "error", err)
		return nil, err
	}

	s.logger.Debug("Resolved", "call", callID, "values", len(resolution.Values))
	return resolution, nil
}

// Evaluate narrows candidates by constraints and returns canonical TIMEX text
func (s *Service) Evaluate(ctx context.Context, candidates, constraints []string) ([]string, error) {
	const op = "service.Evaluate"

	if len(candidates) == 0 {
		return nil, invalidInput(op, "at least one candidate is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results, err := timex.Evaluate(candidates, constraints)
	if err != nil {
		s.logger.Warn("Evaluate failed", "error", err)
		return nil, err
	}

	out := make([]string, 0, len(results))
	for _, p := range results {
		out = append(out, p.Timex())
	}

	s.logger.Debug("Evaluated", "candidates", len(candidates), "constraints", len(constraints), "results", len(out))
	return out, nil
}

// ParseReference parses a reference date in the service location. RFC 3339
// is tried first, then the relaxed layouts such as "2024-01-10" or
// "2024-01-10 14:30". Blank text yields the zero time.
func (s *Service) ParseReference(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return t.In(s.location), nil
	}

	cfg := &now.Config{
		WeekStartDay: time.Monday,
		TimeLocation: s.location,
		TimeFormats:  now.TimeFormats,
	}
	t, err := cfg.Parse(text)
	if err != nil {
		return time.Time{}, mdwerror.Wrap(err, "invalid reference date").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("service.ParseReference").
			WithDetail("value", text)
	}
	return t, nil
}

// parse returns a private copy of the cached property for text
func (s *Service) parse(text string) (*timex.Property, error) {
	if s.cache == nil {
		return timex.Parse(text)
	}

	p, err := s.cache.GetOrSet(text, func() (*timex.Property, error) {
		return timex.Parse(text)
	})
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

func invalidInput(op, message string) error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation(op)
}
