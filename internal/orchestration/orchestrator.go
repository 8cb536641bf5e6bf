package orchestration

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/enrichd/internal/errors"
	"github.com/agbru/enrichd/internal/format"
	"github.com/agbru/enrichd/internal/logging"
)

// SourceResult encapsulates the outcome of a single upstream fetch.
// It serves as a standardized container for results from different sources,
// facilitating combination and reporting. Exactly one SourceResult exists per
// configured source per Process call.
type SourceResult struct {
	// Name is the identifier of the source (e.g., "service_a").
	Name string
	// Payload is the fetched enrichment data. After Process returns it is
	// never nil: failed fetches carry an empty map.
	Payload map[string]any
	// Duration is the time taken by the fetch.
	Duration time.Duration
	// Err contains any error that occurred during the fetch. A non-nil Err
	// never aborts the request; it is recorded for observability only.
	Err error
}

// Result is the combined outcome of one Process call. It is owned by the
// caller and carries no cross-request state.
type Result struct {
	// ProcessedData is the output of the combination function.
	ProcessedData string
	// Sources holds one entry per configured source, in registration order,
	// regardless of completion order.
	Sources []SourceResult
	// Elapsed is the wall-clock time from fan-out start to combination end.
	Elapsed time.Duration
}

// ElapsedMilliseconds reports the processing time in fractional milliseconds,
// the unit exposed to API callers. Always >= 0.
func (r *Result) ElapsedMilliseconds() float64 {
	return format.Milliseconds(r.Elapsed)
}

// Orchestrator fans a request out to every registered source concurrently,
// absorbs per-source failures, and combines the surviving payloads. The set
// of sources is fixed at construction; the zero number of sources is allowed
// and yields a result combining no payloads.
type Orchestrator struct {
	sources []Source
	traced  []Source
	combine CombineFunc
	logger  logging.Logger
	tracer  trace.Tracer
}

// Option configures an Orchestrator during construction.
type Option func(*Orchestrator)

// WithLogger sets the structured logger used for request lifecycle events.
func WithLogger(l logging.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// WithTracer sets the tracer used to create per-request and per-fetch spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *Orchestrator) { o.tracer = t }
}

// WithCombiner replaces the combination function applied after fan-in.
func WithCombiner(c CombineFunc) Option {
	return func(o *Orchestrator) { o.combine = c }
}

// New creates an Orchestrator over the given sources. Source order is
// preserved in every Result. Defaults: DefaultCombiner, a stderr logger, and
// a no-op tracer.
func New(sources []Source, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		sources: sources,
		combine: DefaultCombiner,
		logger:  logging.NewDefaultLogger(),
		tracer:  noop.NewTracerProvider().Tracer("orchestration"),
	}
	for _, opt := range opts {
		opt(o)
	}

	o.traced = make([]Source, len(sources))
	for i, src := range sources {
		o.traced[i] = tracedSource{inner: src, tracer: o.tracer}
	}
	return o
}

// Process runs one request through the orchestrator: it records the start
// time, fetches from every source concurrently, substitutes an empty payload
// for each failed source, combines the payloads, and returns the result
// annotated with the elapsed time.
//
// Upstream failures are contained: Process returns an error only when the
// combination step itself fails, wrapped as an apperrors.ProcessingError.
// The options mapping is accepted for callers that carry per-request
// settings; it is not forwarded to sources.
//
// Parameters:
//   - ctx: The context for the request; cancellation reaches every fetch.
//   - input: The request input; any string, including empty.
//   - options: Optional per-request key/value settings.
//
// Returns:
//   - *Result: The combined result, nil only on error.
//   - error: A ProcessingError when combination fails.
func (o *Orchestrator) Process(ctx context.Context, input string, options map[string]string) (*Result, error) {
	start := time.Now()
	ctx, span := o.tracer.Start(ctx, "orchestration.process", trace.WithAttributes(
		attribute.Int("source.count", len(o.sources)),
	))
	defer span.End()

	o.logger.Info("starting data processing",
		logging.String("input", input),
		logging.Int("option_count", len(options)),
		logging.Int("source_count", len(o.sources)))

	results := FetchAll(ctx, o.traced, input)

	payloads := make([]map[string]any, len(results))
	for i := range results {
		if results[i].Err != nil {
			results[i].Payload = map[string]any{}
			o.logger.Warn("upstream source call failed",
				logging.String("source", results[i].Name),
				logging.String("kind", string(apperrors.KindOf(results[i].Err))),
				logging.Err(results[i].Err))
		} else {
			if results[i].Payload == nil {
				results[i].Payload = map[string]any{}
			}
			o.logger.Debug("source fetch completed",
				logging.String("source", results[i].Name),
				logging.String("duration", format.FormatExecutionDuration(results[i].Duration)))
		}
		payloads[i] = results[i].Payload
	}

	processed, err := o.combine(input, payloads)
	if err != nil {
		err = &apperrors.ProcessingError{Cause: err}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	elapsed := time.Since(start)
	o.logger.Info("data processing completed",
		logging.Float64("processing_time_ms", format.Milliseconds(elapsed)))

	return &Result{ProcessedData: processed, Sources: results, Elapsed: elapsed}, nil
}

// FetchAll issues every fetch concurrently and joins on all of them. This is
// a barrier, not a race: it returns only after each source has either
// completed or failed, and a failure in one source never cancels the others.
// The result slice index matches the source slice index, so the mapping from
// source identity to outcome is stable regardless of completion order.
//
// Parameters:
//   - ctx: The context passed to every fetch.
//   - sources: The sources to query.
//   - key: The lookup key bound to every fetch.
//
// Returns:
//   - []SourceResult: One entry per source, in source order.
func FetchAll(ctx context.Context, sources []Source, key string) []SourceResult {
	g := new(errgroup.Group)
	results := make([]SourceResult, len(sources))

	for i, src := range sources {
		idx, source := i, src
		g.Go(func() error {
			startTime := time.Now()
			payload, err := source.Fetch(ctx, key)
			results[idx] = SourceResult{
				Name: source.Name(), Payload: payload, Duration: time.Since(startTime), Err: err,
			}
			return nil
		})
	}

	g.Wait()
	return results
}

// tracedSource wraps a Source so that every fetch runs inside its own span.
type tracedSource struct {
	inner  Source
	tracer trace.Tracer
}

func (s tracedSource) Name() string { return s.inner.Name() }

func (s tracedSource) Fetch(ctx context.Context, key string) (map[string]any, error) {
	ctx, span := s.tracer.Start(ctx, "orchestration.fetch", trace.WithAttributes(
		attribute.String("source", s.inner.Name()),
	))
	defer span.End()

	payload, err := s.inner.Fetch(ctx, key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return payload, err
}
