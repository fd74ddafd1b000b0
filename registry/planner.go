package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/katalvlaran/lvsearch/grid"
	"github.com/katalvlaran/lvsearch/logging"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/search"
)

// MeterName is the instrumentation scope of planner metrics.
const MeterName = "github.com/katalvlaran/lvsearch/registry"

// Metric names.
const (
	MetricSearches = "lvsearch.planner.searches"
	MetricExpanded = "lvsearch.planner.expanded"
	MetricPathCost = "lvsearch.planner.path_cost"
)

// Plan is the outcome of one planning episode.
type Plan struct {
	RunID    uuid.UUID
	Actions  []search.Action
	Cost     float64
	Expanded int
	Elapsed  time.Duration
}

// PlannerOption configures a Planner.
type PlannerOption func(*Planner)

// WithPlannerLogger sets the logger for planner and search events.
func WithPlannerLogger(l *bolt.Logger) PlannerOption {
	return func(p *Planner) { p.logger = l }
}

// WithMeter sets the meter planner instruments are created from.
// Default is otel.Meter(MeterName) on the global provider.
func WithMeter(m metric.Meter) PlannerOption {
	return func(p *Planner) { p.meter = m }
}

// WithSearchOptions appends options passed to every search call.
func WithSearchOptions(opts ...search.Option) PlannerOption {
	return func(p *Planner) { p.searchOpts = append(p.searchOpts, opts...) }
}

// Planner runs the configured algorithm, heuristic and problem against an
// environment snapshot, once per Plan call. A Planner holds no per-episode
// state and may be shared; problems are built fresh for every episode.
type Planner struct {
	cfg        Config
	logger     *bolt.Logger
	meter      metric.Meter
	searchOpts []search.Option

	searches metric.Int64Counter
	expanded metric.Int64Counter
	pathCost metric.Float64Histogram
}

// NewPlanner validates cfg and creates the planner's instruments.
func NewPlanner(cfg Config, opts ...PlannerOption) (*Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Planner{cfg: cfg}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		if cfg.LogLevel != "" {
			lc := logging.DefaultConfig()
			lc.Level = cfg.LogLevel
			p.logger = logging.New(lc)
		} else {
			p.logger = logging.Get()
		}
	}
	if p.meter == nil {
		p.meter = otel.Meter(MeterName)
	}
	if err := p.initInstruments(); err != nil {
		return nil, fmt.Errorf("registry: create instruments: %w", err)
	}

	return p, nil
}

func (p *Planner) initInstruments() error {
	var err error

	p.searches, err = p.meter.Int64Counter(
		MetricSearches,
		metric.WithDescription("Number of planning searches"),
		metric.WithUnit("{search}"),
	)
	if err != nil {
		return err
	}

	p.expanded, err = p.meter.Int64Counter(
		MetricExpanded,
		metric.WithDescription("Nodes expanded by planning searches"),
		metric.WithUnit("{node}"),
	)
	if err != nil {
		return err
	}

	p.pathCost, err = p.meter.Float64Histogram(
		MetricPathCost,
		metric.WithDescription("Cost of planned paths"),
	)
	return err
}

// Config returns the planner's configuration.
func (p *Planner) Config() Config { return p.cfg }

// outcome is the problem-independent part of a search result.
type outcome struct {
	actions  []search.Action
	cost     float64
	expanded int
	found    bool
}

// Plan builds the configured problem from env and searches it.
//
// The returned cost is recomputed with the problem's CostOfActions. When no
// path exists the error wraps search.ErrNoPath.
func (p *Planner) Plan(ctx context.Context, env maze.Environment) (*Plan, error) {
	runID := uuid.New()
	start := time.Now()

	opts := make([]search.Option, 0, len(p.searchOpts)+3)
	opts = append(opts, p.searchOpts...)
	opts = append(opts, search.WithContext(ctx), search.WithLogger(p.logger))
	if p.cfg.MaxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(p.cfg.MaxExpansions))
	}

	out, err := p.dispatch(env, opts)
	elapsed := time.Since(start)
	p.record(ctx, out)

	if err != nil {
		ev := logging.NewEvent(p.logger.Warn()).Add(logging.ErrorField(err))
		p.describe(ev, runID, elapsed, out).Msg("no path found")
		return nil, fmt.Errorf("registry: run %s: %w", runID, err)
	}

	ev := logging.NewEvent(p.logger.Info()).
		Add(logging.Cost(out.cost)).
		Add(logging.PathLength(len(out.actions)))
	p.describe(ev, runID, elapsed, out).Msg("path found")

	return &Plan{
		RunID:    runID,
		Actions:  out.actions,
		Cost:     out.cost,
		Expanded: out.expanded,
		Elapsed:  elapsed,
	}, nil
}

func (p *Planner) describe(ev *logging.LogEvent, runID uuid.UUID, elapsed time.Duration, out *outcome) *logging.LogEvent {
	ev = ev.Add(logging.Component("planner")).
		Add(logging.RunID(runID.String())).
		Add(logging.Algorithm(p.cfg.Algorithm.String())).
		Add(logging.Heuristic(p.cfg.Heuristic.String())).
		Add(logging.ProblemKind(p.cfg.Problem.String())).
		Add(logging.Duration(elapsed))
	if out != nil {
		ev = ev.Add(logging.Expanded(out.expanded))
	}
	return ev
}

func (p *Planner) record(ctx context.Context, out *outcome) {
	found := out != nil && out.found
	attrs := metric.WithAttributes(
		attribute.String("algorithm", p.cfg.Algorithm.String()),
		attribute.String("heuristic", p.cfg.Heuristic.String()),
		attribute.String("problem", p.cfg.Problem.String()),
		attribute.Bool("found", found),
	)
	p.searches.Add(ctx, 1, attrs)
	if out == nil {
		return
	}
	p.expanded.Add(ctx, int64(out.expanded), attrs)
	if found {
		p.pathCost.Record(ctx, out.cost, attrs)
	}
}

// dispatch builds the problem and runs the search with its heuristic.
func (p *Planner) dispatch(env maze.Environment, opts []search.Option) (*outcome, error) {
	mopts := []maze.Option{maze.WithLogger(p.logger)}

	switch p.cfg.Problem {
	case Position:
		prob := maze.NewPositionProblem(env, mopts...)
		return solve[grid.Cell](p.cfg.Algorithm, prob, positionHeuristics[p.cfg.Heuristic], opts)
	case CornersProblem:
		prob := maze.NewCornersProblem(env, mopts...)
		return solve[maze.CornersState](p.cfg.Algorithm, prob, cornersHeuristics[p.cfg.Heuristic], opts)
	case FoodProblem:
		prob := maze.NewFoodProblem(env, mopts...)
		return solve[maze.FoodState](p.cfg.Algorithm, prob, foodHeuristics[p.cfg.Heuristic], opts)
	case AnyFoodProblem:
		if p.cfg.AnyFoodGoal {
			mopts = append(mopts, maze.WithAnyFoodGoal())
		}
		prob, err := maze.NewAnyFoodProblem(env, mopts...)
		if err != nil {
			return nil, err
		}
		return solve[grid.Cell](p.cfg.Algorithm, prob, anyFoodHeuristics[p.cfg.Heuristic], opts)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownProblem, p.cfg.Problem)
}

func solve[S comparable, P search.Problem[S]](alg Algorithm, prob P, h search.Heuristic[S, P], opts []search.Option) (*outcome, error) {
	res, err := search.Run[S, P](alg.Strategy(), prob, h, opts...)
	if res == nil {
		return nil, err
	}
	out := &outcome{actions: res.Actions, expanded: res.Expanded, found: res.Found}
	if res.Found {
		out.cost = prob.CostOfActions(res.Actions)
	}
	return out, err
}
