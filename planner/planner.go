package planner

import (
	"errors"
	"math/big"

	"github.com/basalt-robotics/sweepcover/bcd"
	"github.com/basalt-robotics/sweepcover/geom"
	"github.com/basalt-robotics/sweepcover/gtsp"
	"github.com/basalt-robotics/sweepcover/polygon"
	"github.com/basalt-robotics/sweepcover/sweepgraph"
	"github.com/basalt-robotics/sweepcover/visgraph"
)

// Planner is the top-level, re-entrant-across-instances orchestrator of
// spec.md §4.H: it owns the region, the BCD cells, the base sweep-plan
// graph, and the visibility graph, none of which solve() may mutate
// (spec.md §5 "Resource lifetimes").
type Planner struct {
	region   *polygon.WithHoles
	settings settings

	cells []polygon.Simple
	vg    visgraph.Graph
	graph *sweepgraph.Graph
}

// New constructs a Planner over region, applying opts on top of the
// defaults (Euclidean path/segment cost, Bcd decomposition, no sweep-
// around-obstacles). The planner is unusable until Setup succeeds.
func New(region *polygon.WithHoles, opts ...Option) *Planner {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &Planner{region: region, settings: s}
}

// Setup builds the decomposition and the base sweep-plan graph (spec.md
// §4.H). It must succeed exactly once before Solve or GetDecomposition
// is called; calling it again recomputes everything from the current
// settings.
func (p *Planner) Setup() Status {
	if p.settings.sensorModel == nil {
		return Status{Kind: InvalidGeometry, Err: ErrNoSensorModel}
	}

	cells, err := p.decompose()
	if err != nil {
		return decompositionStatus(err)
	}
	p.cells = cells

	p.vg = visgraph.NewWithSegmentCost(p.region, p.settings.segmentCostFn)

	graph, _, err := sweepgraph.Build(cells, p.region, p.vg, p.settings.sensorModel, p.settings.pathCostFn)
	if err != nil {
		return Status{Kind: NoSweepPlan, Err: err}
	}
	p.graph = graph
	return ok()
}

// decompose dispatches once among the four Strategy values (spec.md
// §9's "Polymorphism over decomposition strategy"). Trapezoidal and Bcd
// share bcd.Decompose's fixed-direction slab decomposition: the corpus
// offers no separate non-BCD trapezoidal decomposer, and bcd.Decompose
// itself already produces unmerged per-slab trapezoids (see its own doc
// comment and DESIGN.md) rather than full merged BCD cells, so the two
// names denote the same algorithm here. BestTrapezoidal/BestBcd both
// search for the minimum-altitude direction via bcd.BestDecompose.
func (p *Planner) decompose() ([]polygon.Simple, error) {
	switch p.settings.decompositionType {
	case BestTrapezoidal, BestBcd:
		cells, _, err := bcd.BestDecompose(p.region)
		return cells, err
	default:
		axis, err := geom.NewDirection(big.NewRat(1, 1), big.NewRat(0, 1))
		if err != nil {
			return nil, err
		}
		return bcd.Decompose(p.region, axis)
	}
}

func decompositionStatus(err error) Status {
	switch {
	case errors.Is(err, bcd.ErrDegenerate):
		return Status{Kind: Degenerate, Err: err}
	case errors.Is(err, bcd.ErrEmptyDecomposition):
		return Status{Kind: DecompositionFailed, Err: err}
	default:
		return Status{Kind: InvalidGeometry, Err: err}
	}
}

// GetDecomposition returns the cells produced by the most recent
// successful Setup.
func (p *Planner) GetDecomposition() []polygon.Simple {
	return append([]polygon.Simple(nil), p.cells...)
}

// Solve delegates to the base sweep-plan graph (spec.md §4.F), then
// optionally prepends a CCW boundary traversal (spec.md §4.H). It
// validates goal up front: a goal strictly inside a hole is surfaced as
// OutsideRegion rather than silently projected onto the hole boundary
// (spec.md §8 boundary scenario 6), unlike start, which sweepgraph
// itself projects onto the hull when it lies outside the region
// (scenario 5).
func (p *Planner) Solve(start, goal geom.Point) ([]geom.Point, Status) {
	if p.graph == nil {
		return nil, Status{Kind: InternalInvariant, Err: ErrNotSetup}
	}
	if p.region.InHoleInterior(goal) {
		return nil, Status{Kind: OutsideRegion, Err: polygon.ErrOutsideRegion}
	}

	waypoints, diags, err := p.graph.Solve(start, goal)
	if err != nil {
		return nil, solveStatus(err, diags, p.graph.NumCells(), len(p.graph.NodeIDs()))
	}

	if p.settings.sweepAroundObstacles {
		spliced, err := sweepAroundObstacles(p.region, p.settings.wallDistance, waypoints)
		if err != nil {
			return nil, Status{Kind: InternalInvariant, Err: err}
		}
		waypoints = spliced
	}

	return waypoints, ok()
}

// solveStatus classifies a fatal sweepgraph.Solve error. A SolverFailed
// result is downgraded to Unreachable when the accompanying diagnostics
// show that neither the injected start nor the goal node connected to
// any cell node (every addEdge attempt out of start and into goal
// failed) — the most direct reading of spec.md §8 scenario's
// "unreachable start/goal" available without sweepgraph exposing its
// adjacency counts directly.
func solveStatus(err error, diags []sweepgraph.Diagnostic, numCells, numNodes int) Status {
	switch {
	case errors.Is(err, gtsp.ErrSolverFailed):
		if fullyUnreachable(diags, numCells, numNodes) {
			return Status{Kind: Unreachable, Err: visgraph.ErrUnreachable}
		}
		return Status{Kind: SolverFailed, Err: err}
	case errors.Is(err, sweepgraph.ErrMalformedSolution):
		return Status{Kind: MalformedSolution, Err: err}
	case errors.Is(err, sweepgraph.ErrInternalInvariant):
		return Status{Kind: InternalInvariant, Err: err}
	case errors.Is(err, polygon.ErrOutsideRegion):
		return Status{Kind: OutsideRegion, Err: err}
	case errors.Is(err, polygon.ErrInvalidGeometry):
		return Status{Kind: InvalidGeometry, Err: err}
	default:
		return Status{Kind: InternalInvariant, Err: err}
	}
}

// fullyUnreachable reports whether every edge attempt touching the
// start or goal cluster (numCells and numCells+1) failed: 2*numNodes
// attempts are made over the numNodes cell nodes (start->every node,
// every node->goal), so an equal or greater count of start/goal
// diagnostics means neither endpoint connected to anything.
func fullyUnreachable(diags []sweepgraph.Diagnostic, numCells, numNodes int) bool {
	startCluster, goalCluster := numCells, numCells+1
	count := 0
	for _, d := range diags {
		if d.Cluster == startCluster || d.Cluster == goalCluster {
			count++
		}
	}
	return numNodes > 0 && count >= 2*numNodes
}
