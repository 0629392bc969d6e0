// Package costfn defines the path/segment cost callables consumed by
// sweepgraph and planner, plus the Euclidean builtins, grounded on
// original_source/include/.../path_cost_functions.h's
// computeEuclideanPathCost/computeEuclideanSegmentCost.
package costfn
