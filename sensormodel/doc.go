// Package sensormodel defines the sweep-distance/footprint interface
// sweepgraph and planner consume as an external collaborator (spec.md
// §1 Non-goals, §6 configure()'s sensor_model parameter), plus a fixed-
// footprint implementation.
package sensormodel
