package sensormodel

import "errors"

// ErrInvalidFootprint is returned when a sensor model is constructed
// with a non-positive sweep distance or lateral footprint.
var ErrInvalidFootprint = errors.New("sensormodel: sweep distance and lateral footprint must be positive")
