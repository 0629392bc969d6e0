package planner

import "errors"

// ErrNotSetup indicates Solve or GetDecomposition was called before a
// successful Setup.
var ErrNotSetup = errors.New("planner: Setup has not completed successfully")

// ErrNoSensorModel indicates Setup was called without WithSensorModel.
var ErrNoSensorModel = errors.New("planner: no sensor model configured")
