package sensormodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basalt-robotics/sweepcover/sensormodel"
)

func TestNewFixedFootprint_Valid(t *testing.T) {
	m, err := sensormodel.NewFixedFootprint(2.0, 3.0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, m.SweepDistance(), 1e-9)
	assert.InDelta(t, 3.0, m.LateralFootprint(), 1e-9)
}

func TestNewFixedFootprint_RejectsNonPositive(t *testing.T) {
	_, err := sensormodel.NewFixedFootprint(0, 3.0)
	assert.ErrorIs(t, err, sensormodel.ErrInvalidFootprint)

	_, err = sensormodel.NewFixedFootprint(2.0, -1.0)
	assert.ErrorIs(t, err, sensormodel.ErrInvalidFootprint)
}

func TestNewOverlapFootprint_DerivesSweepDistance(t *testing.T) {
	m, err := sensormodel.NewOverlapFootprint(10.0, 0.2)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, m.SweepDistance(), 1e-9)
	assert.InDelta(t, 10.0, m.LateralFootprint(), 1e-9)
}

func TestNewOverlapFootprint_RejectsOutOfRangeOverlap(t *testing.T) {
	_, err := sensormodel.NewOverlapFootprint(10.0, 1.0)
	assert.ErrorIs(t, err, sensormodel.ErrInvalidFootprint)

	_, err = sensormodel.NewOverlapFootprint(10.0, -0.1)
	assert.ErrorIs(t, err, sensormodel.ErrInvalidFootprint)
}

func TestFixedFootprint_SatisfiesInterface(t *testing.T) {
	var m sensormodel.SensorModel
	m, err := sensormodel.NewFixedFootprint(1.0, 1.0)
	require.NoError(t, err)
	assert.NotNil(t, m)
}
