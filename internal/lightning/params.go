package lightning

import (
	"errors"
	"fmt"
	"math"

	"boltgen/internal/geom"
)

var (
	ErrInvalidBounds    = errors.New("invalid bounds")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// MidpointParams configures midpoint displacement.
type MidpointParams struct {
	// Displacement is the initial perturbation magnitude; it halves per level.
	Displacement float64 `json:"displacement"`
	// Detail is the displacement below which a segment is emitted as a leaf.
	Detail float64 `json:"detail"`
	// BranchProbability is the chance a subdivided midpoint spawns a side branch.
	BranchProbability float64 `json:"branch_probability"`
	// BranchMinDisplacement gates branching: only levels above it branch.
	BranchMinDisplacement float64 `json:"branch_min_displacement"`
	// BranchSpread is the full width of the absolute branch angle window.
	BranchSpread float64 `json:"branch_spread"`
}

// DualFrontParams configures the dual-front walk.
type DualFrontParams struct {
	BranchLength     float64 `json:"branch_length"`
	MaxSteps         int     `json:"max_steps"`
	ConnectThreshold float64 `json:"connect_threshold"`
	AngleSpread      float64 `json:"angle_spread"`
}

func DefaultMidpointParams() MidpointParams {
	return MidpointParams{
		Displacement:          80,
		Detail:                2,
		BranchProbability:     0.3,
		BranchMinDisplacement: 10,
		BranchSpread:          math.Pi / 4,
	}
}

func DefaultDualFrontParams() DualFrontParams {
	return DualFrontParams{
		BranchLength:     7,
		MaxSteps:         120,
		ConnectThreshold: 12,
		AngleSpread:      math.Pi / 2,
	}
}

// ValidateBounds reports ErrInvalidBounds for empty or inverted rectangles.
func ValidateBounds(b geom.Bounds) error {
	if !b.Valid() {
		return fmt.Errorf("%w: x [%g, %g] y [%g, %g]", ErrInvalidBounds, b.MinX, b.MaxX, b.MinY, b.MaxY)
	}
	return nil
}

func (p MidpointParams) Validate() error {
	switch {
	case !(p.Detail > 0):
		return fmt.Errorf("%w: detail must be > 0, got %g", ErrInvalidParameter, p.Detail)
	case p.Displacement < 0 || math.IsNaN(p.Displacement) || math.IsInf(p.Displacement, 0):
		return fmt.Errorf("%w: displacement must be finite and >= 0, got %g", ErrInvalidParameter, p.Displacement)
	case p.BranchProbability < 0 || p.BranchProbability > 1:
		return fmt.Errorf("%w: branch probability must be in [0, 1], got %g", ErrInvalidParameter, p.BranchProbability)
	}
	return nil
}

func (p DualFrontParams) Validate() error {
	switch {
	case !(p.BranchLength > 0):
		return fmt.Errorf("%w: branch length must be > 0, got %g", ErrInvalidParameter, p.BranchLength)
	case p.MaxSteps < 1:
		return fmt.Errorf("%w: max steps must be >= 1, got %d", ErrInvalidParameter, p.MaxSteps)
	case p.ConnectThreshold < 0:
		return fmt.Errorf("%w: connect threshold must be >= 0, got %g", ErrInvalidParameter, p.ConnectThreshold)
	}
	return nil
}
