package resize

import (
	"context"
	"fmt"
	"math"

	"github.com/mthorpe/grip/internal/logging"
)

// DefaultMinWidth is the minimum width applied to columns without more
// specific constraints.
const DefaultMinWidth = 30

// Constraints is the legal width range for a column.
type Constraints struct {
	MinWidth float64
	MaxWidth float64
}

// DefaultConstraints returns the constraints applied to columns with neither
// a per-column override nor an external authority.
func DefaultConstraints() Constraints {
	return Constraints{MinWidth: DefaultMinWidth, MaxWidth: math.Inf(1)}
}

// Authority is an external source of truth for column constraints. When
// configured it fully overrides internally stored constraints.
type Authority interface {
	ConstraintsFor(col int) Constraints
}

// ValidationResult is the outcome of validating a proposed width. A rejection
// is a first-class outcome, not an error.
type ValidationResult struct {
	Valid  bool
	Reason string
	// SuggestedWidth is a fallback the caller may apply when validation
	// rejects the proposed width. Nil when no fallback is offered.
	SuggestedWidth *float64
}

// Validator is an optional custom check applied to a proposed width at commit
// time. Implementations should honour ctx; a validator that outlives it is
// abandoned and its verdict treated as a rejection.
type Validator interface {
	Validate(ctx context.Context, col int, width float64) (ValidationResult, error)
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(ctx context.Context, col int, width float64) (ValidationResult, error)

func (f ValidatorFunc) Validate(ctx context.Context, col int, width float64) (ValidationResult, error) {
	return f(ctx, col, width)
}

// Resolver computes the legal width range for a column and validates proposed
// widths. Constraints compose in priority order: authority, then per-column
// override, then the global default.
type Resolver struct {
	defaults  Constraints
	overrides map[int]Constraints
	authority Authority
	validator Validator
	logger    logging.Interface
}

type ResolverOptions struct {
	// Defaults is the global default constraints. The zero value selects
	// DefaultConstraints.
	Defaults Constraints
	// Authority, when non-nil, becomes the sole source of constraints.
	Authority Authority
	// Validator, when non-nil, is consulted at commit time.
	Validator Validator
	Logger    logging.Interface
}

func NewResolver(opts ResolverOptions) *Resolver {
	if opts.Defaults == (Constraints{}) {
		opts.Defaults = DefaultConstraints()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	return &Resolver{
		defaults:  opts.Defaults,
		overrides: make(map[int]Constraints),
		authority: opts.Authority,
		validator: opts.Validator,
		logger:    opts.Logger,
	}
}

// SetColumn sets a per-column constraint override. It has no effect while an
// authority is configured, which takes precedence over all overrides.
func (r *Resolver) SetColumn(col int, c Constraints) {
	r.overrides[col] = c
}

// ConstraintsFor resolves the constraints for a column. Malformed constraints
// (max below min, negative min) are corrected rather than surfaced.
func (r *Resolver) ConstraintsFor(col int) Constraints {
	var c Constraints
	switch {
	case r.authority != nil:
		c = r.authority.ConstraintsFor(col)
	default:
		var ok bool
		if c, ok = r.overrides[col]; !ok {
			c = r.defaults
		}
	}
	if c.MinWidth < 0 {
		c.MinWidth = 0
	}
	if c.MaxWidth < c.MinWidth {
		r.logger.Debug("correcting malformed constraints", "column", col, "min_width", c.MinWidth, "max_width", c.MaxWidth)
		c.MaxWidth = c.MinWidth
	}
	return c
}

// Clamp clamps width to the column's legal range. Clamp is idempotent.
func (r *Resolver) Clamp(col int, width float64) float64 {
	c := r.ConstraintsFor(col)
	return math.Min(c.MaxWidth, math.Max(c.MinWidth, width))
}

// Validate validates a proposed width. The constraint range is checked first;
// only a width within range is passed on to the custom validator. Validator
// faults and timeouts are absorbed and reported as rejections.
func (r *Resolver) Validate(ctx context.Context, col int, width float64) ValidationResult {
	c := r.ConstraintsFor(col)
	clamped := math.Min(c.MaxWidth, math.Max(c.MinWidth, width))
	if clamped != width {
		result := ValidationResult{SuggestedWidth: &clamped}
		if width < c.MinWidth {
			result.Reason = fmt.Sprintf("width %v is below the minimum %v", width, c.MinWidth)
		} else {
			result.Reason = fmt.Sprintf("width %v exceeds the maximum %v", width, c.MaxWidth)
		}
		return result
	}
	if r.validator == nil {
		return ValidationResult{Valid: true}
	}

	type outcome struct {
		result ValidationResult
		err    error
	}
	ch := make(chan outcome, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				ch <- outcome{err: fmt.Errorf("validator panicked: %v", p)}
			}
		}()
		result, err := r.validator.Validate(ctx, col, width)
		ch <- outcome{result: result, err: err}
	}()
	select {
	case <-ctx.Done():
		r.logger.Error("custom width validation abandoned", "column", col, "width", width, "error", ctx.Err())
		return ValidationResult{Reason: "validation timed out"}
	case out := <-ch:
		if out.err != nil {
			r.logger.Error("custom width validation failed", "column", col, "width", width, "error", out.err)
			return ValidationResult{Reason: out.err.Error()}
		}
		return out.result
	}
}
