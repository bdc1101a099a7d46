// Package resize implements an interactive column-resize engine: zone
// hit-testing, a drag state machine, pluggable resize strategies, constraint
// resolution, and content-driven auto-fit sizing. The engine knows nothing
// about how columns are displayed; it reads and writes layout state solely
// through the grid package's interfaces.
package resize

import (
	"context"
	"fmt"
	"time"

	"github.com/mthorpe/grip/internal/grid"
	"github.com/mthorpe/grip/internal/history"
	"github.com/mthorpe/grip/internal/logging"
	"github.com/mthorpe/grip/internal/pubsub"
	"github.com/mthorpe/grip/internal/resource"
)

// DefaultValidationTimeout bounds the before-resize hook and commit-time
// custom validation. Expiry is treated as a veto or rejection respectively.
const DefaultValidationTimeout = 3 * time.Second

// Preview is an optional live-preview surface. When configured, candidate
// widths during a drag are reported here instead of being written to the
// layout.
type Preview interface {
	ShowPreview(col int, width, borderX float64)
	HidePreview()
}

// ResizeRequest describes a resize about to start or be applied.
type ResizeRequest struct {
	Column        int
	CurrentWidth  float64
	ProposedWidth float64
}

// Hook is an optional authorization hook consulted before a drag is armed.
// Returning false, returning an error, or outliving ctx vetoes the drag.
type Hook interface {
	BeforeResize(ctx context.Context, req ResizeRequest) (bool, error)
}

// HookFunc adapts a function to the Hook interface.
type HookFunc func(ctx context.Context, req ResizeRequest) (bool, error)

func (f HookFunc) BeforeResize(ctx context.Context, req ResizeRequest) (bool, error) {
	return f(ctx, req)
}

// Service is the interaction controller. It owns the drag session lifecycle,
// consumes canonical pointer events, orchestrates zone detection, strategies,
// constraints and auto-fit, and publishes a WidthChange event per committed
// resize.
//
// The service expects to be driven from a single event-processing goroutine,
// mirroring a UI event loop; it performs no internal locking.
type Service struct {
	logger logging.Interface
	broker *pubsub.Broker[WidthChange]

	layout       grid.Layout
	detector     Detector
	resolver     *Resolver
	strategy     Strategy
	strategyKind StrategyKind
	sizer    *Sizer
	history  history.Recorder
	preview  Preview
	hook     Hook
	timeout  time.Duration

	// session is the at-most-one active drag. The invariant is owned here, by
	// this field, not by any ambient global state: independent grids get
	// independent services.
	session *Session
	hover   Zone
}

type ServiceOptions struct {
	// Layout is the column layout the engine reads from and writes to.
	// Required.
	Layout grid.Layout
	// Data supplies cell values for auto-fit. If nil and Layout implements
	// grid.DataProvider, the layout is used.
	Data grid.DataProvider
	// Headers supplies header titles for auto-fit. If nil and Layout
	// implements grid.HeaderProvider, the layout is used.
	Headers grid.HeaderProvider
	// HeaderWidth optionally supplies full rendered header widths.
	HeaderWidth grid.HeaderWidther

	// Strategy selects the resize strategy. Defaults to Single.
	Strategy StrategyKind
	// ZoneWidth is the total width of each border's resize zone. Defaults to
	// DefaultZoneWidth.
	ZoneWidth float64
	// DefaultConstraints is the global default width range. The zero value
	// selects DefaultConstraints().
	DefaultConstraints Constraints
	// Authority, when non-nil, fully overrides internal constraint storage.
	Authority Authority
	// Validator, when non-nil, is consulted at commit time.
	Validator Validator
	// Hook, when non-nil, is consulted before a drag is armed.
	Hook Hook
	// History, when non-nil, receives an entry per committed width change.
	History history.Recorder
	// Preview, when non-nil, receives candidate widths during drags.
	Preview Preview

	// SampleSize, Padding and Measure configure auto-fit sizing.
	SampleSize int
	Padding    float64
	Measure    Measurer

	// ValidationTimeout bounds hook and validator calls. Defaults to
	// DefaultValidationTimeout.
	ValidationTimeout time.Duration

	Logger logging.Interface
}

func NewService(opts ServiceOptions) *Service {
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	if opts.ValidationTimeout <= 0 {
		opts.ValidationTimeout = DefaultValidationTimeout
	}
	if opts.Data == nil {
		if data, ok := opts.Layout.(grid.DataProvider); ok {
			opts.Data = data
		}
	}
	if opts.Headers == nil {
		if headers, ok := opts.Layout.(grid.HeaderProvider); ok {
			opts.Headers = headers
		}
	}
	if opts.HeaderWidth == nil {
		if hw, ok := opts.Layout.(grid.HeaderWidther); ok {
			opts.HeaderWidth = hw
		}
	}
	return &Service{
		logger: opts.Logger,
		broker: pubsub.NewBroker[WidthChange](opts.Logger),
		layout: opts.Layout,
		resolver: NewResolver(ResolverOptions{
			Defaults:  opts.DefaultConstraints,
			Authority: opts.Authority,
			Validator: opts.Validator,
			Logger:    opts.Logger,
		}),
		detector:     NewDetector(opts.ZoneWidth),
		strategy:     NewStrategy(opts.Strategy),
		strategyKind: opts.Strategy,
		sizer: NewSizer(SizerOptions{
			Data:        opts.Data,
			Headers:     opts.Headers,
			HeaderWidth: opts.HeaderWidth,
			Measure:     opts.Measure,
			SampleSize:  opts.SampleSize,
			Padding:     opts.Padding,
		}),
		history: opts.History,
		preview: opts.Preview,
		hook:    opts.Hook,
		timeout: opts.ValidationTimeout,
		hover:   noZone,
	}
}

// Subscribe subscribes the caller to a stream of width-change events.
func (s *Service) Subscribe(ctx context.Context) <-chan resource.Event[WidthChange] {
	return s.broker.Subscribe(ctx)
}

// IsResizing reports whether a drag session is active.
func (s *Service) IsResizing() bool {
	return s.session != nil
}

// CurrentSession returns the active drag session, if any.
func (s *Service) CurrentSession() (Session, bool) {
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

// Hover returns the resize zone under the pointer while idle, for the UI's
// cursor affordance.
func (s *Service) Hover() (Zone, bool) {
	return s.hover, s.hover.InZone
}

// SetPreview attaches a live-preview surface. Refused mid-drag.
func (s *Service) SetPreview(p Preview) error {
	if s.session != nil {
		return fmt.Errorf("cannot attach preview during an active resize")
	}
	s.preview = p
	return nil
}

// SetStrategy switches the resize strategy. Refused mid-drag.
func (s *Service) SetStrategy(kind StrategyKind) error {
	if s.session != nil {
		return fmt.Errorf("cannot switch strategy during an active resize")
	}
	s.strategy = NewStrategy(kind)
	s.strategyKind = kind
	return nil
}

// Strategy returns the kind of the current resize strategy.
func (s *Service) Strategy() StrategyKind {
	return s.strategyKind
}

// AffectedColumns reports which columns the current strategy considers
// affected by resizing col. Returns nil for an out-of-range column.
func (s *Service) AffectedColumns(col int) []int {
	if col < 0 || col >= s.layout.ColumnCount() {
		return nil
	}
	return s.strategy.AffectedColumns(col, s.layout)
}

// SetColumnConstraints sets a per-column width constraint override.
// Out-of-range columns are a no-op.
func (s *Service) SetColumnConstraints(col int, c Constraints) {
	if col < 0 || col >= s.layout.ColumnCount() {
		s.logger.Warn("ignoring constraints for out-of-range column", "column", col)
		return
	}
	s.resolver.SetColumn(col, c)
}

// Pointer feeds one canonical pointer event into the state machine.
func (s *Service) Pointer(ev PointerEvent) {
	switch ev.Kind {
	case PointerDown:
		s.pointerDown(ev)
	case PointerMove:
		s.pointerMove(ev)
	case PointerUp:
		s.pointerUp(ev)
	case PointerCancel:
		s.pointerCancel(ev)
	case PointerDouble:
		s.doubleActivate(ev)
	}
}

func (s *Service) pointerDown(ev PointerEvent) {
	if s.session != nil {
		// Only one session engine-wide, regardless of input modality.
		s.logger.Debug("ignoring pointer down: resize already in progress", "session", s.session.ID)
		return
	}
	zone := s.detector.Detect(ev.X, s.layout)
	s.hover = zone
	if !zone.InZone {
		return
	}
	width := s.layout.WidthOf(zone.Column)
	if !s.authorize(ResizeRequest{Column: zone.Column, CurrentWidth: width, ProposedWidth: width}) {
		return
	}
	s.session = newSession(zone.Column, ev, width)
	s.logger.Debug("armed resize session", "session", s.session.ID, "column", zone.Column, "width", width)
}

func (s *Service) pointerMove(ev PointerEvent) {
	if s.session == nil {
		s.hover = s.detector.Detect(ev.X, s.layout)
		return
	}
	if ev.ID != s.session.pointer {
		return
	}
	col := s.session.Column
	candidate := s.resolver.Clamp(col, s.strategy.NewWidth(*s.session, ev.X))
	if s.preview != nil {
		s.preview.ShowPreview(col, candidate, s.layout.OffsetOf(col)+candidate)
		return
	}
	// No preview surface: resize live.
	s.layout.SetWidth(col, candidate)
}

func (s *Service) pointerUp(ev PointerEvent) {
	if s.session == nil || ev.ID != s.session.pointer {
		return
	}
	sess := *s.session
	col := sess.Column

	final := s.resolver.Clamp(col, s.strategy.NewWidth(sess, ev.X))
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	result := s.resolver.Validate(ctx, col, final)
	switch {
	case result.Valid:
	case result.SuggestedWidth != nil:
		s.logger.Debug("applying suggested width", "column", col, "width", *result.SuggestedWidth, "reason", result.Reason)
		final = *result.SuggestedWidth
	default:
		s.logger.Debug("resize rejected; restoring original width", "column", col, "reason", result.Reason)
		final = sess.OriginalWidth
	}

	// Write unconditionally: without a preview surface the layout holds the
	// last drag position and must be restored even on a no-op commit.
	s.layout.SetWidth(col, final)
	s.record(col, sess.OriginalWidth, final)
	s.endSession()
	s.logger.Debug("committed resize session", "session", sess.ID, "column", col, "width", final)
}

func (s *Service) pointerCancel(ev PointerEvent) {
	if s.session == nil || ev.ID != s.session.pointer {
		return
	}
	sess := *s.session
	// Undo any live writes made during the drag; a cancelled drag is a no-op.
	if s.layout.WidthOf(sess.Column) != sess.OriginalWidth {
		s.layout.SetWidth(sess.Column, sess.OriginalWidth)
	}
	s.endSession()
	s.logger.Debug("cancelled resize session", "session", sess.ID, "column", sess.Column)
}

func (s *Service) doubleActivate(ev PointerEvent) {
	if s.session != nil {
		return
	}
	zone := s.detector.Detect(ev.X, s.layout)
	if !zone.InZone {
		return
	}
	s.autoFit(zone.Column)
}

// AutoFitColumn resizes a column to its content-driven ideal width.
func (s *Service) AutoFitColumn(col int) error {
	if col < 0 || col >= s.layout.ColumnCount() {
		return fmt.Errorf("column %d out of range", col)
	}
	s.autoFit(col)
	return nil
}

// AutoFitAllColumns auto-fits every column. All measurements are taken before
// the first write, so interleaved reads never observe a partially resized
// layout.
func (s *Service) AutoFitAllColumns() {
	widths := make([]float64, s.layout.ColumnCount())
	for col := range widths {
		widths[col] = s.resolver.Clamp(col, s.sizer.IdealWidth(col))
	}
	for col, width := range widths {
		old := s.layout.WidthOf(col)
		if width == old {
			continue
		}
		s.layout.SetWidth(col, width)
		s.record(col, old, width)
	}
}

func (s *Service) autoFit(col int) {
	old := s.layout.WidthOf(col)
	width := s.resolver.Clamp(col, s.sizer.IdealWidth(col))
	if width == old {
		return
	}
	s.layout.SetWidth(col, width)
	s.record(col, old, width)
	s.logger.Debug("auto-fitted column", "column", col, "width", width)
}

// ResizeColumn programmatically resizes a column, subject to the same
// clamping and validation as a drag commit.
func (s *Service) ResizeColumn(ctx context.Context, col int, width float64) error {
	if col < 0 || col >= s.layout.ColumnCount() {
		return fmt.Errorf("column %d out of range", col)
	}
	old := s.layout.WidthOf(col)
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	result := s.resolver.Validate(ctx, col, width)
	switch {
	case result.Valid:
	case result.SuggestedWidth != nil:
		width = *result.SuggestedWidth
	default:
		return fmt.Errorf("resize rejected: %s", result.Reason)
	}
	if width == old {
		return nil
	}
	s.layout.SetWidth(col, width)
	s.record(col, old, width)
	return nil
}

// record appends a history entry and publishes an event for a committed width
// change. No-ops are not recorded.
func (s *Service) record(col int, oldWidth, newWidth float64) {
	if oldWidth == newWidth {
		return
	}
	if s.history != nil {
		s.history.Push(history.Entry{Column: col, OldWidth: oldWidth, NewWidth: newWidth})
	}
	s.broker.Publish(resource.UpdatedEvent, WidthChange{Column: col, OldWidth: oldWidth, NewWidth: newWidth})
}

func (s *Service) endSession() {
	s.session = nil
	s.hover = noZone
	if s.preview != nil {
		s.preview.HidePreview()
	}
}

// authorize invokes the before-resize hook under the configured timeout,
// absorbing faults. A hook that errors, panics, or outlives the deadline
// vetoes the resize.
func (s *Service) authorize(req ResizeRequest) bool {
	if s.hook == nil {
		return true
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	type outcome struct {
		ok  bool
		err error
	}
	ch := make(chan outcome, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				ch <- outcome{err: fmt.Errorf("hook panicked: %v", p)}
			}
		}()
		ok, err := s.hook.BeforeResize(ctx, req)
		ch <- outcome{ok: ok, err: err}
	}()
	select {
	case <-ctx.Done():
		s.logger.Error("before-resize hook timed out", "column", req.Column, "error", ctx.Err())
		return false
	case out := <-ch:
		if out.err != nil {
			s.logger.Error("before-resize hook failed", "column", req.Column, "error", out.err)
			return false
		}
		if !out.ok {
			s.logger.Debug("before-resize hook vetoed resize", "column", req.Column)
		}
		return out.ok
	}
}
