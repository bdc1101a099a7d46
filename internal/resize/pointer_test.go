package resize

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMouseAdapter_Translate(t *testing.T) {
	tests := []struct {
		name    string
		msg     tea.MouseMsg
		originX int
		want    PointerEvent
		wantOK  bool
	}{
		{
			name:   "left press",
			msg:    tea.MouseMsg{X: 42, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			want:   PointerEvent{ID: MousePointer, Kind: PointerDown, X: 42},
			wantOK: true,
		},
		{
			name:    "press translated to grid-local coordinates",
			msg:     tea.MouseMsg{X: 42, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			originX: 10,
			want:    PointerEvent{ID: MousePointer, Kind: PointerDown, X: 32},
			wantOK:  true,
		},
		{
			name:   "motion",
			msg:    tea.MouseMsg{X: 5, Action: tea.MouseActionMotion},
			want:   PointerEvent{ID: MousePointer, Kind: PointerMove, X: 5},
			wantOK: true,
		},
		{
			name:   "left release",
			msg:    tea.MouseMsg{X: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
			want:   PointerEvent{ID: MousePointer, Kind: PointerUp, X: 7},
			wantOK: true,
		},
		{
			name:   "right press ignored",
			msg:    tea.MouseMsg{X: 42, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			wantOK: false,
		},
		{
			name:   "wheel ignored",
			msg:    tea.MouseMsg{X: 42, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := NewMouseAdapter(0)

			got, ok := adapter.Translate(tt.msg, tt.originX)

			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMouseAdapter_doubleClick(t *testing.T) {
	adapter := NewMouseAdapter(0)
	now := time.Now()
	adapter.now = func() time.Time { return now }

	press := tea.MouseMsg{X: 42, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	first, ok := adapter.Translate(press, 0)
	require.True(t, ok)
	assert.Equal(t, PointerDown, first.Kind)

	now = now.Add(100 * time.Millisecond)
	second, ok := adapter.Translate(press, 0)
	require.True(t, ok)
	assert.Equal(t, PointerDouble, second.Kind)

	// A third press starts a fresh pair.
	now = now.Add(100 * time.Millisecond)
	third, ok := adapter.Translate(press, 0)
	require.True(t, ok)
	assert.Equal(t, PointerDown, third.Kind)
}

func TestMouseAdapter_slowSecondClickIsNotDouble(t *testing.T) {
	adapter := NewMouseAdapter(0)
	now := time.Now()
	adapter.now = func() time.Time { return now }

	press := tea.MouseMsg{X: 42, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	_, _ = adapter.Translate(press, 0)
	now = now.Add(time.Second)
	second, ok := adapter.Translate(press, 0)

	require.True(t, ok)
	assert.Equal(t, PointerDown, second.Kind)
}

func TestMouseAdapter_movedSecondClickIsNotDouble(t *testing.T) {
	adapter := NewMouseAdapter(0)
	now := time.Now()
	adapter.now = func() time.Time { return now }

	_, _ = adapter.Translate(tea.MouseMsg{X: 42, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, 0)
	now = now.Add(100 * time.Millisecond)
	second, ok := adapter.Translate(tea.MouseMsg{X: 50, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, 0)

	require.True(t, ok)
	assert.Equal(t, PointerDown, second.Kind)
}

func TestTouchAdapter_singleTouchParity(t *testing.T) {
	adapter := NewTouchAdapter(0)

	down, ok := adapter.Translate(Touch{Contact: 0, Phase: TouchBegan, X: 100})
	require.True(t, ok)
	assert.Equal(t, PointerDown, down.Kind)

	move, ok := adapter.Translate(Touch{Contact: 0, Phase: TouchMoved, X: 150})
	require.True(t, ok)
	assert.Equal(t, PointerMove, move.Kind)
	assert.Equal(t, float64(150), move.X)

	up, ok := adapter.Translate(Touch{Contact: 0, Phase: TouchEnded, X: 150})
	require.True(t, ok)
	assert.Equal(t, PointerUp, up.Kind)

	// Same stream, same pointer ID throughout.
	assert.Equal(t, down.ID, move.ID)
	assert.Equal(t, down.ID, up.ID)
}

func TestTouchAdapter_cancelledContact(t *testing.T) {
	adapter := NewTouchAdapter(0)

	_, _ = adapter.Translate(Touch{Contact: 0, Phase: TouchBegan, X: 100})
	got, ok := adapter.Translate(Touch{Contact: 0, Phase: TouchCancelled, X: 120})

	require.True(t, ok)
	assert.Equal(t, PointerCancel, got.Kind)
}

func TestTouchAdapter_multiTouchIsNotAResize(t *testing.T) {
	adapter := NewTouchAdapter(0)

	down, ok := adapter.Translate(Touch{Contact: 0, Phase: TouchBegan, X: 100})
	require.True(t, ok)

	// Second finger lands: the first contact's gesture is cancelled.
	cancel, ok := adapter.Translate(Touch{Contact: 1, Phase: TouchBegan, X: 200})
	require.True(t, ok)
	assert.Equal(t, PointerCancel, cancel.Kind)
	assert.Equal(t, down.ID, cancel.ID)

	// Everything else is suppressed until all contacts lift.
	_, ok = adapter.Translate(Touch{Contact: 0, Phase: TouchMoved, X: 110})
	assert.False(t, ok)
	_, ok = adapter.Translate(Touch{Contact: 1, Phase: TouchMoved, X: 210})
	assert.False(t, ok)
	_, ok = adapter.Translate(Touch{Contact: 1, Phase: TouchEnded, X: 210})
	assert.False(t, ok)
	_, ok = adapter.Translate(Touch{Contact: 0, Phase: TouchEnded, X: 110})
	assert.False(t, ok)

	// A fresh single contact resizes again.
	fresh, ok := adapter.Translate(Touch{Contact: 2, Phase: TouchBegan, X: 100})
	require.True(t, ok)
	assert.Equal(t, PointerDown, fresh.Kind)
}

func TestTouchAdapter_doubleTap(t *testing.T) {
	adapter := NewTouchAdapter(0)
	now := time.Now()
	adapter.now = func() time.Time { return now }

	_, _ = adapter.Translate(Touch{Contact: 0, Phase: TouchBegan, X: 100})
	_, _ = adapter.Translate(Touch{Contact: 0, Phase: TouchEnded, X: 100})

	now = now.Add(150 * time.Millisecond)
	second, ok := adapter.Translate(Touch{Contact: 0, Phase: TouchBegan, X: 100})

	require.True(t, ok)
	assert.Equal(t, PointerDouble, second.Kind)
}
