package resize

import (
	"github.com/mthorpe/grip/internal/resource"
)

// Session is the ephemeral record of an in-progress drag. At most one session
// exists per engine; its owner is the Service, which creates it when a drag
// is armed and destroys it on commit or cancellation.
type Session struct {
	ID             resource.ID
	Column         int
	PointerOriginX float64
	OriginalWidth  float64

	// pointer identifies the input stream that armed the session; events from
	// other streams are ignored for its duration.
	pointer PointerID
}

func newSession(col int, ev PointerEvent, originalWidth float64) *Session {
	return &Session{
		ID:             resource.NewID(resource.Session),
		Column:         col,
		PointerOriginX: ev.X,
		OriginalWidth:  originalWidth,
		pointer:        ev.ID,
	}
}
