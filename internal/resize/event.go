package resize

// WidthChange is the event payload for a committed column width change,
// published once per completed resize: drag commit, auto-fit, or programmatic
// call. No event is published for a cancelled drag or a no-op commit.
type WidthChange struct {
	Column   int
	OldWidth float64
	NewWidth float64
}
