package chat

// NearBottomThreshold is how close (in px) to the end of the message
// pane the user must be for auto-scroll to kick in.
const NearBottomThreshold = 150

// NearBottom reports whether the viewport is within the threshold of the
// bottom of the scrollback. Exactly at the threshold counts as away.
func NearBottom(scrollHeight, scrollTop, clientHeight float64) bool {
	return scrollHeight-scrollTop-clientHeight < NearBottomThreshold
}

// ShowScrollButton is the "jump to new message" affordance: shown only
// when the user has scrolled up past the threshold.
func ShowScrollButton(scrollHeight, scrollTop, clientHeight float64) bool {
	return !NearBottom(scrollHeight, scrollTop, clientHeight)
}
