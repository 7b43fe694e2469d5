package domain

// EditIntent names the post-completion command a free-form edit resolved
// to. Intents are transient routing results and are never persisted.
type EditIntent string

const (
	IntentSetBrand     EditIntent = "set-brand"
	IntentSetHero      EditIntent = "set-hero"
	IntentSetSubheader EditIntent = "set-subheader"
	IntentAddPill      EditIntent = "add-pill"
	IntentSetTone      EditIntent = "set-tone"
	IntentUnrecognized EditIntent = "unrecognized"
)
