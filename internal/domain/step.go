package domain

// BuildStep is the ordinal stage of the guided intake sequence. It is
// monotonic non-decreasing; a step repeats only when its extractor found
// nothing usable.
type BuildStep int

const (
	StepBrand BuildStep = iota
	StepHero
	StepCatalog
	StepBackground
	StepTone
	StepComplete
)

// Complete reports whether the guided sequence has finished and free-form
// editing is active.
func (s BuildStep) Complete() bool { return s >= StepComplete }

func (s BuildStep) String() string {
	switch s {
	case StepBrand:
		return "brand"
	case StepHero:
		return "hero"
	case StepCatalog:
		return "catalog"
	case StepBackground:
		return "background"
	case StepTone:
		return "tone"
	case StepComplete:
		return "complete"
	default:
		return "unknown"
	}
}
