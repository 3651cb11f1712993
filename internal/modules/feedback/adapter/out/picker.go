package out

import (
	"math/rand/v2"

	feedbackout "hunttrack/internal/modules/feedback/port/out"
)

// RandomPicker varies the wording between refreshes.
type RandomPicker struct{}

func NewRandomPicker() feedbackout.MessagePicker {
	return RandomPicker{}
}

func (RandomPicker) Pick(_ string, options []string) string {
	return options[rand.IntN(len(options))]
}

// FirstPicker always returns the first text; used for stable output such as
// reports.
type FirstPicker struct{}

func (FirstPicker) Pick(_ string, options []string) string {
	return options[0]
}
