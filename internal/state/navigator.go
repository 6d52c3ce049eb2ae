package state

import (
	"errors"
	"fmt"

	"gansputra.dev/internal/models"
)

// ErrUnknownSection is returned when selecting a section that does not exist
var ErrUnknownSection = errors.New("unknown section")

// DefaultVisibilityThreshold is the visible fraction at which a scrolled
// section claims active
const DefaultVisibilityThreshold = 0.5

// Navigator owns the active-section value
type Navigator struct {
	active    *Value[models.SectionID]
	threshold float64
}

// NewNavigator starts on the first section
func NewNavigator() *Navigator {
	return &Navigator{
		active:    NewValue(models.Sections[0].ID),
		threshold: DefaultVisibilityThreshold,
	}
}

// Active returns the current section
func (n *Navigator) Active() models.SectionID {
	return n.active.Get()
}

// Subscribe follows active-section changes
func (n *Navigator) Subscribe() (<-chan models.SectionID, func()) {
	return n.active.Subscribe()
}

// Select switches to the named section. It reports whether the active
// section changed; re-selecting the active section is a no-op.
func (n *Navigator) Select(id string) (bool, error) {
	sec, ok := models.ParseSection(id)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}

	changed := false
	n.active.Update(func(cur models.SectionID) models.SectionID {
		changed = cur != sec
		return sec
	})
	return changed, nil
}

// Observe records a visibility report from the scrolling layout. A section
// claims active once its visible ratio reaches the threshold.
func (n *Navigator) Observe(id string, ratio float64) (bool, error) {
	if _, ok := models.ParseSection(id); !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	if ratio < n.threshold {
		return false, nil
	}
	return n.Select(id)
}
