// Package framework holds the static rhetorical taxonomies a presentation is
// built from: content angles (the body structure) and hook angles (the style
// of the opening slide). Definitions are immutable and looked up by name.
package framework

import (
	"fmt"

	"github.com/heartmarshall/fastslide-backend/internal/domain"
)

// Component is one named step of a content angle.
type Component struct {
	Key         string
	Label       string
	Description string
	Example     string
}

// ContentAngle describes a content framework and its ordered components.
type ContentAngle struct {
	Name        domain.ContentAngle
	Label       string
	Description string
	Components  []Component
}

// HookAngle describes an opening-slide style.
type HookAngle struct {
	Name        domain.HookAngle
	Label       string
	Description string
	Example     string
}

// ContentAngleByName returns the definition for name.
func ContentAngleByName(name domain.ContentAngle) (ContentAngle, error) {
	for _, a := range contentAngles {
		if a.Name == name {
			return a, nil
		}
	}
	return ContentAngle{}, fmt.Errorf("content angle %q: %w", name, domain.ErrLookup)
}

// HookAngleByName returns the definition for name.
func HookAngleByName(name domain.HookAngle) (HookAngle, error) {
	for _, h := range hookAngles {
		if h.Name == name {
			return h, nil
		}
	}
	return HookAngle{}, fmt.Errorf("hook angle %q: %w", name, domain.ErrLookup)
}

// ContentAngles returns all content angle definitions in catalogue order.
func ContentAngles() []ContentAngle {
	out := make([]ContentAngle, len(contentAngles))
	copy(out, contentAngles)
	return out
}

// HookAngles returns all hook angle definitions in catalogue order.
func HookAngles() []HookAngle {
	out := make([]HookAngle, len(hookAngles))
	copy(out, hookAngles)
	return out
}
