// ABOUTME: Busy overlay state toggled around backend calls
// ABOUTME: Show and Hide are idempotent and safe for concurrent use

package busy

import "sync"

// Overlay is the full-screen blocking indicator
type Overlay struct {
	mu       sync.Mutex
	visible  bool
	onChange func(visible bool)
}

// NewOverlay creates a hidden overlay. onChange, if not nil, is called on
// every hidden/visible transition, never on redundant calls.
func NewOverlay(onChange func(visible bool)) *Overlay {
	return &Overlay{onChange: onChange}
}

// Show makes the overlay visible
func (o *Overlay) Show() {
	o.set(true)
}

// Hide removes the overlay
func (o *Overlay) Hide() {
	o.set(false)
}

// Visible reports whether the overlay is shown
func (o *Overlay) Visible() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.visible
}

func (o *Overlay) set(visible bool) {
	o.mu.Lock()
	if o.visible == visible {
		o.mu.Unlock()
		return
	}
	o.visible = visible
	hook := o.onChange
	o.mu.Unlock()

	if hook != nil {
		hook(visible)
	}
}
