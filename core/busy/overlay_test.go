package busy

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlay_StartsHidden(t *testing.T) {
	o := NewOverlay(nil)
	assert.False(t, o.Visible())
}

func TestOverlay_ShowHideIdempotent(t *testing.T) {
	var transitions []bool
	o := NewOverlay(func(visible bool) {
		transitions = append(transitions, visible)
	})

	o.Show()
	o.Show()
	assert.True(t, o.Visible())

	o.Hide()
	o.Hide()
	o.Hide()
	assert.False(t, o.Visible())

	assert.Equal(t, []bool{true, false}, transitions)
}

func TestOverlay_HideWithoutShow(t *testing.T) {
	calls := 0
	o := NewOverlay(func(bool) { calls++ })

	o.Hide()

	assert.False(t, o.Visible())
	assert.Equal(t, 0, calls)
}

func TestOverlay_ConcurrentUse(t *testing.T) {
	o := NewOverlay(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o.Show()
			_ = o.Visible()
			o.Hide()
		}()
	}
	wg.Wait()

	assert.False(t, o.Visible())
}
