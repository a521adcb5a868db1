package animation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"terrain-walk/internal/animation"
)

func TestController(t *testing.T) {
	t.Run("start and stop", func(t *testing.T) {
		var c animation.Controller
		rec := &animation.Recorder{}

		c.Update(rec, true)
		assert.Equal(t, []string{"loop run"}, rec.Calls)
		assert.True(t, c.Moving)

		rec.Reset()
		c.Update(rec, false)
		assert.Equal(t, []string{"stop", "pose walk 5"}, rec.Calls)
		assert.False(t, c.Moving)
		assert.Equal(t, "walk", rec.Posed)
		assert.Equal(t, 5, rec.Frame)
	})

	t.Run("no redundant restarts", func(t *testing.T) {
		var c animation.Controller
		rec := &animation.Recorder{}
		for i := 0; i < 10; i++ {
			c.Update(rec, true)
		}
		assert.Equal(t, []string{"loop run"}, rec.Calls)
	})

	t.Run("idle stays quiet", func(t *testing.T) {
		var c animation.Controller
		rec := &animation.Recorder{}
		for i := 0; i < 3; i++ {
			c.Update(rec, false)
		}
		assert.Empty(t, rec.Calls)
	})
}
