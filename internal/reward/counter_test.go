package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCounter_Defaults(t *testing.T) {
	c := NewCounter(0)
	assert.Equal(t, DefaultTasksPerStage, c.PerStage())
	assert.Equal(t, 3, c.Remaining())
	assert.Equal(t, 0, c.Stage())
	assert.Equal(t, 0, c.Used())
	assert.InDelta(t, 1.0, c.Scale(), 1e-9)
}

func TestCounter_Milestone(t *testing.T) {
	c := NewCounter(3)

	_, grown := c.OnTaskCompleted()
	assert.False(t, grown)
	_, grown = c.OnTaskCompleted()
	assert.False(t, grown)
	assert.Equal(t, 1, c.Remaining())
	assert.Equal(t, 2, c.Used())

	ev, grown := c.OnTaskCompleted()
	assert.True(t, grown)
	assert.Equal(t, StageGrown{Stage: 1}, ev)
	assert.Equal(t, 1, c.Stage())
	assert.Equal(t, 3, c.Remaining(), "counter resets together with the stage increment")

	// A fourth completion does not grow until two more follow
	_, grown = c.OnTaskCompleted()
	assert.False(t, grown)
	_, grown = c.OnTaskCompleted()
	assert.False(t, grown)
	assert.Equal(t, 1, c.Stage())

	ev, grown = c.OnTaskCompleted()
	assert.True(t, grown)
	assert.Equal(t, 2, ev.Stage)
	assert.InDelta(t, 1.2, c.Scale(), 1e-9)
}

func TestCounter_CustomThreshold(t *testing.T) {
	c := NewCounter(1)
	for i := 1; i <= 4; i++ {
		ev, grown := c.OnTaskCompleted()
		assert.True(t, grown)
		assert.Equal(t, i, ev.Stage)
		assert.Equal(t, 1, c.Remaining())
	}
}
