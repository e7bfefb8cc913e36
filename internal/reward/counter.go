// Package reward tracks tree growth: every N task completions the tree
// reaches a new stage.
package reward

// DefaultTasksPerStage is the number of completions needed per growth stage
const DefaultTasksPerStage = 3

// StageGrown is emitted when the counter reaches a new stage
type StageGrown struct {
	Stage int
}

// Counter is the reward state machine. The zero value is not usable; call
// NewCounter.
type Counter struct {
	perStage  int
	remaining int
	stage     int
}

// NewCounter creates a counter that grows a stage every perStage completions.
// Values below 1 fall back to DefaultTasksPerStage.
func NewCounter(perStage int) *Counter {
	if perStage < 1 {
		perStage = DefaultTasksPerStage
	}
	return &Counter{
		perStage:  perStage,
		remaining: perStage,
	}
}

// OnTaskCompleted records one completion. It returns a StageGrown event when
// the completion finishes a stage. The reset happens in the same call, so
// Remaining never reports zero.
func (c *Counter) OnTaskCompleted() (StageGrown, bool) {
	c.remaining--
	if c.remaining > 0 {
		return StageGrown{}, false
	}

	c.stage++
	c.remaining = c.perStage
	return StageGrown{Stage: c.stage}, true
}

// Remaining returns completions left until the next stage
func (c *Counter) Remaining() int {
	return c.remaining
}

// Stage returns the number of stages grown so far
func (c *Counter) Stage() int {
	return c.stage
}

// PerStage returns the configured threshold
func (c *Counter) PerStage() int {
	return c.perStage
}

// Used returns how many droplets of the current stage are spent
func (c *Counter) Used() int {
	return c.perStage - c.remaining
}

// Scale is the visual tree scale for the current stage
func (c *Counter) Scale() float64 {
	return 1 + float64(c.stage)*0.1
}
