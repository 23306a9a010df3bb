package engine

// Task is a resumable unit of work advanced once per tick by its owner.
// Step returns true once the task has finished.
type Task interface {
	Step(deltaTime float32) (done bool)
}

// Canceler is implemented by tasks that must settle state when they are
// superseded before finishing.
type Canceler interface {
	Cancel()
}

// TaskFunc adapts a plain function to Task.
type TaskFunc func(deltaTime float32) bool

func (f TaskFunc) Step(deltaTime float32) bool { return f(deltaTime) }

// TaskSlot holds at most one running task. Starting a task cancels the one
// already in the slot; tasks are never queued.
type TaskSlot struct {
	task Task
	gen  uint64
}

// Start cancels any running task and installs t.
func (s *TaskSlot) Start(t Task) {
	s.Cancel()
	s.task = t
	s.gen++
}

// Cancel stops the running task, if any, and reports whether one was running.
func (s *TaskSlot) Cancel() bool {
	t := s.task
	if t == nil {
		return false
	}
	s.task = nil
	if c, ok := t.(Canceler); ok {
		c.Cancel()
	}
	return true
}

func (s *TaskSlot) Running() bool {
	return s.task != nil
}

// Advance steps the running task once. A task that replaced itself (or was
// cancelled) from inside Step is left alone.
func (s *TaskSlot) Advance(deltaTime float32) {
	t := s.task
	if t == nil {
		return
	}
	gen := s.gen
	if t.Step(deltaTime) && s.gen == gen && s.task != nil {
		s.task = nil
	}
}
