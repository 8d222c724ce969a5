package complog

import "fmt"

// Task is the scoped, RAII-style logger the source's CLog class provided:
// constructing one announces and indents a nested unit of work, and closing
// it announces the exit and restores the indent. Go has no destructors, so
// the exit half that CLog's destructor performed automatically is instead
// an explicit Close, meant to be deferred immediately after NewTask returns.
type Task struct {
	logger *Logger
	name   string
}

// NewTask logs "Entering: <name>" and increases the indent depth for the
// the work done inside task, mirroring CLog's constructor/destructor pair.
func NewTask(l *Logger, name string) *Task {
	l.Log(fmt.Sprintf("Entering: %s\n", name), false)
	l.increaseIndent()
	return &Task{logger: l, name: name}
}

// Close logs "Leaving: <name>" and restores the indent depth. Call it with
// defer right after NewTask.
func (t *Task) Close() {
	t.logger.decreaseIndent()
	t.logger.Log(fmt.Sprintf("Leaving: %s\n", t.name), false)
}

// Log writes through to the task's logger, indented at the task's depth.
func (t *Task) Log(text string, isError bool) { t.logger.Log(text, isError) }
