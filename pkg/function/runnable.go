package function

// Runnable is a task without arguments or result.
type Runnable func()

// Run calls the task.
func (r Runnable) Run() {
	r()
}

// Noop is a runnable that does nothing.
var Noop Runnable = func() {}
