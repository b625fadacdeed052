package pool

// State is the lifecycle stage of a worker handle.
type State int32

const (
	// StateCreated: the worker thread exists and is parked.
	StateCreated State = iota
	// StateConfigured: affinity and priority have been applied.
	StateConfigured
	// StateRunning: the worker was resumed and is executing its task.
	StateRunning
	// StateDone: the task returned, with or without an error.
	StateDone
	// StateAborted: the worker was released without running its task.
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateConfigured:
		return "configured"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}
