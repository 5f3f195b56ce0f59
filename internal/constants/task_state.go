package constants

// TaskState is the single-character workflow state stored on a task.
type TaskState string

const (
	StatePending  TaskState = "P"
	StateWaiting  TaskState = "W"
	StateAssigned TaskState = "A"
	StateDone     TaskState = "D"
)

// Decision is a charity's answer to a pending assignment request.
type Decision string

const (
	DecisionAccept Decision = "A"
	DecisionReject Decision = "R"
)
