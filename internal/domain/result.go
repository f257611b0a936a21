package domain

type Step string

const (
	StepRetrieveImage Step = "retrieve-image"
	StepSendPhoto     Step = "send-photo"
	StepSendMessage   Step = "send-message"
	StepCleanup       Step = "cleanup"
)

type StepStatus int

const (
	StepSkipped StepStatus = iota
	StepSucceeded
	StepFailed
)

func (s StepStatus) String() string {
	switch s {
	case StepSucceeded:
		return "succeeded"
	case StepFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// DispatchResult is the raw reply of a Telegram call. It is only logged.
type DispatchResult struct {
	Method      string
	StatusCode  int
	Body        []byte
	OK          bool
	Description string
}

type StepResult struct {
	Step     Step
	Status   StepStatus
	Err      error
	Dispatch *DispatchResult
}

func Succeeded(step Step) StepResult {
	return StepResult{Step: step, Status: StepSucceeded}
}

func Failed(step Step, err error) StepResult {
	return StepResult{Step: step, Status: StepFailed, Err: err}
}

func Skipped(step Step) StepResult {
	return StepResult{Step: step, Status: StepSkipped}
}

func (r StepResult) OK() bool {
	return r.Status == StepSucceeded
}

// Report collects step results in execution order.
type Report struct {
	Steps []StepResult
}

func (r *Report) Add(res StepResult) {
	r.Steps = append(r.Steps, res)
}

func (r Report) Failed() bool {
	for _, s := range r.Steps {
		if s.Status == StepFailed {
			return true
		}
	}
	return false
}

// Result returns the last recorded result for step.
func (r Report) Result(step Step) (StepResult, bool) {
	for i := len(r.Steps) - 1; i >= 0; i-- {
		if r.Steps[i].Step == step {
			return r.Steps[i], true
		}
	}
	return StepResult{}, false
}
