package actions

// Runner is the workflow runner as seen from inside a step: it takes
// workflow commands on stdout and decides the step outcome.
type Runner interface {
	// SetFailed records a failure; the step exits non-zero once it finishes.
	SetFailed(message string)
	Failed() bool

	// Mask hides value in every later log line.
	Mask(value string)

	Group(name string)
	EndGroup()

	// LogEvent dumps the payload of the event that triggered the workflow.
	LogEvent()
}
