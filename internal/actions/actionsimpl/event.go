package actionsimpl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/go-github/v66/github"
)

// LogEvent prints the triggering event payload inside a collapsed group and
// logs a one-line summary of it. Failures here never fail the step.
func (a *ActionsImpl) LogEvent() {
	ghctx, err := a.Action.Context()
	if err != nil {
		a.Logger.Warn("Failed to load workflow context", "error", err)
		return
	}
	if ghctx.EventPath == "" {
		a.Logger.Debug("No event payload available")
		return
	}

	payload, err := os.ReadFile(ghctx.EventPath)
	if err != nil {
		a.Logger.Warn("Failed to read event payload", "path", ghctx.EventPath, "error", err)
		return
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, payload, "", "  "); err != nil {
		a.Logger.Warn("Event payload is not valid JSON", "path", ghctx.EventPath, "error", err)
		return
	}

	a.Group("Event payload")
	if _, err := fmt.Fprintf(a.Out, "The event payload: %s\n", pretty.String()); err != nil {
		a.Logger.Error("Failed to write event payload", "error", err)
	}
	a.EndGroup()

	summary := summarizeEvent(ghctx.EventName, payload)
	a.Logger.Info("Triggered by event", summary...)
}

// summarizeEvent returns key/value pairs describing the event. Event types
// go-github does not know are reported by name only.
func summarizeEvent(name string, payload []byte) []any {
	kv := []any{"event", name}

	event, err := github.ParseWebHook(name, payload)
	if err != nil {
		return kv
	}

	switch e := event.(type) {
	case *github.PushEvent:
		kv = append(kv,
			"repository", e.GetRepo().GetFullName(),
			"ref", e.GetRef(),
			"actor", e.GetSender().GetLogin(),
			"head", e.GetHeadCommit().GetID(),
		)
	case *github.PullRequestEvent:
		kv = append(kv,
			"repository", e.GetRepo().GetFullName(),
			"action", e.GetAction(),
			"number", e.GetNumber(),
			"actor", e.GetSender().GetLogin(),
		)
	case *github.ReleaseEvent:
		kv = append(kv,
			"repository", e.GetRepo().GetFullName(),
			"action", e.GetAction(),
			"tag", e.GetRelease().GetTagName(),
			"actor", e.GetSender().GetLogin(),
		)
	case *github.WorkflowDispatchEvent:
		kv = append(kv,
			"repository", e.GetRepo().GetFullName(),
			"ref", e.GetRef(),
			"actor", e.GetSender().GetLogin(),
		)
	case *github.WorkflowRunEvent:
		kv = append(kv,
			"repository", e.GetRepo().GetFullName(),
			"workflow", e.GetWorkflowRun().GetName(),
			"conclusion", e.GetWorkflowRun().GetConclusion(),
		)
	default:
		kv = append(kv, "type", fmt.Sprintf("%T", event))
	}

	return kv
}
