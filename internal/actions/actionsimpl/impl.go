package actionsimpl

import (
	"io"
	"os"
	"sync"

	"github.com/orgball2608/telegram-notify/internal/actions"
	"github.com/orgball2608/telegram-notify/pkg/logger"
	"github.com/sethvargo/go-githubactions"
)

type Opts struct {
	Out    io.Writer
	Logger logger.Logger
	// Getenv defaults to os.Getenv. The event path and name are read through it.
	Getenv func(key string) string
}

type ActionsImpl struct {
	Action *githubactions.Action
	Out    io.Writer
	Logger logger.Logger

	mu     sync.Mutex
	failed bool
}

func New(opts Opts) *ActionsImpl {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	return &ActionsImpl{
		Action: githubactions.New(
			githubactions.WithWriter(opts.Out),
			githubactions.WithGetenv(getenv),
		),
		Out:    opts.Out,
		Logger: opts.Logger,
	}
}

var _ actions.Runner = (*ActionsImpl)(nil)

func (a *ActionsImpl) SetFailed(message string) {
	a.mu.Lock()
	a.failed = true
	a.mu.Unlock()

	a.Action.Errorf("%s", message)
}

func (a *ActionsImpl) Failed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.failed
}

func (a *ActionsImpl) Mask(value string) {
	if value == "" {
		return
	}
	a.Action.AddMask(value)
}

func (a *ActionsImpl) Group(name string) {
	a.Action.Group(name)
}

func (a *ActionsImpl) EndGroup() {
	a.Action.EndGroup()
}

// SetLogger swaps the logger once the configured one is available.
func (a *ActionsImpl) SetLogger(log logger.Logger) {
	a.Logger = log
}
