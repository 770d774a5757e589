package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/correcto/internal/checker"
	correctoerrors "github.com/alexisbeaulieu97/correcto/pkg/errors"
)

// Checker is the orchestrator the view dispatches checks to.
type Checker interface {
	Check(ctx context.Context, text string) (*checker.Report, error)
}

// checkCmd runs a check off the event loop. It always yields exactly one
// message, so the check button is re-enabled on every path.
func checkCmd(ctx context.Context, svc Checker, text string) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = checkFailedMsg{Err: correctoerrors.NewUnexpectedError(fmt.Errorf("check panicked: %v", r))}
			}
		}()

		if svc == nil {
			return checkFailedMsg{Err: correctoerrors.NewUnexpectedError(errors.New("no spell checker configured"))}
		}

		report, err := svc.Check(ctx, text)
		if err != nil {
			return checkFailedMsg{Err: err}
		}

		if report == nil {
			return checkFailedMsg{Err: correctoerrors.NewUnexpectedError(errors.New("spell checker produced no result"))}
		}

		return checkCompletedMsg{Report: report}
	}
}
