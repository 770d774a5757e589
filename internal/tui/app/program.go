package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/correcto/internal/logger"
)

// Run starts the interactive checker and blocks until the user quits or ctx
// is cancelled. Cancellation of ctx counts as a normal exit.
func Run(ctx context.Context, svc Checker, opts Options, log *logger.Logger, progOpts ...tea.ProgramOption) error {
	m := NewModel(svc, opts)
	defer m.cancel()

	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, progOpts...)
	p := tea.NewProgram(m, options...)

	log.Info("launching checker view")
	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		log.Info("checker view interrupted")
		return nil
	}
	if err != nil {
		log.Error(err, "checker view failed")
		return fmt.Errorf("failed to run checker view: %w", err)
	}

	if fm, ok := final.(Model); ok {
		fm.cancel()
	}
	log.Info("checker view closed")
	return nil
}
