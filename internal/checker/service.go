package checker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/correcto/internal/config"
	"github.com/alexisbeaulieu97/correcto/internal/logger"
	correctoerrors "github.com/alexisbeaulieu97/correcto/pkg/errors"
)

// Options configures a Service.
type Options struct {
	Path    string
	Args    []string
	WorkDir string
	Timeout time.Duration
	Indent  string
}

// OptionsFromConfig builds Options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		cfg = config.Default()
	}
	return Options{
		Path:    cfg.Checker.Path,
		Args:    append([]string(nil), cfg.Checker.Args...),
		WorkDir: cfg.Checker.WorkDir,
		Timeout: cfg.Checker.Timeout.Std(),
		Indent:  cfg.UI.Indent,
	}
}

// Report is the outcome of a successful check.
type Report struct {
	InvocationID string
	Result       Result
	Lines        []string
	Misspelled   int
	Suggestions  int
}

// Text joins the display lines with newlines.
func (r *Report) Text() string {
	if r == nil {
		return ""
	}
	return strings.Join(r.Lines, "\n")
}

// Summary describes the counts in one sentence.
func (r *Report) Summary() string {
	if r == nil || r.Misspelled == 0 {
		return "No misspellings reported."
	}
	return fmt.Sprintf("%s, %s.", plural(r.Misspelled, "misspelled word"), plural(r.Suggestions, "suggestion"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// Service orchestrates one spell check: it validates the input, invokes the
// checker through a Runner and turns the output into a Report.
type Service struct {
	runner Runner
	opts   Options
	log    *logger.Logger
}

// NewService creates a Service. A nil runner defaults to ExecRunner.
func NewService(runner Runner, opts Options, log *logger.Logger) *Service {
	if runner == nil {
		runner = NewExecRunner()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = config.DefaultTimeout
	}
	if opts.Path == "" {
		opts.Path = config.DefaultCheckerPath
	}
	if opts.Indent == "" {
		opts.Indent = config.DefaultIndent
	}
	return &Service{runner: runner, opts: opts, log: log.With("checker")}
}

// Timeout returns the per-invocation deadline.
func (s *Service) Timeout() time.Duration {
	return s.opts.Timeout
}

// Check runs the external checker on text.
//
// Every failure is returned as a *errors.CheckError: InputEmpty when text is
// blank (the checker is not started), ProcessFailed on a non-zero exit,
// Timeout when the deadline passes, and Unexpected for anything else,
// including a panic inside the runner.
func (s *Service) Check(ctx context.Context, text string) (report *Report, err error) {
	if strings.TrimSpace(text) == "" {
		return nil, correctoerrors.NewInputEmptyError()
	}

	id := uuid.NewString()
	log := s.log.WithFields(map[string]any{"invocation_id": id, "checker": s.opts.Path})

	defer func() {
		if r := recover(); r != nil {
			report = nil
			err = correctoerrors.NewUnexpectedError(fmt.Errorf("checker panicked: %v", r))
			log.Error(err, "check aborted")
		}
	}()

	runCtx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	log.WithFields(map[string]any{"input_bytes": len(text), "timeout": s.opts.Timeout.String()}).Debug("starting checker")

	res, runErr := s.runner.Run(runCtx, Invocation{
		Path:    s.opts.Path,
		Args:    s.opts.Args,
		WorkDir: s.opts.WorkDir,
		Input:   text,
	})

	if runErr != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			log.Warn("checker timed out")
			return nil, correctoerrors.NewTimeoutError(runErr)
		}
		log.Error(runErr, "checker could not be run")
		return nil, correctoerrors.NewUnexpectedError(runErr)
	}

	log = log.WithFields(map[string]any{"exit_code": res.ExitCode, "duration_ms": res.Duration.Milliseconds()})

	if res.ExitCode != 0 {
		log.Warn("checker reported failure")
		return nil, correctoerrors.NewProcessFailedError(res.ExitCode, res.Stderr)
	}

	report = &Report{
		InvocationID: id,
		Result:       res,
		Lines:        Format(res.Stdout, s.opts.Indent),
	}
	for _, line := range splitLines(res.Stdout) {
		switch Classify(line) {
		case LineHeader:
			report.Misspelled++
		case LineSuggestion:
			report.Suggestions++
		}
	}

	log.WithFields(map[string]any{"misspelled": report.Misspelled, "suggestions": report.Suggestions}).Info("check complete")
	return report, nil
}
