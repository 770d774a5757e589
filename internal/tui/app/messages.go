package app

import (
	"github.com/alexisbeaulieu97/correcto/internal/checker"
	correctoerrors "github.com/alexisbeaulieu97/correcto/pkg/errors"
)

// Message types for the Bubble Tea update loop.

// checkCompletedMsg carries the formatted checker output.
type checkCompletedMsg struct {
	Report *checker.Report
}

// checkFailedMsg carries any failure of a check. The error is a
// *errors.CheckError or is treated as unexpected.
type checkFailedMsg struct {
	Err error
}

// NoticeKind selects the severity of a modal notice.
type NoticeKind int

const (
	NoticeWarning NoticeKind = iota
	NoticeError
)

// Notice is a modal message that must be dismissed before the view accepts
// other input.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

func noticeFromError(err error) *Notice {
	checkErr := correctoerrors.AsCheckError(err)
	kind := NoticeError
	if checkErr.Kind == correctoerrors.KindInputEmpty {
		kind = NoticeWarning
	}
	return &Notice{
		Kind:    kind,
		Title:   checkErr.Title(),
		Message: checkErr.Message,
	}
}
