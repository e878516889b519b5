package tui

import (
	"github.com/matheuskafuri/aidash/internal/repository"
)

type loadDoneMsg struct {
	result repository.Result
	err    error
}

type autoplayMsg struct {
	gen uint64
}

// feedChangedMsg is sent when the watched feed file was rewritten.
type feedChangedMsg struct{}

type openErrMsg struct {
	err error
}
