package render

import (
	"errors"
	"fmt"
)

// Action selects what happens to the finished document: a file download,
// a print dialog, or an inline view. It never affects document content.
type Action string

const (
	ActionDownload Action = "download"
	ActionPrint    Action = "print"
	ActionOpen     Action = "open"
)

// ErrUnknownAction is returned for an action outside {download, print, open}.
var ErrUnknownAction = errors.New("unknown render action")

// ParseAction maps a wire value onto an Action. The empty string defaults
// to download.
func ParseAction(s string) (Action, error) {
	switch s {
	case "", string(ActionDownload):
		return ActionDownload, nil
	case string(ActionPrint):
		return ActionPrint, nil
	case string(ActionOpen):
		return ActionOpen, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}

// Filename is the download name for an invoice document.
func Filename(invoiceNumber string) string {
	return "invoice-" + invoiceNumber + ".pdf"
}
