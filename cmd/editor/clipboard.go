package main

import (
	"errors"

	"golang.design/x/clipboard"
)

var errNoClipboard = errors.New("clipboard unavailable")

// Clipboard copies level JSON to and from the system clipboard.
type Clipboard struct {
	ok bool
}

func NewClipboard() (*Clipboard, error) {
	if err := clipboard.Init(); err != nil {
		return &Clipboard{}, err
	}
	return &Clipboard{ok: true}, nil
}

func (c *Clipboard) Write(data []byte) error {
	if c == nil || !c.ok {
		return errNoClipboard
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}

func (c *Clipboard) Read() ([]byte, error) {
	if c == nil || !c.ok {
		return nil, errNoClipboard
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return nil, errors.New("clipboard is empty")
	}
	return data, nil
}
