package main

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

// ErrClipboard indicates the system clipboard is unavailable.
var ErrClipboard = errors.New("clipboard unavailable")

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadText() ([]byte, error)
	WriteText(data []byte) error
	// WatchText delivers each new clipboard text until ctx is done.
	WatchText(ctx context.Context) (<-chan []byte, error)
}

// systemClipboard is the OS clipboard. Initialization happens on first use
// so commands that never touch the clipboard work without a display.
type systemClipboard struct {
	once    sync.Once
	initErr error
}

func newSystemClipboard() *systemClipboard {
	return &systemClipboard{}
}

func (c *systemClipboard) init() error {
	c.once.Do(func() {
		c.initErr = clipboard.Init()
	})
	if c.initErr != nil {
		return fmt.Errorf("%w: %v", ErrClipboard, c.initErr)
	}
	return nil
}

func (c *systemClipboard) ReadText() ([]byte, error) {
	if err := c.init(); err != nil {
		return nil, err
	}
	return clipboard.Read(clipboard.FmtText), nil
}

func (c *systemClipboard) WriteText(data []byte) error {
	if err := c.init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}

func (c *systemClipboard) WatchText(ctx context.Context) (<-chan []byte, error) {
	if err := c.init(); err != nil {
		return nil, err
	}
	return clipboard.Watch(ctx, clipboard.FmtText), nil
}

var _ Clipboard = (*systemClipboard)(nil)
