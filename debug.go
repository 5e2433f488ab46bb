package main

import (
	"github.com/milk9111/ravenslike/console"
	"golang.design/x/clipboard"
)

// debugClipboard copies state dumps to the system clipboard. It is a no-op
// when no clipboard is available, e.g. on a headless machine.
type debugClipboard struct {
	ok bool
}

func newDebugClipboard() *debugClipboard {
	if err := clipboard.Init(); err != nil {
		console.Warnf("clipboard unavailable: %v", err)
		return &debugClipboard{}
	}
	return &debugClipboard{ok: true}
}

func (c *debugClipboard) Copy(s string) {
	if c == nil || !c.ok {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	console.Infof("copied debug state to clipboard")
}
