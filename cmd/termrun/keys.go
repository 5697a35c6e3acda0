package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/minimap/system"
)

// Terminals report key repeats but no key releases, so a press counts as
// held for holdFrames ticks. Auto-repeat keeps refreshing it.
const holdFrames = 8

type key int

const (
	keyNone key = iota
	keyLeft
	keyRight
	keyJump
	keyAction
	keySave
	keyLoad
	keyQuit
)

func keyOf(ev *tcell.EventKey) key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return keyLeft
	case tcell.KeyRight:
		return keyRight
	case tcell.KeyUp:
		return keyJump
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return keyQuit
	case tcell.KeyRune:
		return keyOfRune(ev.Rune())
	}
	return keyNone
}

func keyOfRune(r rune) key {
	switch r {
	case 'a', 'A':
		return keyLeft
	case 'd', 'D':
		return keyRight
	case ' ', 'w', 'W':
		return keyJump
	case 'e', 'E':
		return keyAction
	case 's', 'S':
		return keySave
	case 'l', 'L':
		return keyLoad
	case 'q', 'Q':
		return keyQuit
	}
	return keyNone
}

type heldKeys struct {
	left, right, jump int
	action            bool
}

func (h *heldKeys) press(k key) {
	switch k {
	case keyLeft:
		h.left, h.right = holdFrames, 0
	case keyRight:
		h.right, h.left = holdFrames, 0
	case keyJump:
		h.jump = holdFrames
	case keyAction:
		h.action = true
	}
}

// frame returns this tick's input and ages the held keys.
func (h *heldKeys) frame() system.Input {
	in := system.Input{
		Left:   h.left > 0,
		Right:  h.right > 0,
		Jump:   h.jump > 0,
		Action: h.action,
	}
	h.left = max(h.left-1, 0)
	h.right = max(h.right-1, 0)
	h.jump = max(h.jump-1, 0)
	h.action = false
	return in
}
