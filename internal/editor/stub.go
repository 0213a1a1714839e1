//go:build game

package editor

import (
	"github.com/mob-hanzawa/commonlib/internal/engine"
)

// Stub editor for game-only builds: panels compile out entirely.
type Editor struct {
	Active   bool
	Selected *engine.GameObject
}

func New(_ *engine.Scene) *Editor { return &Editor{} }

func (e *Editor) DrawUI() {}

func (e *Editor) DragOrigin() *engine.GameObject { return nil }
