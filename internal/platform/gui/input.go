package gui

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/daruma/internal/core"
)

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL}
	quitKeys  = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}
)

// MapKeys adds the actions for keys pressed this tick to frame.
// Any key other than quit also counts as "any key".
func MapKeys(pressed []ebiten.Key, frame *core.InputFrame) {
	for _, k := range pressed {
		switch {
		case slices.Contains(quitKeys, k):
			continue
		case slices.Contains(leftKeys, k):
			frame.Set(core.ActionLeft)
		case slices.Contains(rightKeys, k):
			frame.Set(core.ActionRight)
		case k == ebiten.KeyP:
			frame.Set(core.ActionPause)
		}
		frame.Set(core.ActionAny)
	}
}

func quitRequested(pressed []ebiten.Key) bool {
	return slices.ContainsFunc(pressed, func(k ebiten.Key) bool {
		return slices.Contains(quitKeys, k)
	})
}
