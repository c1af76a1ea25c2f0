package ui

import (
	"github.com/samdwyer/questfield/internal/audio"
	"github.com/samdwyer/questfield/internal/logger"
)

// Bell is an audio sink for terminals: notable sound effects ring the
// bell, everything is logged at trace level.
type Bell struct {
	ring func()
}

// NewBell returns a sink ringing the bell of screen.
func NewBell(screen *Screen) *Bell {
	return &Bell{ring: screen.Beep}
}

// Play rings for encounters and battle outcomes. Music is only logged.
func (b *Bell) Play(k audio.Kind) {
	logger.Component("audio").WithField("cue", k).Trace("play")
	if k.IsMusic() {
		return
	}
	switch k {
	case audio.SEEncounter, audio.SEWin, audio.SELose, audio.SEItem:
		b.ring()
	}
}

// Stop only logs; the bell cannot be stopped.
func (b *Bell) Stop(k audio.Kind) {
	logger.Component("audio").WithField("cue", k).Trace("stop")
}
