package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	start := State{Kind: KindStart}
	play := State{Kind: KindGame}
	pause := State{Kind: KindPause}
	win := State{Kind: KindWin}
	lose := State{Kind: KindLose}
	boardFromStart := State{Kind: KindScoreboard, ReturnTo: KindStart}
	boardFromPause := State{Kind: KindScoreboard, ReturnTo: KindPause}

	tests := []struct {
		from State
		ev   Event
		want State
	}{
		{start, EventStart, play},
		{start, EventScoreboard, boardFromStart},
		{start, EventSelect, start},
		{start, EventWin, start},
		{start, EventLose, start},

		{play, EventStart, pause},
		{play, EventWin, win},
		{play, EventLose, lose},
		{play, EventSelect, play},
		{play, EventScoreboard, play},

		{pause, EventStart, play},
		{pause, EventSelect, start},
		{pause, EventScoreboard, boardFromPause},
		{pause, EventWin, pause},
		{pause, EventLose, pause},

		{win, EventStart, start},
		{win, EventSelect, win},
		{win, EventScoreboard, win},
		{lose, EventStart, start},
		{lose, EventLose, lose},

		{boardFromStart, EventScoreboard, start},
		{boardFromPause, EventScoreboard, pause},
		{boardFromStart, EventStart, boardFromStart},
		{boardFromPause, EventSelect, boardFromPause},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.ev.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Transition(tt.from, tt.ev))
		})
	}
}

func TestTransition_IsTotal(t *testing.T) {
	for k := KindStart; k <= KindScoreboard; k++ {
		for e := EventStart; e <= EventLose; e++ {
			next := Transition(State{Kind: k, ReturnTo: KindStart}, e)
			assert.NotEqual(t, "unknown", next.Kind.String())
		}
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "pause", State{Kind: KindPause}.String())
	assert.Equal(t, "scoreboard(start)", State{Kind: KindScoreboard}.String())
	assert.Equal(t, "unknown", Kind(17).String())
	assert.Equal(t, "unknown", Event(-1).String())
}
