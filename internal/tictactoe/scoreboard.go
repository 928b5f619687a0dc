package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Scoreboard counts finished games for the current session only.
type Scoreboard struct {
	WinsX int
	WinsO int
	Draws int
}

// Record - counts a finished result, unfinished results are ignored.
func (that *Scoreboard) Record(result Result) {
	switch {
	case result.Status == entity.StatusWon && result.Winner == entity.PlayerX:
		that.WinsX++
	case result.Status == entity.StatusWon && result.Winner == entity.PlayerO:
		that.WinsO++
	case result.Status == entity.StatusDrawn:
		that.Draws++
	}
}

func (that *Scoreboard) Played() int {
	return that.WinsX + that.WinsO + that.Draws
}

func (that *Scoreboard) String() string {
	return fmt.Sprintf("X: %d, O: %d, draws: %d", that.WinsX, that.WinsO, that.Draws)
}
