package console

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// moves flattens (column, row) pairs into the answers a player types.
func moves(pairs ...[2]int) []string {
	lines := make([]string, 0, len(pairs)*2)
	for _, pair := range pairs {
		lines = append(lines, strconv.Itoa(pair[0]), strconv.Itoa(pair[1]))
	}
	return lines
}

var xWinsColumn = [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}}

func runServer(t *testing.T, in io.Reader, opts Options) (string, error) {
	t.Helper()

	ctx, st := suite.New(t)
	controller := tictactoe.NewGameController(st.Logger, entity.NewBoard())

	out := &bytes.Buffer{}
	err := New(st.Logger, controller, in, out, opts).Start(ctx)

	return out.String(), err
}

func TestServer_Start(t *testing.T) {
	t.Run("X wins a column", func(t *testing.T) {
		// Given: a player typing the moves of a column win for X
		in := suite.Input(moves(xWinsColumn...)...)

		// When: the console runs a single game
		output, err := runServer(t, in, Options{})

		// Then: the game ends with X as the winner
		require.NoError(t, err)
		assert.Contains(t, output, welcomeMessage)
		assert.Contains(t, output, "It's X's turn.")
		assert.Contains(t, output, "It's O's turn.")
		assert.Contains(t, output, "XO \nXO \nX  \n")
		assert.Contains(t, output, "X is the winner!")
		assert.True(t, strings.HasSuffix(output, farewellMessage+"\n"))
		assert.NotContains(t, output, "Score:")
	})

	t.Run("Draw", func(t *testing.T) {
		// Given: a player filling the board with no column or row
		in := suite.Input(moves(
			[2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0},
			[2]int{1, 1}, [2]int{0, 1}, [2]int{2, 1},
			[2]int{1, 2}, [2]int{0, 2}, [2]int{2, 2},
		)...)

		// When: the console runs a single game
		output, err := runServer(t, in, Options{})

		// Then: the game ends in a draw
		require.NoError(t, err)
		assert.Contains(t, output, "XOX\nXOO\nOXX\n")
		assert.Contains(t, output, drawMessage)
		assert.NotContains(t, output, "is the winner!")
	})

	t.Run("Invalid move is reported and the same player retries", func(t *testing.T) {
		// Given: O tries to play on X's cell and then plays elsewhere
		lines := append([]string{"0", "0", "0", "0"}, moves(xWinsColumn[1:]...)...)

		// When: the console runs a single game
		output, err := runServer(t, suite.Input(lines...), Options{})

		// Then: the invalid move is shown and the game still finishes
		require.NoError(t, err)
		assert.Contains(t, output, "The position (0, 0) is not a valid move position.")
		assert.Equal(t, 3, strings.Count(output, "It's O's turn."))
		assert.Contains(t, output, "X is the winner!")
	})

	t.Run("Out of range move is reported", func(t *testing.T) {
		// Given: X types a column off the board
		lines := append([]string{"7", "1"}, moves(xWinsColumn...)...)

		// When: the console runs a single game
		output, err := runServer(t, suite.Input(lines...), Options{})

		// Then: the invalid move is shown
		require.NoError(t, err)
		assert.Contains(t, output, "The position (7, 1) is not a valid move position.")
	})

	t.Run("Non numeric input is re-prompted", func(t *testing.T) {
		// Given: X types a word before the first column
		lines := append([]string{"left"}, moves(xWinsColumn...)...)

		// When: the console runs a single game
		output, err := runServer(t, suite.Input(lines...), Options{})

		// Then: the player is asked again
		require.NoError(t, err)
		assert.Contains(t, output, notANumberMessage)
		assert.Contains(t, output, "X is the winner!")
	})

	t.Run("Replay plays another game and keeps score", func(t *testing.T) {
		// Given: two column wins for X with a yes in between and a no at the end
		lines := moves(xWinsColumn...)
		lines = append(lines, "maybe", "y")
		lines = append(lines, moves(xWinsColumn...)...)
		lines = append(lines, "n")

		// When: the console runs with replay enabled
		output, err := runServer(t, suite.Input(lines...), Options{Replay: true})

		// Then: two games are played and the score is shown
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(output, welcomeMessage))
		assert.Equal(t, 2, strings.Count(output, "X is the winner!"))
		assert.Contains(t, output, replayRetry)
		assert.Contains(t, output, "Score: X: 2, O: 0, draws: 0")
		assert.True(t, strings.HasSuffix(output, farewellMessage+"\n"))
	})

	t.Run("Input closed mid game", func(t *testing.T) {
		// Given: the player stops typing after one move
		in := suite.Input("1", "1")

		// When: the console runs
		output, err := runServer(t, in, Options{})

		// Then: ErrInputClosed is returned after saying goodbye
		require.ErrorIs(t, err, ErrInputClosed)
		assert.Contains(t, output, farewellMessage)
	})

	t.Run("Context canceled while waiting for input", func(t *testing.T) {
		// Given: input that never arrives
		reader, writer := io.Pipe()
		t.Cleanup(func() {
			_ = writer.Close()
		})

		_, st := suite.New(t)
		controller := tictactoe.NewGameController(st.Logger, entity.NewBoard())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: the console starts with a canceled context
		err := New(st.Logger, controller, reader, io.Discard, Options{}).Start(ctx)

		// Then: the context error is returned
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Colored output still carries the messages", func(t *testing.T) {
		// Given: color enabled
		in := suite.Input(moves(xWinsColumn...)...)

		// When: the console runs a single game
		output, err := runServer(t, in, Options{Color: true})

		// Then: the text is present
		require.NoError(t, err)
		assert.Contains(t, output, "Welcome to the Tic Tac Toe game!")
		assert.Contains(t, output, "X is the winner!")
	})
}
