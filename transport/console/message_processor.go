package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const notANumberMessage = "Please enter a whole number."

type styler func(strs ...string) string

type styles struct {
	title   styler
	err     styler
	outcome styler
}

func newStyles(color bool) styles {
	if !color {
		plain := func(strs ...string) string {
			return strings.Join(strs, " ")
		}

		return styles{title: plain, err: plain, outcome: plain}
	}

	return styles{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true).
			Render,
		err: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Render,
		outcome: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true).
			Render,
	}
}

// stickyWriter keeps the first write error and drops everything after it.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (that *stickyWriter) print(text string) {
	if that.err != nil {
		return
	}

	_, that.err = io.WriteString(that.w, text)
}

func (that *stickyWriter) println(text string) {
	that.print(text + "\n")
}

func (that *stickyWriter) printf(format string, args ...any) {
	that.print(fmt.Sprintf(format, args...))
}

func (that *Server) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			if that.readErr != nil {
				return "", fmt.Errorf("failed to read input: %w", that.readErr)
			}
			return "", ErrInputClosed
		}
		return line, nil
	}
}

// readInt - prompts until the player types a whole number.
func (that *Server) readInt(ctx context.Context, prompt string) (int, error) {
	log := that.logger.With("method", "readInt")

	for {
		that.out.print(prompt)

		line, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			log.Debug("input is not a number", "input", line, "error", err)
			that.out.println(that.styles.err(notANumberMessage))
			continue
		}

		return value, nil
	}
}
