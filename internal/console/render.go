package console

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/spf13/cast"
)

// clear wipes the terminal between screens.
func (c *Console) clear() {
	fmt.Fprint(c.out, "\033[2J\033[H")
}

func (c *Console) drawHeader(title string) {
	fmt.Fprintln(c.out, "╔══════════════════════════════════════════════════════════════╗")
	fmt.Fprintf(c.out, "║ %-60s ║\n", title)
	fmt.Fprintln(c.out, "╚══════════════════════════════════════════════════════════════╝")
}

func (c *Console) drawWidget(title, content string) {
	fmt.Fprintln(c.out, "┌───────────────────────────────┐")
	fmt.Fprintf(c.out, "│ %-29s │\n", title)
	fmt.Fprintf(c.out, "│ %-29s │\n", content)
	fmt.Fprintln(c.out, "└───────────────────────────────┘")
}

func (c *Console) drawAlert(message string) {
	fmt.Fprintf(c.out, " [!!!] ALERT: %s\n", message)
}

// prompt reads one trimmed line after printing a label.
func (c *Console) prompt(label string) string {
	fmt.Fprint(c.out, label)
	line, _ := c.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// promptInt reads an integer; the bool result is false on bad input.
func (c *Console) promptInt(label string) (int, bool) {
	n, err := cast.ToIntE(c.prompt(label))
	return n, err == nil
}

// promptFloat reads a decimal; the bool result is false on bad input.
func (c *Console) promptFloat(label string) (float64, bool) {
	f, err := cast.ToFloat64E(c.prompt(label))
	return f, err == nil
}

// promptPassword reads a masked password when stdin is a terminal, falling
// back to a plain line read otherwise (tests, pipes).
func (c *Console) promptPassword(label string) string {
	fmt.Fprint(c.out, label)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(c.out)
		if err == nil {
			return strings.TrimSpace(string(raw))
		}
	}
	line, _ := c.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// pause waits for the operator before returning to the previous screen.
func (c *Console) pause() {
	c.prompt("\nPress ENTER to continue...")
}

func newReader() *bufio.Reader {
	return bufio.NewReader(os.Stdin)
}
