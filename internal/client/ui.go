package client

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// UI is how the controller talks to the person behind it. The storefront
// equivalent is alert() and prompt(); the terminal client reads stdin.
type UI interface {
	// Prompt asks for a value. ok is false when the prompt was cancelled
	// (as opposed to submitted empty), which aborts the flow that asked.
	Prompt(label string) (value string, ok bool)

	// Notify shows a blocking user-facing notice.
	Notify(message string)
}

// TerminalUI implements UI over an io pair. EOF (ctrl-D) counts as
// cancelling the prompt.
type TerminalUI struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminalUI() *TerminalUI {
	return &TerminalUI{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

func (t *TerminalUI) Prompt(label string) (string, bool) {
	fmt.Fprintf(t.out, "%s: ", label)
	line, err := t.in.ReadString('\n')
	if err != nil {
		fmt.Fprintln(t.out)
		return "", false
	}
	return strings.TrimSpace(line), true
}

func (t *TerminalUI) Notify(message string) {
	fmt.Fprintln(t.out, message)
}
