// Package printing renders a document to plain text and hands it to the
// platform print pipeline.
package printing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bethropolis/codepad/internal/logger"
)

// ErrPrint wraps failures of the print command.
var ErrPrint = errors.New("could not print")

// Job describes one print request.
type Job struct {
	Title       string
	Lines       []string
	TabWidth    int
	LineNumbers bool
	// FontSize is the editor zoom level; it selects the print pitch.
	FontSize int
}

// Printer sends a job to a printer.
type Printer interface {
	Print(ctx context.Context, job Job) error
}

// Runner executes name with args, feeding stdin. Returns combined output.
type Runner func(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error)

// ExecRunner runs the command with os/exec.
func ExecRunner(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = bytes.NewReader(stdin)
	return cmd.CombinedOutput()
}

// CommandPrinter pipes the rendered job to an external command such as lpr.
// Args may contain the placeholders {title} and {cpi}.
type CommandPrinter struct {
	Command string
	Args    []string
	Run     Runner
}

// DefaultCommand and DefaultArgs describe the lpr invocation.
const DefaultCommand = "lpr"

// DefaultArgs returns the default lpr arguments.
func DefaultArgs() []string {
	return []string{"-T", "{title}", "-o", "cpi={cpi}"}
}

// NewCommandPrinter returns a printer running command; empty values fall
// back to lpr defaults.
func NewCommandPrinter(command string, args []string) *CommandPrinter {
	if command == "" {
		command = DefaultCommand
		if args == nil {
			args = DefaultArgs()
		}
	}
	return &CommandPrinter{Command: command, Args: args, Run: ExecRunner}
}

// Print renders job and runs the command with the text on stdin.
func (p *CommandPrinter) Print(ctx context.Context, job Job) error {
	run := p.Run
	if run == nil {
		run = ExecRunner
	}
	args := expandArgs(p.Args, job)
	logger.DebugTagf("print", "Printing %q via %s %v", job.Title, p.Command, args)

	out, err := run(ctx, []byte(Render(job)), p.Command, args...)
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("%w: %s: %w", ErrPrint, msg, err)
		}
		return fmt.Errorf("%w: %w", ErrPrint, err)
	}
	return nil
}

func expandArgs(args []string, job Job) []string {
	r := strings.NewReplacer(
		"{title}", job.Title,
		"{cpi}", strconv.Itoa(CPI(job.FontSize)),
	)
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = r.Replace(a)
	}
	return out
}

// CPI maps a font size in points to characters per inch. 12pt is the
// conventional 10 cpi pica; the result stays within 6..20.
func CPI(fontSize int) int {
	if fontSize <= 0 {
		return 10
	}
	cpi := (120 + fontSize/2) / fontSize
	if cpi < 6 {
		return 6
	}
	if cpi > 20 {
		return 20
	}
	return cpi
}

// Render returns the printable text: tabs expanded to tab stops and, when
// requested, each line prefixed with a right-aligned number.
func Render(job Job) string {
	tw := job.TabWidth
	if tw <= 0 {
		tw = 4
	}
	width := len(strconv.Itoa(len(job.Lines)))

	var b strings.Builder
	for i, line := range job.Lines {
		if job.LineNumbers {
			fmt.Fprintf(&b, "%*d  ", width, i+1)
		}
		b.WriteString(ExpandTabs(line, tw))
		b.WriteByte('\n')
	}
	return b.String()
}

// ExpandTabs replaces tabs with spaces up to the next multiple of width.
func ExpandTabs(line string, width int) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := width - col%width
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}
