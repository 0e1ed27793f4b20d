package cli

import (
	"fmt"
	"io"
)

// Console implements ports.Interactor on a plain writer
type Console struct {
	out io.Writer
}

// NewConsole creates a console writing notices to out
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Output(message string) {
	fmt.Fprintln(c.out, message)
}

func (c *Console) Warning(message string) {
	fmt.Fprintln(c.out, message)
}
