package dispatch

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Printer writes the human-readable report lines. Safe for concurrent use.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewPrinter() *Printer {
	return NewPrinterTo(os.Stdout)
}

func NewPrinterTo(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Banner(pid int, signals []string) {
	p.printf("Program running. PID: %d\n", pid)
	p.printf("Send signals (%s) to interact.\n", strings.Join(signals, ", "))
}

func (p *Printer) Found(id int, data any) {
	p.printf("Received signal for id=%d, data=%v\n", id, data)
}

func (p *Printer) NotFound(id int) {
	p.printf("No instance found for id=%d\n", id)
}

func (p *Printer) Exiting(signal string) {
	p.printf("%s received, exiting program.\n", signal)
}

func (p *Printer) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.w, format, args...)
}
