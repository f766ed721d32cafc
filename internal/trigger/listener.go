package trigger

import (
	"os"
	"os/signal"
	"sync"

	"multi_accessor/internal/config"
)

// SignalSource abstracts signal registration so tests can inject signals.
type SignalSource interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

type osSignalSource struct{}

func (osSignalSource) Notify(c chan<- os.Signal, sig ...os.Signal) {
	signal.Notify(c, sig...)
}

func (osSignalSource) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}

// Listener owns the signal channel. The runtime only enqueues the signal
// value; all handling happens in whoever reads Start's channel.
type Listener struct {
	table  Table
	source SignalSource
	ch     chan os.Signal

	startOnce sync.Once
	stopOnce  sync.Once
}

func NewListener(cfg *config.Config, table Table) *Listener {
	return NewListenerWithSource(table, cfg.SignalBuffer, osSignalSource{})
}

func NewListenerWithSource(table Table, buffer int, source SignalSource) *Listener {
	if buffer < 1 {
		buffer = 1
	}
	return &Listener{
		table:  table,
		source: source,
		ch:     make(chan os.Signal, buffer),
	}
}

// Start installs the handlers. Calling it again returns the same channel.
func (l *Listener) Start() <-chan os.Signal {
	l.startOnce.Do(func() {
		l.source.Notify(l.ch, l.table.Signals()...)
	})
	return l.ch
}

// Stop restores default signal behavior and closes the channel.
func (l *Listener) Stop() {
	l.stopOnce.Do(func() {
		l.source.Stop(l.ch)
		close(l.ch)
	})
}
