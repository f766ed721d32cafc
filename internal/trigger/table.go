// Package trigger maps OS signals to registry identifiers and turns signal
// delivery into a channel of events for ordinary code to consume.
package trigger

import "os"

// Trigger associates a signal with the identifier it looks up. Exit marks the
// terminal trigger.
type Trigger struct {
	Name   string
	Signal os.Signal
	ID     int
	Exit   bool
}

// Table is an immutable trigger map.
type Table struct {
	entries []Trigger
}

func NewTable(entries ...Trigger) Table {
	copied := make([]Trigger, len(entries))
	copy(copied, entries)
	return Table{entries: copied}
}

func (t Table) Lookup(sig os.Signal) (Trigger, bool) {
	for _, entry := range t.entries {
		if entry.Signal == sig {
			return entry, true
		}
	}
	return Trigger{}, false
}

func (t Table) Signals() []os.Signal {
	signals := make([]os.Signal, 0, len(t.entries))
	for _, entry := range t.entries {
		signals = append(signals, entry.Signal)
	}
	return signals
}

func (t Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for _, entry := range t.entries {
		names = append(names, entry.Name)
	}
	return names
}
