//go:build unix

package trigger

import (
	"syscall"

	"multi_accessor/internal/domain"
)

func DefaultTable() Table {
	return NewTable(
		Trigger{Name: "SIGUSR1", Signal: syscall.SIGUSR1, ID: domain.ID1},
		Trigger{Name: "SIGUSR2", Signal: syscall.SIGUSR2, ID: domain.ID2},
		Trigger{Name: "SIGINT", Signal: syscall.SIGINT, ID: domain.ID3},
		Trigger{Name: "SIGHUP", Signal: syscall.SIGHUP, ID: domain.ID4, Exit: true},
	)
}
