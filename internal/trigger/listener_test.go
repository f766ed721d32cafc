//go:build unix

package trigger

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"multi_accessor/internal/config"
)

type sourceMock struct {
	mock.Mock
}

func (m *sourceMock) Notify(c chan<- os.Signal, sig ...os.Signal) {
	m.Called(c, sig)
}

func (m *sourceMock) Stop(c chan<- os.Signal) {
	m.Called(c)
}

func TestListener(t *testing.T) {
	t.Run("installs table signals once", func(t *testing.T) {
		table := DefaultTable()
		src := &sourceMock{}
		src.On("Notify", mock.Anything, table.Signals()).Return().Once()
		src.On("Stop", mock.Anything).Return().Once()

		l := NewListenerWithSource(table, 4, src)
		first := l.Start()
		second := l.Start()
		require.Equal(t, first, second)

		l.Stop()
		l.Stop()
		src.AssertExpectations(t)

		_, open := <-first
		require.False(t, open)
	})

	t.Run("buffer floor", func(t *testing.T) {
		l := NewListenerWithSource(DefaultTable(), 0, &sourceMock{})
		require.Equal(t, 1, cap(l.ch))
	})

	t.Run("delivers real signals", func(t *testing.T) {
		table := NewTable(Trigger{Name: "SIGUSR2", Signal: syscall.SIGUSR2, ID: 2})
		l := NewListener(&config.Config{SignalBuffer: 2}, table)
		ch := l.Start()
		defer l.Stop()

		require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGUSR2))

		select {
		case sig := <-ch:
			require.Equal(t, syscall.SIGUSR2, sig)
		case <-time.After(2 * time.Second):
			t.Fatalf("expected SIGUSR2 to be delivered")
		}
	})
}
