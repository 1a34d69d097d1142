package ssh

import (
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
)

func TestWindowSizeFromPty(t *testing.T) {
	tty := NewSessionTty(nil, gossh.Pty{Window: gossh.Window{Width: 120, Height: 40}}, nil)
	ws, err := tty.WindowSize()
	if err != nil {
		t.Fatalf("WindowSize: %v", err)
	}
	if ws.Width != 120 || ws.Height != 40 {
		t.Errorf("size = %dx%d, want 120x40", ws.Width, ws.Height)
	}
}

func TestNotifyResizeTracksWindow(t *testing.T) {
	winCh := make(chan gossh.Window)
	tty := NewSessionTty(nil, gossh.Pty{Window: gossh.Window{Width: 80, Height: 24}}, winCh)

	resized := make(chan struct{}, 1)
	tty.NotifyResize(func() { resized <- struct{}{} })
	winCh <- gossh.Window{Width: 100, Height: 30}

	select {
	case <-resized:
	case <-time.After(time.Second):
		t.Fatal("resize callback not invoked")
	}
	ws, _ := tty.WindowSize()
	if ws.Width != 100 || ws.Height != 30 {
		t.Errorf("size = %dx%d after resize, want 100x30", ws.Width, ws.Height)
	}
	close(winCh)
}

func TestNoOpLifecycle(t *testing.T) {
	tty := NewSessionTty(nil, gossh.Pty{}, nil)
	for name, fn := range map[string]func() error{"Start": tty.Start, "Stop": tty.Stop, "Drain": tty.Drain} {
		if err := fn(); err != nil {
			t.Errorf("%s = %v, want nil", name, err)
		}
	}
	tty.NotifyResize(func() {})
}
