package player

import (
	"fmt"
	"os/exec"
	"sync"
	"syscall"
)

// ExecBackend plays preview clips by spawning an external player
// process per track (mpv by default, see config.Settings). Pause and
// resume are implemented with SIGSTOP/SIGCONT; mute cannot change
// mid-process, so the controller reopens the player muted instead.
type ExecBackend struct {
	command string
	args    []string
}

// NewExecBackend creates an ExecBackend running the given command with
// the given base arguments; the track URL is appended last.
func NewExecBackend(command string, args []string) *ExecBackend {
	return &ExecBackend{command: command, args: args}
}

// Open starts the player process for one clip. The returned handle's
// event channel reports playing immediately and ended (or error) when
// the process exits.
func (b *ExecBackend) Open(url string, muted bool) (Handle, error) {
	args := make([]string, 0, len(b.args)+2)
	args = append(args, b.args...)
	if muted {
		args = append(args, "--mute=yes")
	}
	args = append(args, url)

	cmd := exec.Command(b.command, args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", b.command, err)
	}

	h := &execHandle{
		cmd:    cmd,
		events: make(chan Event, 8),
	}
	h.post(Event{Kind: EventPlaying})

	go h.wait()

	return h, nil
}

type execHandle struct {
	cmd    *exec.Cmd
	events chan Event

	mu     sync.Mutex
	done   bool
	closed bool
}

// wait delivers the terminal event and closes the channel once the
// player process exits.
func (h *execHandle) wait() {
	err := h.cmd.Wait()

	h.mu.Lock()
	h.done = true
	closed := h.closed
	h.mu.Unlock()

	if !closed {
		if err != nil {
			h.events <- Event{Kind: EventError, Err: err}
		} else {
			h.events <- Event{Kind: EventEnded}
		}
	}
	close(h.events)
}

func (h *execHandle) Pause() error {
	if err := h.cmd.Process.Signal(syscall.SIGSTOP); err != nil {
		return err
	}
	h.post(Event{Kind: EventPaused})
	return nil
}

func (h *execHandle) Resume() error {
	if err := h.cmd.Process.Signal(syscall.SIGCONT); err != nil {
		return err
	}
	h.post(Event{Kind: EventPlaying})
	return nil
}

func (h *execHandle) SetMuted(bool) error {
	return ErrMuteUnsupported
}

// Close kills the player process. Safe to call more than once; the
// wait goroutine owns channel shutdown.
func (h *execHandle) Close() error {
	h.mu.Lock()
	if h.closed || h.done {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	// SIGCONT first so a stopped process can act on the kill.
	h.cmd.Process.Signal(syscall.SIGCONT)
	return h.cmd.Process.Kill()
}

func (h *execHandle) Events() <-chan Event {
	return h.events
}

// post sends a non-terminal event without blocking, dropping it if the
// resource is already done.
func (h *execHandle) post(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.done || h.closed {
		return
	}
	select {
	case h.events <- e:
	default:
	}
}
