package player

import (
	"errors"
)

// Status is the playback state of the active resource. It is driven by
// backend events, not tracked independently, so it cannot desync from
// what the player is actually doing.
type Status int

const (
	// StatusIdle means a track is loaded but no playback resource is
	// live yet (or the last one was torn down).
	StatusIdle Status = iota

	// StatusPlaying means the active resource reported it is playing.
	StatusPlaying

	// StatusPaused means the active resource reported it is paused.
	StatusPaused

	// StatusEnded means the active resource finished the clip.
	StatusEnded
)

// EventKind identifies a backend event.
type EventKind int

const (
	EventPlaying EventKind = iota
	EventPaused
	EventEnded
	EventError
)

// Event is a signal from the playback resource itself.
type Event struct {
	Kind EventKind
	Err  error
}

// ErrMuteUnsupported is returned by handles that cannot change mute
// state mid-playback. The controller responds by reopening the
// resource with the new mute state.
var ErrMuteUnsupported = errors.New("player: live mute toggle not supported")

// Handle is one live playback resource.
type Handle interface {
	Pause() error
	Resume() error
	SetMuted(muted bool) error
	Close() error

	// Events delivers the resource's own state signals. The channel is
	// closed when the resource is done.
	Events() <-chan Event
}

// Backend opens playback resources. Exactly one handle is live at a
// time; opening starts playback.
type Backend interface {
	Open(url string, muted bool) (Handle, error)
}

// Controller is the thin binding between UI intent (play/pause/mute/
// track change) and the single active playback resource.
//
// Switching tracks tears the previous resource down and the next one
// starts from scratch; playback position and mute state are not
// carried over. Play/pause state is observed from the resource's
// events via HandleEvent.
type Controller struct {
	backend Backend
	handle  Handle
	status  Status
	muted   bool
	url     string
}

// NewController creates a Controller over the given backend.
func NewController(backend Backend) *Controller {
	return &Controller{backend: backend}
}

// Load binds the controller to a new track, tearing down any live
// resource. Playback does not start until TogglePlayPause; mute resets
// to unmuted. An empty url means the current record has no preview.
func (c *Controller) Load(url string) error {
	err := c.teardown()
	c.url = url
	c.muted = false
	return err
}

// TogglePlayPause plays when paused or idle, pauses when playing.
// A no-op when no playable URL is loaded.
func (c *Controller) TogglePlayPause() error {
	if c.url == "" {
		return nil
	}

	switch c.status {
	case StatusPlaying:
		return c.handle.Pause()
	case StatusPaused:
		return c.handle.Resume()
	default:
		return c.open()
	}
}

// ToggleMute flips the mute flag on the active resource. Mute is
// independent of play/pause and is not preserved across track changes.
// When the live resource cannot change mute state in place, it is
// reopened with the new state.
func (c *Controller) ToggleMute() error {
	c.muted = !c.muted
	if c.handle == nil {
		return nil
	}

	err := c.handle.SetMuted(c.muted)
	if errors.Is(err, ErrMuteUnsupported) {
		resume := c.status == StatusPlaying || c.status == StatusPaused
		if cerr := c.teardown(); cerr != nil {
			return cerr
		}
		if resume {
			return c.open()
		}
		return nil
	}
	return err
}

// HandleEvent applies a resource event to the controller state. The
// UI's event loop feeds events from Events here.
func (c *Controller) HandleEvent(e Event) {
	switch e.Kind {
	case EventPlaying:
		c.status = StatusPlaying
	case EventPaused:
		c.status = StatusPaused
	case EventEnded:
		c.closeHandle()
		c.status = StatusEnded
	case EventError:
		c.closeHandle()
		c.status = StatusIdle
	}
}

// Events returns the live resource's event channel, or nil when no
// resource is live.
func (c *Controller) Events() <-chan Event {
	if c.handle == nil {
		return nil
	}
	return c.handle.Events()
}

// Status returns the observed playback state.
func (c *Controller) Status() Status { return c.status }

// Muted returns the mute flag.
func (c *Controller) Muted() bool { return c.muted }

// Playable reports whether a URL is currently loaded.
func (c *Controller) Playable() bool { return c.url != "" }

// Close tears down the active resource.
func (c *Controller) Close() error {
	return c.teardown()
}

func (c *Controller) open() error {
	// A handle may already be live with its playing event not yet
	// consumed; opening again would orphan a resource the controller
	// could never stop.
	if c.handle != nil {
		return nil
	}
	handle, err := c.backend.Open(c.url, c.muted)
	if err != nil {
		return err
	}
	c.handle = handle
	return nil
}

func (c *Controller) teardown() error {
	var err error
	if c.handle != nil {
		err = c.handle.Close()
	}
	c.handle = nil
	c.status = StatusIdle
	return err
}

func (c *Controller) closeHandle() {
	if c.handle != nil {
		c.handle.Close()
		c.handle = nil
	}
}
