package player

import (
	"testing"
)

// fakeHandle records commands and lets tests emit events.
type fakeHandle struct {
	events      chan Event
	paused      int
	resumed     int
	closed      int
	muteCalls   []bool
	muteErr     error
	openedMuted bool
}

func (h *fakeHandle) Pause() error  { h.paused++; return nil }
func (h *fakeHandle) Resume() error { h.resumed++; return nil }
func (h *fakeHandle) SetMuted(m bool) error {
	h.muteCalls = append(h.muteCalls, m)
	return h.muteErr
}
func (h *fakeHandle) Close() error         { h.closed++; return nil }
func (h *fakeHandle) Events() <-chan Event { return h.events }

type fakeBackend struct {
	handles []*fakeHandle
	muteErr error
}

func (b *fakeBackend) Open(url string, muted bool) (Handle, error) {
	h := &fakeHandle{events: make(chan Event, 4), muteErr: b.muteErr, openedMuted: muted}
	b.handles = append(b.handles, h)
	return h, nil
}

func TestController_PlayPauseObservedFromEvents(t *testing.T) {
	backend := &fakeBackend{}
	c := NewController(backend)

	if err := c.Load("https://audio.example.com/p.m4a"); err != nil {
		t.Fatal(err)
	}
	if c.Status() != StatusIdle {
		t.Fatalf("status after load = %v, want idle", c.Status())
	}

	if err := c.TogglePlayPause(); err != nil {
		t.Fatal(err)
	}
	if len(backend.handles) != 1 {
		t.Fatalf("opened %d handles, want 1", len(backend.handles))
	}

	// Status only changes once the resource reports it.
	if c.Status() != StatusIdle {
		t.Errorf("status before event = %v, want idle", c.Status())
	}
	c.HandleEvent(Event{Kind: EventPlaying})
	if c.Status() != StatusPlaying {
		t.Errorf("status = %v, want playing", c.Status())
	}

	if err := c.TogglePlayPause(); err != nil {
		t.Fatal(err)
	}
	if backend.handles[0].paused != 1 {
		t.Error("expected a pause command on the handle")
	}
	c.HandleEvent(Event{Kind: EventPaused})
	if c.Status() != StatusPaused {
		t.Errorf("status = %v, want paused", c.Status())
	}

	if err := c.TogglePlayPause(); err != nil {
		t.Fatal(err)
	}
	if backend.handles[0].resumed != 1 {
		t.Error("expected a resume command on the handle")
	}
}

func TestController_ToggleBeforePlayingEventOpensOnce(t *testing.T) {
	backend := &fakeBackend{}
	c := NewController(backend)

	c.Load("url")

	// Two quick toggles, with the resource's playing event not yet
	// consumed in between. Only one resource may ever be live.
	if err := c.TogglePlayPause(); err != nil {
		t.Fatal(err)
	}
	if err := c.TogglePlayPause(); err != nil {
		t.Fatal(err)
	}

	if len(backend.handles) != 1 {
		t.Fatalf("opened %d handles, want 1", len(backend.handles))
	}
	if backend.handles[0].closed != 0 {
		t.Error("live handle must not be torn down by the second toggle")
	}

	// Once the playing event lands, the next toggle pauses as usual.
	c.HandleEvent(Event{Kind: EventPlaying})
	if err := c.TogglePlayPause(); err != nil {
		t.Fatal(err)
	}
	if backend.handles[0].paused != 1 {
		t.Error("expected a pause command on the single handle")
	}
}

func TestController_TrackChangeTearsDown(t *testing.T) {
	backend := &fakeBackend{}
	c := NewController(backend)

	c.Load("first")
	c.TogglePlayPause()
	c.HandleEvent(Event{Kind: EventPlaying})
	c.ToggleMute()

	// Switching tracks closes the old resource and resets mute.
	if err := c.Load("second"); err != nil {
		t.Fatal(err)
	}
	if backend.handles[0].closed == 0 {
		t.Error("previous handle not torn down on track change")
	}
	if c.Status() != StatusIdle {
		t.Errorf("status = %v, want idle (fresh playback state)", c.Status())
	}
	if c.Muted() {
		t.Error("mute must reset on track change")
	}
}

func TestController_NoPreviewIsNoop(t *testing.T) {
	backend := &fakeBackend{}
	c := NewController(backend)

	c.Load("")
	if err := c.TogglePlayPause(); err != nil {
		t.Fatal(err)
	}
	if len(backend.handles) != 0 {
		t.Error("no resource may be opened for a record without a preview")
	}
	if c.Playable() {
		t.Error("empty URL must not be playable")
	}
}

func TestController_MuteOnLiveHandle(t *testing.T) {
	backend := &fakeBackend{}
	c := NewController(backend)

	c.Load("url")
	c.TogglePlayPause()
	c.HandleEvent(Event{Kind: EventPlaying})

	if err := c.ToggleMute(); err != nil {
		t.Fatal(err)
	}
	if !c.Muted() {
		t.Error("mute flag not set")
	}
	if got := backend.handles[0].muteCalls; len(got) != 1 || !got[0] {
		t.Errorf("muteCalls = %v, want [true]", got)
	}

	if err := c.ToggleMute(); err != nil {
		t.Fatal(err)
	}
	if c.Muted() {
		t.Error("mute flag not cleared")
	}
}

func TestController_MuteUnsupportedReopens(t *testing.T) {
	backend := &fakeBackend{muteErr: ErrMuteUnsupported}
	c := NewController(backend)

	c.Load("url")
	c.TogglePlayPause()
	c.HandleEvent(Event{Kind: EventPlaying})

	if err := c.ToggleMute(); err != nil {
		t.Fatal(err)
	}
	if len(backend.handles) != 2 {
		t.Fatalf("opened %d handles, want reopen (2)", len(backend.handles))
	}
	if backend.handles[0].closed == 0 {
		t.Error("old handle must be closed before reopening")
	}
	if !backend.handles[1].openedMuted {
		t.Error("reopened handle must carry the new mute state")
	}
}

func TestController_EndedReleasesHandle(t *testing.T) {
	backend := &fakeBackend{}
	c := NewController(backend)

	c.Load("url")
	c.TogglePlayPause()
	c.HandleEvent(Event{Kind: EventPlaying})
	c.HandleEvent(Event{Kind: EventEnded})

	if c.Status() != StatusEnded {
		t.Errorf("status = %v, want ended", c.Status())
	}
	if backend.handles[0].closed == 0 {
		t.Error("handle must be released when the clip ends")
	}

	// Toggling play after the clip ended starts a fresh resource.
	if err := c.TogglePlayPause(); err != nil {
		t.Fatal(err)
	}
	if len(backend.handles) != 2 {
		t.Errorf("opened %d handles, want 2", len(backend.handles))
	}
}
