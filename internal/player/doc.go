// Package player binds UI intent (play/pause/mute/track change) to a
// single active playback resource.
//
// The Controller owns exactly one live Handle at a time. Changing
// tracks tears the old handle down and the next one starts fresh:
// position and mute state do not carry over. Play/pause state is
// observed from the handle's own events rather than tracked as an
// independent flag.
//
//	backend := player.NewExecBackend("mpv", []string{"--no-video"})
//	ctrl := player.NewController(backend)
//	ctrl.Load(previewURL)
//	ctrl.TogglePlayPause() // starts the player process
//
// ExecBackend spawns an external player process per clip; tests use an
// in-memory fake.
package player
