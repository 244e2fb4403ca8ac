package preview

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/calloway/jukebook/internal/audio"
	"github.com/calloway/jukebook/internal/config"
	httpclient "github.com/calloway/jukebook/internal/http"
	ioutils "github.com/calloway/jukebook/internal/io"
	"github.com/calloway/jukebook/internal/model"
	"github.com/calloway/jukebook/internal/progress"
	"golang.org/x/sync/errgroup"
)

// Manager fills the local preview cache: it downloads every enriched
// record's preview clip, tags MP3 clips with the record's metadata and
// cover art, and optionally writes an M3U playlist of the cache in
// timeline order.
//
// Downloads run concurrently up to the configured limit; failures are
// reported and skipped, never fatal for the rest of the cache.
type Manager struct {
	settings   *config.Settings
	httpClient *httpclient.Client
	tagger     *audio.Tagger
	playlist   *audio.PlaylistWriter
	artwork    *ioutils.ArtworkService

	cached  int32
	skipped int32

	maxRetries int
	onProgress progress.Func
}

// NewManager creates a preview cache Manager. A non-positive retry
// setting falls back to a single download attempt.
func NewManager(settings *config.Settings, onProgress progress.Func) *Manager {
	maxRetries := settings.PreviewMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Manager{
		maxRetries: maxRetries,
		settings:   settings,
		httpClient: httpclient.NewClient(time.Duration(settings.SearchTimeout * float64(time.Second))),
		tagger:     audio.NewTagger(),
		playlist:   audio.NewPlaylistWriter(),
		artwork:    ioutils.NewArtworkService(),
		onProgress: onProgress,
	}
}

// Sync brings the cache up to date with the record set. Records
// without a preview URL are ignored; clips already on disk are kept.
func (m *Manager) Sync(ctx context.Context, records []*model.Mention) error {
	if err := ioutils.EnsureDir(m.settings.PreviewCachePath); err != nil {
		return fmt.Errorf("creating preview cache: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentPreviews)

	for _, record := range records {
		if !record.HasPreview() {
			continue
		}
		g.Go(func() error {
			if err := m.fetchClip(ctx, record); err != nil {
				atomic.AddInt32(&m.skipped, 1)
				m.onProgress.Emit(progress.LevelError, "Preview for %s (%s): %v", record.ID, record.Label(), err)
			}
			return nil // keep caching the rest
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if m.settings.CreatePlaylist {
		if err := m.writePlaylist(records); err != nil {
			m.onProgress.Emit(progress.LevelWarning, "Playlist not written: %v", err)
		}
	}

	cached, skipped := m.Progress()
	m.onProgress.Emit(progress.LevelInfo, "Preview cache: %d fetched, %d skipped", cached, skipped)
	return nil
}

// Progress returns how many clips were fetched and skipped so far.
func (m *Manager) Progress() (cached, skipped int32) {
	return atomic.LoadInt32(&m.cached), atomic.LoadInt32(&m.skipped)
}

// ClipPath returns where a record's preview clip lives in the cache.
// The extension follows the preview URL's (iTunes serves m4a and mp3).
func (m *Manager) ClipPath(record *model.Mention) string {
	ext := ".m4a"
	if u, err := url.Parse(record.PreviewURL); err == nil {
		if e := path.Ext(u.Path); e != "" {
			ext = e
		}
	}
	name := ioutils.SanitizeFileName(fmt.Sprintf("%s %s", record.ID, record.Label()))
	return filepath.Join(m.settings.PreviewCachePath, name+ext)
}

func (m *Manager) fetchClip(ctx context.Context, record *model.Mention) error {
	clipPath := m.ClipPath(record)

	if info, err := os.Stat(clipPath); err == nil {
		// Keep the cached clip unless the remote size disagrees, which
		// means an earlier download was cut short.
		size, serr := m.httpClient.GetFileSize(ctx, record.PreviewURL)
		if serr != nil || info.Size() == size {
			m.onProgress.Emit(progress.LevelVerbose, "Keeping existing clip: %s", filepath.Base(clipPath))
			return nil
		}
		m.onProgress.Emit(progress.LevelVerbose, "Size mismatch for %s, refetching", filepath.Base(clipPath))
	}

	var err error
	for tries := 0; tries < m.maxRetries; tries++ {
		if tries > 0 {
			m.onProgress.Emit(progress.LevelWarning, "Retry %d/%d for %s", tries+1, m.maxRetries, record.Label())
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(tries) * time.Second):
			}
		}
		err = m.httpClient.DownloadFile(ctx, record.PreviewURL, clipPath)
		if err == nil {
			break
		}
	}
	if err != nil {
		os.Remove(clipPath)
		return err
	}

	atomic.AddInt32(&m.cached, 1)

	// ID3 applies to MP3 clips; M4A previews are left untagged.
	if m.settings.TagPreviews && filepath.Ext(clipPath) == ".mp3" {
		if err := m.tagClip(ctx, record, clipPath); err != nil {
			m.onProgress.Emit(progress.LevelWarning, "Tagging %s failed: %v", filepath.Base(clipPath), err)
		}
	}

	m.onProgress.Emit(progress.LevelVerbose, "Cached: %s", filepath.Base(clipPath))
	return nil
}

func (m *Manager) tagClip(ctx context.Context, record *model.Mention, clipPath string) error {
	var artwork []byte
	if m.settings.EmbedArtworkInTags && record.AlbumArt != "" {
		data, err := m.httpClient.DownloadBytes(ctx, record.AlbumArt)
		if err != nil {
			m.onProgress.Emit(progress.LevelWarning, "Artwork for %s: %v", record.Label(), err)
		} else if fitted, err := m.artwork.FitCover(data, m.settings.ArtworkMaxSize); err == nil {
			artwork = fitted
		}
	}

	return m.tagger.SaveTags(record, clipPath, artwork)
}

// writePlaylist emits an M3U over the clips present on disk, in
// timeline order.
func (m *Manager) writePlaylist(records []*model.Mention) error {
	var entries []audio.PlaylistEntry
	for _, record := range records {
		if !record.HasPreview() {
			continue
		}
		clipPath := m.ClipPath(record)
		if _, err := os.Stat(clipPath); err != nil {
			continue
		}
		entries = append(entries, audio.PlaylistEntry{
			FileName: filepath.Base(clipPath),
			Label:    record.Label(),
		})
	}

	playlistPath := filepath.Join(m.settings.PreviewCachePath, m.settings.PlaylistFileName+".m3u")
	content := m.playlist.CreateM3U(entries)
	if err := ioutils.WriteFile(playlistPath, []byte(content)); err != nil {
		return err
	}

	m.onProgress.Emit(progress.LevelSuccess, "Wrote playlist %s (%d clips)", playlistPath, len(entries))
	return nil
}
