package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// Data locations
	CSVPath          string `json:"csv_path"`
	DataPath         string `json:"data_path"`
	PreviewCachePath string `json:"preview_cache_path"`

	// Enrichment settings
	QueryBudget      int     `json:"query_budget"`
	QueryPauseMillis int     `json:"query_pause_millis"`
	SearchTimeout    float64 `json:"search_timeout_seconds"`
	SearchLimit      int     `json:"search_limit"`

	// Preview cache settings
	MaxConcurrentPreviews int    `json:"max_concurrent_previews"`
	PreviewMaxRetries     int    `json:"preview_max_retries"`
	TagPreviews           bool   `json:"tag_previews"`
	EmbedArtworkInTags    bool   `json:"embed_artwork_in_tags"`
	ArtworkMaxSize        int    `json:"artwork_max_size"`
	CreatePlaylist        bool   `json:"create_playlist"`
	PlaylistFileName      string `json:"playlist_file_name"`

	// Playback settings
	PlayerCommand string   `json:"player_command"`
	PlayerArgs    []string `json:"player_args"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		CSVPath:          "songs.csv",
		DataPath:         "songs.json",
		PreviewCachePath: filepath.Join(homeDir, "Music", "Jukebook", "previews"),

		QueryBudget:      15,
		QueryPauseMillis: 500,
		SearchTimeout:    15,
		SearchLimit:      10,

		MaxConcurrentPreviews: 4,
		PreviewMaxRetries:     3,
		TagPreviews:           true,
		EmbedArtworkInTags:    true,
		ArtworkMaxSize:        600,
		CreatePlaylist:        false,
		PlaylistFileName:      "jukebook",

		PlayerCommand: "mpv",
		PlayerArgs:    []string{"--no-video", "--really-quiet"},
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
