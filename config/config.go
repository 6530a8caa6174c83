package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type APIConfig struct {
	Addr string `json:"addr"`
}

// LiveStatusConfig configures the optional remote live-status feed. An empty
// URL disables the feed and the dashboard runs on local derivation alone.
type LiveStatusConfig struct {
	URL                 string `json:"url"`
	PollIntervalSecs    int    `json:"pollIntervalSecs"`
	RemoteFreshnessSecs int    `json:"remoteFreshnessSecs"`
}

type EngineConfig struct {
	TickIntervalSecs int `json:"tickIntervalSecs"`
}

type SupabaseConfig struct {
	Url string `json:"url"`
	// key is specified via env var
	Schema string `json:"schema"`
}

// DataPlatformConfig configures occupancy telemetry upload. An empty Supabase
// URL disables the upload path entirely.
type DataPlatformConfig struct {
	UploadIntervalSecs int            `json:"uploadIntervalSecs"`
	BufferFile         string         `json:"bufferFile"`
	Supabase           SupabaseConfig `json:"supabase"`
}

type Config struct {
	API          APIConfig          `json:"api"`
	LiveStatus   LiveStatusConfig   `json:"liveStatus"`
	Engine       EngineConfig       `json:"engine"`
	DataPlatform DataPlatformConfig `json:"dataPlatform"`
}

// Default returns the configuration used when no config file is supplied.
func Default() Config {
	return Config{
		API: APIConfig{Addr: ":8080"},
		LiveStatus: LiveStatusConfig{
			PollIntervalSecs:    10,
			RemoteFreshnessSecs: 30,
		},
		Engine: EngineConfig{TickIntervalSecs: 1},
		DataPlatform: DataPlatformConfig{
			UploadIntervalSecs: 10,
			BufferFile:         "occupancy.sqlite",
		},
	}
}

func Read(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	config := Default()
	err = json.Unmarshal(content, &config)
	if err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return config, nil
}
