package hime

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the set of host-tunable defaults normally supplied by a TOML
// config file (cmd/himectl's demo host; library callers may construct
// one directly and skip the file entirely).
type Config struct {
	DataDir string `toml:"data_dir"`

	Layout            string `toml:"layout"`
	SelectionKeys     string `toml:"selection_keys"`
	CandidatesPerPage int    `toml:"candidates_per_page"`
	Charset           string `toml:"charset"`

	SmartPunctuation bool `toml:"smart_punctuation"`
	PinyinAnnotation bool `toml:"pinyin_annotation"`
	SoundEnabled     bool `toml:"sound_enabled"`
	VibrationEnabled bool `toml:"vibration_enabled"`
	VibrationMs      int  `toml:"vibration_ms"`
}

// DefaultConfig mirrors NewContext's defaults so a host can start from
// this and only override what it cares about.
func DefaultConfig() Config {
	return Config{
		DataDir:           "data",
		Layout:            "standard",
		SelectionKeys:     "1234567890",
		CandidatesPerPage: 10,
		Charset:           "traditional",
		VibrationMs:       50,
	}
}

// LoadConfig reads a TOML file at path into Config, starting from
// DefaultConfig so an unset field keeps its default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Apply pushes the config's settings onto a freshly created context.
func (cfg Config) Apply(c *Context) {
	if c == nil {
		return
	}
	c.dataDir = cfg.DataDir
	c.SetKeyboardLayoutByName(cfg.Layout)
	if cfg.SelectionKeys != "" {
		c.SetSelectionKeys(cfg.SelectionKeys)
	}
	c.SetCandidatesPerPage(cfg.CandidatesPerPage)
	if cfg.Charset == "simplified" {
		c.SetCharset(Simplified)
	} else {
		c.SetCharset(Traditional)
	}
	c.SetSmartPunctuation(cfg.SmartPunctuation)
	c.SetPinyinAnnotation(cfg.PinyinAnnotation)
	c.SetSoundEnabled(cfg.SoundEnabled)
	c.SetVibrationEnabled(cfg.VibrationEnabled)
	c.SetVibrationDuration(cfg.VibrationMs)
}
