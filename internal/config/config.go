// Package config loads ottodish settings from YAML and the environment.
package config

import "time"

// Config is the root application configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Template TemplateConfig `yaml:"template"`
	Output   OutputConfig   `yaml:"output"`
	Batch    BatchConfig    `yaml:"batch"`
	Watch    WatchConfig    `yaml:"watch"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"OTTODISH_LOG_LEVEL" env-default:"normal"`
	File  string `yaml:"file"  env:"OTTODISH_LOG_FILE"`
}

// TemplateConfig selects the marker vocabulary and list handling.
type TemplateConfig struct {
	// Vocabulary is a built-in name (ru-v1, en-v1) or a path to a YAML file.
	Vocabulary string `yaml:"vocabulary"  env:"OTTODISH_VOCAB"       env-default:"ru-v1"`
	BulletMode string `yaml:"bullet_mode" env:"OTTODISH_BULLET_MODE" env-default:"prefix"`
}

// OutputConfig holds rendering settings. Strict implies Validate.
type OutputConfig struct {
	Format   string `yaml:"format"   env:"OTTODISH_FORMAT"   env-default:"text"`
	Validate bool   `yaml:"validate" env:"OTTODISH_VALIDATE" env-default:"false"`
	Strict   bool   `yaml:"strict"   env:"OTTODISH_STRICT"   env-default:"false"`
	Width    int    `yaml:"width"    env:"OTTODISH_WIDTH"    env-default:"0"`
}

// BatchConfig holds batch parsing settings.
type BatchConfig struct {
	Workers int `yaml:"workers" env:"OTTODISH_WORKERS" env-default:"4"`
}

// WatchConfig holds directory watch settings.
type WatchConfig struct {
	Pattern  string        `yaml:"pattern"  env:"OTTODISH_WATCH_PATTERN"  env-default:"*.txt"`
	Debounce time.Duration `yaml:"debounce" env:"OTTODISH_WATCH_DEBOUNCE" env-default:"200ms"`
}
