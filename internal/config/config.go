// internal/config/config.go
package config

type Config struct {
	Generator GeneratorConfig `koanf:"generator"`
}

type GeneratorConfig struct {
	OutputDir string           `koanf:"output_dir" validate:"required"`
	Index     IndexConfig      `koanf:"index"`
	Report    ReportConfig     `koanf:"report"`
	Log       LogConfig        `koanf:"log"`
	Watch     WatchConfig      `koanf:"watch"`
	Players   []PlayerConfig   `koanf:"players" validate:"dive"`
	Discover  []DiscoverConfig `koanf:"discover" validate:"dive"`
}

// ---- PLAYER ----

type PlayerConfig struct {
	ID    string `koanf:"id" validate:"required,excludesall=/\\"`
	Model string `koanf:"model"` // empty => taken from the data file "model" key
	Data  string `koanf:"data" validate:"required"`

	// Output overrides <output_dir>/<id>/<document file> (optional, relative to output_dir)
	Output string `koanf:"output"`
}

// ---- DISCOVERY ----

// DiscoverConfig adds one player per ConfigData file matched by Pattern.
// The player id is the file name without extension.
type DiscoverConfig struct {
	Pattern string `koanf:"pattern" validate:"required"`
	Model   string `koanf:"model"`
}

// ---- OUTPUTS ----

type IndexConfig struct {
	Enabled bool   `koanf:"enabled"`
	Title   string `koanf:"title"`
	File    string `koanf:"file" validate:"required_if=Enabled true"`
}

type ReportConfig struct {
	Enabled bool   `koanf:"enabled"`
	File    string `koanf:"file" validate:"required_if=Enabled true"`
	Format  string `koanf:"format" validate:"oneof=yaml json"`
}

// ---- AMBIENT ----

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=console json"`
}

type WatchConfig struct {
	Enabled    bool `koanf:"enabled"`
	IntervalMs int  `koanf:"interval_ms" validate:"min=0"`
}
