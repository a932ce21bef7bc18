package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithAgents sets the agent for each seat.
func (b *ConfigBuilder) WithAgents(white, black AgentKind) *ConfigBuilder {
	b.cfg.Host.White = white
	b.cfg.Host.Black = black
	return b
}

// WithSeed sets the seed of the random agents.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Host.Seed = seed
	return b
}

// WithMaxPlies sets the ply limit of hosted games.
func (b *ConfigBuilder) WithMaxPlies(plies int) *ConfigBuilder {
	b.cfg.Host.MaxPlies = plies
	return b
}

// WithMaxGames sets the registry capacity.
func (b *ConfigBuilder) WithMaxGames(games int) *ConfigBuilder {
	b.cfg.Host.MaxGames = games
	return b
}

// WithStartFEN sets the start position of hosted games.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Host.StartFEN = fen
	return b
}

// WithGames sets the number of games played in sequence.
func (b *ConfigBuilder) WithGames(games int) *ConfigBuilder {
	b.cfg.Host.Games = games
	return b
}

// WithPerft sets the perft depth and worker count.
func (b *ConfigBuilder) WithPerft(depth, workers int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Workers = workers
	return b
}

// WithDivide enables per-move perft output.
func (b *ConfigBuilder) WithDivide(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Divide = enabled
	return b
}

// WithVerify enables comparison against the reference generator.
func (b *ConfigBuilder) WithVerify(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Verify = enabled
	return b
}

// WithCache bounds the perft subtree cache; 0 disables it.
func (b *ConfigBuilder) WithCache(entries int) *ConfigBuilder {
	b.cfg.Perft.Cache = entries
	return b
}

// WithLineLength sets the maximum movetext line length.
func (b *ConfigBuilder) WithLineLength(length int) *ConfigBuilder {
	b.cfg.Output.LineLength = length
	return b
}

// WithJSON selects JSON output.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSON = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
