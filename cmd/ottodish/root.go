package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottodish/internal/config"
	"github.com/hammamikhairi/ottodish/internal/display"
	"github.com/hammamikhairi/ottodish/internal/engine"
	"github.com/hammamikhairi/ottodish/internal/extract"
	"github.com/hammamikhairi/ottodish/internal/logger"
	"github.com/hammamikhairi/ottodish/internal/storage"
	"github.com/hammamikhairi/ottodish/internal/template"
)

// cli holds the dependencies shared by every subcommand. They are built
// in the root PersistentPreRunE once flags and config are known.
type cli struct {
	configPath string
	verbose    bool
	quiet      bool

	cfg       *config.Config
	log       *logger.Logger
	vocab     *template.Vocabulary
	extractor *extract.Extractor
	store     *storage.MemoryStore
	closers   []func()
}

func (c *cli) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "ottodish",
		Short: "Extract structured dish records from templated descriptions",
		Long: `ottodish parses dish descriptions written in the sectioned template
(##БЛЮДО##, ##ИНГРЕДИЕНТЫ##, ...) into a structured record with name,
ingredients, numbered steps, portion, nutrition and recommendations.

Configuration is read from ottodish.yaml (or CONFIG_PATH) and OTTODISH_*
environment variables; flags override both.

` + config.Usage(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), display.RenderBanner(c.cfg.Output.Width))
			return cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (default $CONFIG_PATH or ./ottodish.yaml)")
	pf.BoolVar(&c.verbose, "verbose", false, "enable verbose/debug logging")
	pf.BoolVar(&c.quiet, "quiet", false, "disable all logging")
	pf.String("log-file", "", "file to write logs to (default stderr)")
	pf.String("vocab", "", "vocabulary: "+strings.Join(template.BuiltinNames(), ", ")+" or a YAML file")
	pf.String("bullet-mode", "", "bullet stripping: prefix or replace_all")

	root.AddCommand(
		c.parseCommand(),
		c.batchCommand(),
		c.watchCommand(),
		c.templateCommand(),
		c.validateCommand(),
	)
	return root
}

// setup loads config, applies flag overrides and wires dependencies.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.cfg = cfg

	level := cfg.LogLevel()
	if c.verbose {
		level = logger.LevelVerbose
	}
	if c.quiet {
		level = logger.LevelOff
	}
	c.log = logger.New(level, c.logOutput(cmd))

	c.vocab, err = template.Resolve(cfg.Template.Vocabulary)
	if err != nil {
		return err
	}
	c.extractor = extract.New(
		extract.WithVocabulary(c.vocab),
		extract.WithBulletMode(cfg.BulletMode()),
		extract.WithLogger(c.log),
	)
	c.store = storage.NewMemoryStore(c.log)

	c.log.Debug("config: vocab=%s bullets=%s format=%s workers=%d",
		c.vocab.Version, cfg.BulletMode(), cfg.Output.Format, cfg.Batch.Workers)
	return nil
}

// logOutput opens the configured log file, falling back to stderr.
func (c *cli) logOutput(cmd *cobra.Command) io.Writer {
	path := c.cfg.Log.File
	if path == "" || path == "stderr" {
		return cmd.ErrOrStderr()
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return cmd.ErrOrStderr()
	}
	c.closers = append(c.closers, func() { f.Close() })
	return f
}

func (c *cli) close() {
	for _, fn := range c.closers {
		fn()
	}
	c.closers = nil
}

// engine builds a pipeline over the shared extractor and store.
func (c *cli) engine() *engine.Engine {
	validate := c.cfg.Output.Validate || c.cfg.Output.Strict
	return engine.New(c.extractor, c.store, c.log, engine.WithValidation(validate))
}

func (c *cli) renderer() (*rendererSet, error) {
	r, err := display.NewRenderer(c.cfg.Output.Format, c.cfg.Output.Width)
	if err != nil {
		return nil, err
	}
	format, _ := display.NormalizeFormat(c.cfg.Output.Format)
	return &rendererSet{format: format, r: r}, nil
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}

	var err error
	str := func(name string, dst *string) {
		if changed(name) && err == nil {
			*dst, err = flags.GetString(name)
		}
	}
	boolean := func(name string, dst *bool) {
		if changed(name) && err == nil {
			*dst, err = flags.GetBool(name)
		}
	}
	integer := func(name string, dst *int) {
		if changed(name) && err == nil {
			*dst, err = flags.GetInt(name)
		}
	}

	str("log-file", &cfg.Log.File)
	str("vocab", &cfg.Template.Vocabulary)
	str("bullet-mode", &cfg.Template.BulletMode)
	str("format", &cfg.Output.Format)
	boolean("validate", &cfg.Output.Validate)
	boolean("strict", &cfg.Output.Strict)
	integer("width", &cfg.Output.Width)
	integer("workers", &cfg.Batch.Workers)
	str("pattern", &cfg.Watch.Pattern)
	if changed("debounce") && err == nil {
		cfg.Watch.Debounce, err = flags.GetDuration("debounce")
	}
	return err
}

// addOutputFlags registers the rendering flags shared by several commands.
func addOutputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("format", "f", "", "output format: "+strings.Join(display.Formats(), ", "))
	f.Bool("validate", false, "validate records against the schema")
	f.Bool("strict", false, "exit with status 2 when a record fails validation (implies --validate)")
	f.Int("width", 0, "terminal width for text and markdown output (0 = detect)")
}
