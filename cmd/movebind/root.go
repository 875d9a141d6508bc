package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/movebind"
	"github.com/reoring/movebind/gen"
	"github.com/reoring/movebind/i18n"
	"github.com/reoring/movebind/internal/config"
	"github.com/reoring/movebind/internal/logging"
	"github.com/reoring/movebind/manifest"
)

type globalFlags struct {
	configPath string
	registry   string
	manifests  []string
	logLevel   string
	lang       string
	lenient    bool
}

// app carries what every subcommand needs once flags and configuration are
// resolved.
type app struct {
	flags  globalFlags
	cfg    config.Config
	logger *zap.Logger
	loader *movebind.Loader

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:           "movebind",
		Short:         "Decode and encode Move struct values by type string",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "configuration file (YAML)")
	pf.StringVar(&a.flags.registry, "registry", "", "type registry: source or onchain")
	pf.StringSliceVar(&a.flags.manifests, "manifest", nil, "struct manifest to register (onchain registry, repeatable)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.flags.lang, "lang", "", "language of error reports: en or ja")
	pf.BoolVar(&a.flags.lenient, "lenient-phantoms", false, "resolve unregistered types in phantom positions by name")

	root.AddCommand(
		newParseCmd(a),
		newResolveCmd(a),
		newTypesCmd(a),
		newDecodeCmd(a),
		newEncodeCmd(a),
	)
	return root
}

// setup merges the configuration file with flags, then builds the logger and
// the loader.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.flags.configPath != "" {
		var err error
		if cfg, err = config.Load(a.flags.configPath); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("registry") {
		cfg.Registry = a.flags.registry
	}
	if cmd.Flags().Changed("manifest") {
		cfg.Manifests = a.flags.manifests
		if !cmd.Flags().Changed("registry") {
			cfg.Registry = config.RegistryOnChain
		}
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.flags.logLevel
	}
	if cmd.Flags().Changed("lang") {
		cfg.Lang = a.flags.lang
	}
	if cmd.Flags().Changed("lenient-phantoms") {
		cfg.LenientPhantoms = a.flags.lenient
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	i18n.SetLanguage(cfg.Lang)

	logger, err := logging.New(cfg.Log, a.stderr)
	if err != nil {
		return err
	}
	a.logger = logger

	opts := []movebind.LoaderOption{
		movebind.WithLogger(logger.Named("loader")),
		movebind.WithCache(cfg.CacheSize),
	}
	if cfg.LenientPhantoms {
		opts = append(opts, movebind.WithLenientPhantoms())
	}
	a.loader = gen.NewLoader(opts...)
	if cfg.Registry == config.RegistryOnChain && len(cfg.Manifests) > 0 {
		files := make([]*manifest.File, 0, len(cfg.Manifests))
		for _, path := range cfg.Manifests {
			m, err := manifest.Load(path)
			if err != nil {
				return err
			}
			files = append(files, m)
		}
		// Structs may refer to each other across files.
		all := manifest.Merge(files...)
		if err := all.Validate(); err != nil {
			return err
		}
		all.Register(a.loader, logger.Named("manifest").With(zap.Strings("paths", cfg.Manifests)))
	}
	logger.Debug("loader ready",
		zap.String("registry", cfg.Registry),
		zap.Int("types", a.loader.Len()))
	return nil
}

func (a *app) jsonOptions() movebind.JSONOptions {
	return movebind.JSONOptions{
		DisallowDuplicateKeys: !a.cfg.JSON.AllowDuplicateKeys,
		MaxDepth:              a.cfg.JSON.MaxDepth,
	}
}
