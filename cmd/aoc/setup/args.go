package setup

import (
	"context"
	"fmt"
	"os"

	"github.com/cordialsys/aoc"
	"github.com/cordialsys/aoc/challenges"
	"github.com/cordialsys/aoc/client"
	"github.com/cordialsys/aoc/config"
	"github.com/cordialsys/aoc/config/constants"
	"github.com/spf13/cobra"
)

type ContextKey string

const ContextConfig ContextKey = "config"
const ContextRegistry ContextKey = "registry"

func WrapConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ContextConfig, cfg)
}

func WrapRegistry(ctx context.Context, registry *aoc.Registry) context.Context {
	return context.WithValue(ctx, ContextRegistry, registry)
}

func UnwrapConfig(ctx context.Context) *config.Config {
	return ctx.Value(ContextConfig).(*config.Config)
}

func UnwrapRegistry(ctx context.Context) *aoc.Registry {
	return ctx.Value(ContextRegistry).(*aoc.Registry)
}

func CreateContext(cfg *config.Config, registry *aoc.Registry) context.Context {
	ctx := context.Background()
	ctx = WrapConfig(ctx, cfg)
	ctx = WrapRegistry(ctx, registry)
	return ctx
}

// NewClient is only called by commands that talk to the site, so that
// offline commands work without a session.
func NewClient(ctx context.Context) (*client.SiteClient, error) {
	return client.NewClient(UnwrapConfig(ctx))
}

type Args struct {
	ConfigPath     string
	Year           int
	Session        config.Secret
	VerbosityCount int
}

func AddArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", fmt.Sprintf("Path to config.yaml (may set %s).", constants.ConfigEnv))
	cmd.PersistentFlags().Int("year", 0, fmt.Sprintf("Event year (may set %s). Defaults to the latest event.", constants.YearEnv))
	cmd.PersistentFlags().String("session", "", "Secret reference for the session cookie, e.g. env:AOC_SESSION or file:~/.aoc/session.")
	cmd.PersistentFlags().CountP("verbose", "v", "Set verbosity.")
}

func ArgsFromCmd(cmd *cobra.Command) (*Args, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	year, err := cmd.Flags().GetInt("year")
	if err != nil {
		return nil, err
	}
	session, err := cmd.Flags().GetString("session")
	if err != nil {
		return nil, err
	}
	if session != "" && !config.HasTypePrefix(session) {
		return nil, fmt.Errorf("--session must not be passed directly on command, instead use a reference such as env:%s", constants.SessionEnv)
	}
	count, _ := cmd.Flags().GetCount("verbose")

	return &Args{
		ConfigPath:     configPath,
		Year:           year,
		Session:        config.Secret(session),
		VerbosityCount: count,
	}, nil
}

// ConfigureLogger uses the -v count unless it was not given and
// AOC_LOG_LEVEL is set.
func ConfigureLogger(args *Args) {
	level := config.VerbosityLevel(args.VerbosityCount)
	if args.VerbosityCount == 0 && os.Getenv(config.LogLevelEnv) != "" {
		level = ""
	}
	config.ConfigureLogger(level)
}

// LoadConfig reads config.yaml, applies any overrides from the command and
// then validates the result.
func LoadConfig(args *Args) (*config.Config, error) {
	if args.ConfigPath != "" {
		// the only way to point viper at a file is via env
		_ = os.Setenv(constants.ConfigEnv, args.ConfigPath)
	}
	cfg, err := config.ReadConfig()
	if err != nil {
		return nil, err
	}
	if args.Year != 0 {
		cfg.Year = args.Year
	}
	if args.Session != "" {
		cfg.Session = args.Session
	}
	return cfg, cfg.Validate()
}

func LoadRegistry() *aoc.Registry {
	return challenges.Registry()
}

// ParseDays parses day arguments, defaulting to every registered day.
func ParseDays(registry *aoc.Registry, args []string) ([]aoc.Day, error) {
	if len(args) == 0 {
		return registry.Days(), nil
	}
	days := []aoc.Day{}
	for _, arg := range args {
		day, err := aoc.ParseDay(arg)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}
