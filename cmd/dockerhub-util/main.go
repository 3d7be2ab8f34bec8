/*
Package main is the dockerhub-util command: reports from Docker Hub, used to
pin Senzing Docker image versions.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	dockerhubutil "github.com/senzing-garage/dockerhub-util"
)

var (
	version = "1.1.0"
	updated = "2026-08-30"
)

// runCtx is cancelled on SIGINT/SIGTERM. Long-running commands watch it and
// the resolver checks it between repositories.
var runCtx = context.Background()

type globalOptions struct {
	Debug bool `long:"debug" env:"SENZING_DEBUG" description:"Enable debug logging and disable redaction"`
}

var global globalOptions

// registryOptions is shared by every subcommand that talks to Docker Hub.
// Precedence per option: flag, then environment variable, then default.
type registryOptions struct {
	EndpointV1       string `long:"dockerhub-api-endpoint-v1" env:"SENZING_DOCKERHUB_API_ENDPOINT_V1" default:"https://registry.hub.docker.com/v1" description:"Docker Hub API endpoint, version 1"`
	EndpointV2       string `long:"dockerhub-api-endpoint-v2" env:"SENZING_DOCKERHUB_API_ENDPOINT_V2" default:"https://hub.docker.com/v2" description:"Docker Hub API endpoint, version 2"`
	Organization     string `long:"dockerhub-organization" env:"SENZING_DOCKERHUB_ORGANIZATION" default:"senzing" description:"Default Docker Hub organization"`
	Username         string `long:"dockerhub-username" env:"SENZING_DOCKERHUB_USERNAME" description:"Docker Hub username"`
	Password         string `long:"dockerhub-password" env:"SENZING_DOCKERHUB_PASSWORD" description:"Docker Hub password"`
	AuthToken        string `long:"dockerhub-auth-token" env:"SENZING_DOCKERHUB_AUTH_TOKEN" description:"Docker Hub JWT auth token"`
	RepositoriesFile string `long:"repositories-file" env:"SENZING_DOCKERHUB_REPOSITORIES_FILE" description:"YAML file overriding the built-in repository table"`
	Ordering         string `long:"ordering" env:"SENZING_VERSION_ORDERING" default:"lexical" choice:"lexical" choice:"semver" description:"How the newest tag is chosen"`
	StrictHTTP       bool   `long:"strict-http" env:"SENZING_STRICT_HTTP" description:"Treat non-200 API responses as errors"`
}

func buildConfig(o registryOptions) dockerhubutil.Config {
	return dockerhubutil.Config{
		EndpointV1:       o.EndpointV1,
		EndpointV2:       o.EndpointV2,
		Organization:     o.Organization,
		Username:         o.Username,
		Password:         o.Password,
		AuthToken:        o.AuthToken,
		RepositoriesFile: o.RepositoriesFile,
		Ordering:         dockerhubutil.ParseOrdering(o.Ordering),
		Debug:            global.Debug,
		Strict:           o.StrictHTTP,
	}
}

func logEntry(log *zap.Logger, cfg dockerhubutil.Config) time.Time {
	log.Info("Enter", dockerhubutil.MessageID(297), zap.String("config", cfg.JSON(!cfg.Debug)))
	return time.Now()
}

func logExit(log *zap.Logger, cfg dockerhubutil.Config, start time.Time) {
	log.Info("Exit", dockerhubutil.MessageID(298),
		zap.String("config", cfg.JSON(!cfg.Debug)),
		zap.Duration("elapsed", time.Since(start)),
	)
}

func logFatal(log *zap.Logger, err error) error {
	log.Error("Program terminated with error", dockerhubutil.MessageID(698), zap.Error(err))
	return err
}

type printLatestVersionsCmd struct {
	Registry registryOptions `group:"Docker Hub"`
}

// Execute resolves the repository table and writes the generated pin script
// to stdout. Any failure aborts with no partial output.
func (c *printLatestVersionsCmd) Execute([]string) error {
	cfg := buildConfig(c.Registry)
	log := dockerhubutil.NewLogger(cfg.Debug)
	defer log.Sync() //nolint:errcheck

	if err := cfg.Validate(); err != nil {
		log.Error("Invalid configuration", dockerhubutil.MessageID(697), zap.Error(err))
		log.Info("For information on warnings and errors, see https://github.com/senzing-garage/dockerhub-util",
			dockerhubutil.MessageID(293))
		return err
	}

	start := logEntry(log, cfg)

	entries, err := dockerhubutil.LoadRepositories(cfg.RepositoriesFile)
	if err != nil {
		return logFatal(log, err)
	}

	resolver := dockerhubutil.NewResolver(dockerhubutil.NewClient(cfg, log), cfg, log)
	lines, err := resolver.LatestVersions(runCtx, entries)
	if err != nil {
		return logFatal(log, err)
	}

	fmt.Print(dockerhubutil.RenderScript(lines, version, time.Now()))

	logExit(log, cfg, start)
	return nil
}

type sleepCmd struct {
	SleepTimeInSeconds int `long:"sleep-time-in-seconds" env:"SENZING_SLEEP_TIME_IN_SECONDS" default:"0" description:"Sleep time in seconds; 0 sleeps forever"`
}

// Execute blocks for the configured duration, or forever with an hourly
// heartbeat. Used as a container liveness no-op; a signal wakes it up.
func (c *sleepCmd) Execute([]string) error {
	log := dockerhubutil.NewLogger(global.Debug)
	defer log.Sync() //nolint:errcheck

	cfg := dockerhubutil.DefaultConfig()
	cfg.SleepSeconds = c.SleepTimeInSeconds
	cfg.Debug = global.Debug

	start := logEntry(log, cfg)
	defer logExit(log, cfg, start)

	if c.SleepTimeInSeconds > 0 {
		log.Info("Sleeping", dockerhubutil.MessageID(296), zap.Int("seconds", c.SleepTimeInSeconds))
		select {
		case <-time.After(time.Duration(c.SleepTimeInSeconds) * time.Second):
		case <-runCtx.Done():
		}
		return nil
	}

	t := time.NewTicker(time.Hour)
	defer t.Stop()
	for {
		log.Info("Sleeping infinitely", dockerhubutil.MessageID(295))
		select {
		case <-t.C:
		case <-runCtx.Done():
			return nil
		}
	}
}

type versionCmd struct{}

func (*versionCmd) Execute([]string) error {
	log := dockerhubutil.NewLogger(global.Debug)
	defer log.Sync() //nolint:errcheck

	log.Info("Version", dockerhubutil.MessageID(294),
		zap.String("version", version),
		zap.String("updated", updated),
	)
	return nil
}

type acceptanceCmd struct{}

// Execute logs entry and exit only, for build-pipeline smoke testing.
func (*acceptanceCmd) Execute([]string) error {
	log := dockerhubutil.NewLogger(global.Debug)
	defer log.Sync() //nolint:errcheck

	cfg := dockerhubutil.DefaultConfig()
	cfg.Debug = global.Debug

	start := logEntry(log, cfg)
	logExit(log, cfg, start)
	return nil
}

func addCommands(parser *flags.Parser) {
	must := func(_ *flags.Command, err error) {
		if err != nil {
			panic(err)
		}
	}

	must(parser.AddCommand("print-latest-versions",
		"Print latest versions of Docker images",
		"Resolve the repository table against Docker Hub and print a shell script of export lines.",
		&printLatestVersionsCmd{}))
	must(parser.AddCommand("sleep",
		"Do nothing but sleep",
		"For Docker testing: block for a duration, or forever when zero.",
		&sleepCmd{}))
	must(parser.AddCommand("version",
		"Print version of program",
		"",
		&versionCmd{}))
	must(parser.AddCommand("docker-acceptance-test",
		"For Docker acceptance testing",
		"",
		&acceptanceCmd{}))
}

func main() {
	parser := flags.NewParser(&global, flags.Default)
	parser.LongDescription = "Reports from Docker Hub. " +
		"For more information, see https://github.com/senzing-garage/dockerhub-util"
	addCommands(parser)

	args := os.Args[1:]
	if len(args) == 0 {
		// Containers are often launched without arguments: honor the
		// subcommand from the environment, or fall back to sleep so the
		// container stays alive.
		if sub := os.Getenv("SENZING_SUBCOMMAND"); sub != "" {
			args = []string{sub}
		} else {
			parser.WriteHelp(os.Stdout)
			if os.Getenv("SENZING_DOCKER_LAUNCHED") == "" {
				return
			}
			args = []string{"sleep"}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	runCtx = ctx

	if _, err := parser.ParseArgs(args); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
