package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/scheerer/dotenvironment/environment"
	"github.com/scheerer/dotenvironment/internal/cli"
	"github.com/scheerer/dotenvironment/internal/logging"
)

var logger = logging.New("main")

func main() {
	defer logger.Sync()

	flags := pflag.NewFlagSet("envcheck", pflag.ExitOnError)
	prefix := flags.StringP("prefix", "p", "", "upper case prefix prepended to every variable name")
	envFiles := flags.StringSliceP("env-file", "f", nil, "dotenv file to load before resolving (repeatable, default .env if present)")
	verbose := flags.BoolP("verbose", "v", false, "log every declaration")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: envcheck [flags] NAME[:type][=default]...\n\nTypes: %s\n\nFlags:\n", strings.Join(cli.Types(), ", "))
		flags.PrintDefaults()
	}
	_ = flags.Parse(os.Args[1:])

	if *verbose {
		logging.SetAll(zap.DebugLevel)
	}

	if flags.NArg() == 0 {
		flags.Usage()
		os.Exit(2)
	}

	if err := environment.LoadDotenv(*envFiles...); err != nil {
		logger.With(zap.Error(err), zap.Strings("files", *envFiles)).Fatal("Failed to load dotenv files")
	}

	registry, err := environment.New(*prefix, environment.WithLogger(logger.Named("registry")))
	if err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to create registry")
	}

	for _, arg := range flags.Args() {
		decl, err := cli.Parse(arg)
		if err != nil {
			logger.With(zap.Error(err)).Fatal("Invalid declaration")
		}
		if err := decl.Declare(registry); err != nil {
			logger.With(zap.Error(err), zap.String("name", *prefix+decl.Name)).Fatal("Failed to resolve variable")
		}
	}

	fmt.Println(registry.Describe())
}
