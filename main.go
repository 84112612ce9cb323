package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/GustavoCaso/zerobudget/internal/cli"
	"github.com/GustavoCaso/zerobudget/internal/cli/add"
	clearCmd "github.com/GustavoCaso/zerobudget/internal/cli/clear"
	deleteCmd "github.com/GustavoCaso/zerobudget/internal/cli/delete"
	"github.com/GustavoCaso/zerobudget/internal/cli/export"
	importCmd "github.com/GustavoCaso/zerobudget/internal/cli/import"
	"github.com/GustavoCaso/zerobudget/internal/cli/list"
	"github.com/GustavoCaso/zerobudget/internal/cli/status"
	"github.com/GustavoCaso/zerobudget/internal/cli/total"
	"github.com/GustavoCaso/zerobudget/internal/cli/tui"
	"github.com/GustavoCaso/zerobudget/internal/cli/web"
	"github.com/GustavoCaso/zerobudget/internal/config"
	"github.com/GustavoCaso/zerobudget/internal/ledger"
	"github.com/GustavoCaso/zerobudget/internal/logger"
	"github.com/GustavoCaso/zerobudget/internal/storage/sqlite"
)

const defaultConfigPath = "zerobudget.yml"

var configPath string

var subcommands = map[string]cli.Command{
	"add":    add.NewCommand(),
	"delete": deleteCmd.NewCommand(),
	"clear":  clearCmd.NewCommand(),
	"list":   list.NewCommand(),
	"total":  total.NewCommand(),
	"status": status.NewCommand(),
	"export": export.NewCommand(),
	"import": importCmd.NewCommand(),
	"tui":    tui.NewCommand(),
	"web":    web.NewCommand(),
}

var subcommandsFlagSets = map[string]*flag.FlagSet{}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// a missing .env file is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Unable to load .env file. %s\n", err.Error())
		return 1
	}

	if len(args) < 1 {
		fmt.Printf("subcommand is required\n")
		printUsage()
		return 1
	}

	defaultConfig := os.Getenv("ZEROBUDGET_CONFIG")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}

	for c, cLogic := range subcommands {
		fset := flag.NewFlagSet(c, flag.ExitOnError)
		fset.StringVar(&configPath, "config", defaultConfig, "Configuration file (yaml or toml)")

		cLogic.SetFlags(fset)

		subcommandsFlagSets[c] = fset
	}

	commandName := args[0]
	command, ok := subcommands[commandName]
	if !ok {
		if strings.Contains(commandName, "help") {
			printHelp()
			return 0
		}
		fmt.Fprintf(os.Stderr, "unsupported command %s.\nUse 'help' command to print information about supported commands\n", commandName)
		return 1
	}

	// ExitOnError
	_ = subcommandsFlagSets[commandName].Parse(args[1:])

	conf, err := config.Parse(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse the configuration. %s\n", err.Error())
		return 1
	}

	appLogger := logger.New(conf.Logger)
	appLogger.Debug("Using database", "path", conf.DB.Source)

	storage, err := sqlite.New(conf.DB)
	if err != nil {
		appLogger.Error("Unable to open the database", "error", err.Error())
		return 1
	}
	defer func() {
		if closeErr := storage.Close(); closeErr != nil {
			appLogger.Error("Error closing storage", "error", closeErr)
		}
	}()

	ctx := context.Background()

	if err = storage.ApplyMigrations(ctx, appLogger); err != nil {
		appLogger.Error("Unable to create schema", "error", err.Error())
		return 1
	}

	env := cli.Env{
		Ledger: ledger.New(storage, appLogger),
		Config: conf,
		Logger: appLogger,
		Out:    os.Stdout,
	}

	if err = command.Run(ctx, env); err != nil {
		appLogger.Error("Command failed", "command", commandName, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		return 1
	}

	return 0
}

func printHelp() {
	printUsage()

	names := make([]string, 0, len(subcommands))
	for c := range subcommands {
		names = append(names, c)
	}
	sort.Strings(names)

	for _, c := range names {
		fmt.Printf("subcommand <%s>: %s\n", c, subcommands[c].Description())
		subcommandsFlagSets[c].PrintDefaults()
		fmt.Println()
	}
}

func printUsage() {
	fmt.Printf("usage: zerobudget <subcommand> [flags]\n\n")
}
