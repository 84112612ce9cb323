package export

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/GustavoCaso/zerobudget/internal/cli"
)

var errMissingFile = errors.New("you must provide a destination file with -f (.csv or .xlsx)")

type exportCommand struct {
	table string
	file  string
}

func NewCommand() cli.Command {
	return &exportCommand{}
}

func (c *exportCommand) Description() string {
	return "Exports a table to a CSV or XLSX file"
}

func (c *exportCommand) SetFlags(fs *flag.FlagSet) {
	cli.TableFlag(fs, &c.table)
	fs.StringVar(&c.file, "f", "", "destination file, the extension selects the format")
}

func (c *exportCommand) Run(ctx context.Context, env cli.Env) error {
	table, err := cli.ParseTableFlag(c.table)
	if err != nil {
		return err
	}

	if c.file == "" {
		return errMissingFile
	}

	exported, err := env.Ledger.ExportTable(ctx, table, c.file)
	if err != nil {
		return fmt.Errorf("unable to export %s: %w", table, err)
	}

	fmt.Fprintf(env.Out, "%s data exported successfully! (%d records to %s)\n", table.Title(), exported, c.file)
	return nil
}
