package importcmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/GustavoCaso/zerobudget/internal/cli"
	"github.com/GustavoCaso/zerobudget/internal/interchange"
)

var errMissingFile = errors.New("you must provide a file to import with -f (.csv or .xlsx)")

type importCommand struct {
	table   string
	file    string
	keepIDs bool
}

func NewCommand() cli.Command {
	return &importCommand{}
}

func (c *importCommand) Description() string {
	return "Imports a CSV or XLSX file into a table"
}

func (c *importCommand) SetFlags(fs *flag.FlagSet) {
	cli.TableFlag(fs, &c.table)
	fs.StringVar(&c.file, "f", "", "file to import, the extension selects the format")
	fs.BoolVar(&c.keepIDs, "keep-ids", false, "keep the ids found in the file instead of assigning new ones")
}

func (c *importCommand) Run(ctx context.Context, env cli.Env) error {
	table, err := cli.ParseTableFlag(c.table)
	if err != nil {
		return err
	}

	if c.file == "" {
		return errMissingFile
	}

	imported, err := env.Ledger.ImportTable(ctx, table, c.file, interchange.Options{PreserveIDs: c.keepIDs})
	if err != nil {
		return fmt.Errorf("unable to import %s: %w", table, err)
	}

	if imported == 0 {
		fmt.Fprintf(env.Out, "No %s records were imported\n", table)
	} else {
		fmt.Fprintf(env.Out, "%s data imported successfully! (%d records)\n", table.Title(), imported)
	}

	summary, err := env.Ledger.Status(ctx)
	if err != nil {
		return err
	}

	cli.PrintStatus(env.Out, summary, env.Config.Currency)
	return nil
}
