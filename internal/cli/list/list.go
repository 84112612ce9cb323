package list

import (
	"context"
	"flag"
	"fmt"

	"github.com/GustavoCaso/zerobudget/internal/cli"
	"github.com/GustavoCaso/zerobudget/internal/storage"
	"github.com/GustavoCaso/zerobudget/internal/util"
)

type listCommand struct {
	table string
}

func NewCommand() cli.Command {
	return &listCommand{}
}

func (c *listCommand) Description() string {
	return "Lists the records of a table, or of every table when -t is omitted"
}

func (c *listCommand) SetFlags(fs *flag.FlagSet) {
	cli.TableFlag(fs, &c.table)
}

func (c *listCommand) Run(ctx context.Context, env cli.Env) error {
	tables := storage.Tables
	if c.table != "" {
		table, err := storage.ParseTable(c.table)
		if err != nil {
			return err
		}
		tables = []storage.Table{table}
	}

	for _, table := range tables {
		records, err := env.Ledger.ListAll(ctx, table)
		if err != nil {
			return err
		}

		fmt.Fprintln(env.Out, util.ColorOutput(table.Title(), "bold", "underline"))
		if len(records) == 0 {
			fmt.Fprintln(env.Out, "No records")
			continue
		}
		cli.PrintRecords(env.Out, table, records, env.Config.Currency)
	}

	return nil
}
