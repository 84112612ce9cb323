package add

import (
	"context"
	"flag"
	"fmt"

	"github.com/GustavoCaso/zerobudget/internal/cli"
	"github.com/GustavoCaso/zerobudget/internal/util"
)

type addCommand struct {
	table    string
	name     string
	category string
	amount   string
}

func NewCommand() cli.Command {
	return &addCommand{}
}

func (c *addCommand) Description() string {
	return "Adds an income, expense or saving entry"
}

func (c *addCommand) SetFlags(fs *flag.FlagSet) {
	cli.TableFlag(fs, &c.table)
	fs.StringVar(&c.name, "n", "", "entry name")
	fs.StringVar(&c.category, "c", "", "expense category (ignored for income and saving)")
	fs.StringVar(&c.amount, "a", "", "entry amount")
}

func (c *addCommand) Run(ctx context.Context, env cli.Env) error {
	table, err := cli.ParseTableFlag(c.table)
	if err != nil {
		return err
	}

	record, err := env.Ledger.Add(ctx, table, c.name, c.category, c.amount)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Added %s #%d %s: %s\n",
		table,
		record.ID,
		record.Name,
		util.FormatAmount(record.Amount, env.Config.Currency, ",", "."),
	)

	summary, err := env.Ledger.Status(ctx)
	if err != nil {
		return err
	}

	cli.PrintStatus(env.Out, summary, env.Config.Currency)
	return nil
}
