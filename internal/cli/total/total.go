package total

import (
	"context"
	"flag"
	"fmt"

	"github.com/GustavoCaso/zerobudget/internal/cli"
	"github.com/GustavoCaso/zerobudget/internal/util"
)

type totalCommand struct {
	table string
}

func NewCommand() cli.Command {
	return &totalCommand{}
}

func (c *totalCommand) Description() string {
	return "Prints the sum of the amounts of a table"
}

func (c *totalCommand) SetFlags(fs *flag.FlagSet) {
	cli.TableFlag(fs, &c.table)
}

func (c *totalCommand) Run(ctx context.Context, env cli.Env) error {
	table, err := cli.ParseTableFlag(c.table)
	if err != nil {
		return err
	}

	total, err := env.Ledger.Total(ctx, table)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "%s: %s\n", cli.TotalLabel(table), util.FormatAmount(total, env.Config.Currency, ",", "."))
	return nil
}
