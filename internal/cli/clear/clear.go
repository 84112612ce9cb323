package clearcmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/GustavoCaso/zerobudget/internal/cli"
)

type clearCommand struct {
	table string
	yes   bool
}

func NewCommand() cli.Command {
	return &clearCommand{}
}

func (c *clearCommand) Description() string {
	return "Removes every record of a table"
}

func (c *clearCommand) SetFlags(fs *flag.FlagSet) {
	cli.TableFlag(fs, &c.table)
	fs.BoolVar(&c.yes, "y", false, "confirm the removal")
}

func (c *clearCommand) Run(ctx context.Context, env cli.Env) error {
	table, err := cli.ParseTableFlag(c.table)
	if err != nil {
		return err
	}

	if !c.yes {
		return fmt.Errorf("refusing to clear every %s record without confirmation, pass -y", table)
	}

	cleared, err := env.Ledger.Clear(ctx, table)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "%s data cleared successfully! (%d records)\n", table.Title(), cleared)

	summary, err := env.Ledger.Status(ctx)
	if err != nil {
		return err
	}

	cli.PrintStatus(env.Out, summary, env.Config.Currency)
	return nil
}
