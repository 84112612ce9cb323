package deletecmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/GustavoCaso/zerobudget/internal/cli"
)

var errMissingID = errors.New("you must provide the id of the record to delete with -id")

type deleteCommand struct {
	table string
	id    int64
}

func NewCommand() cli.Command {
	return &deleteCommand{}
}

func (c *deleteCommand) Description() string {
	return "Deletes a single record by id"
}

func (c *deleteCommand) SetFlags(fs *flag.FlagSet) {
	cli.TableFlag(fs, &c.table)
	fs.Int64Var(&c.id, "id", 0, "id of the record to delete")
}

func (c *deleteCommand) Run(ctx context.Context, env cli.Env) error {
	table, err := cli.ParseTableFlag(c.table)
	if err != nil {
		return err
	}

	if c.id <= 0 {
		return errMissingID
	}

	deleted, err := env.Ledger.DeleteByID(ctx, table, c.id)
	if err != nil {
		return err
	}

	if deleted {
		fmt.Fprintf(env.Out, "Deleted %s #%d\n", table, c.id)
	} else {
		fmt.Fprintf(env.Out, "No %s record with id %d\n", table, c.id)
	}

	summary, err := env.Ledger.Status(ctx)
	if err != nil {
		return err
	}

	cli.PrintStatus(env.Out, summary, env.Config.Currency)
	return nil
}
