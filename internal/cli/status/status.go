package status

import (
	"context"
	"flag"

	"github.com/GustavoCaso/zerobudget/internal/cli"
)

type statusCommand struct{}

func NewCommand() cli.Command {
	return statusCommand{}
}

func (c statusCommand) Description() string {
	return "Shows the totals and whether the budget reaches zero"
}

func (c statusCommand) SetFlags(*flag.FlagSet) {
}

func (c statusCommand) Run(ctx context.Context, env cli.Env) error {
	summary, err := env.Ledger.Status(ctx)
	if err != nil {
		return err
	}

	cli.PrintSummary(env.Out, summary, env.Config.Currency)
	return nil
}
