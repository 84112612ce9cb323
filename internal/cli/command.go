package cli

import (
	"context"
	"flag"
	"io"

	"github.com/GustavoCaso/zerobudget/internal/config"
	"github.com/GustavoCaso/zerobudget/internal/ledger"
	"github.com/GustavoCaso/zerobudget/internal/logger"
)

// Env carries what every command needs to run. It is built once in main and
// handed to the selected command.
type Env struct {
	Ledger *ledger.Ledger
	Config *config.Config
	Logger *logger.Logger
	Out    io.Writer
}

type Command interface {
	SetFlags(fset *flag.FlagSet)
	Description() string
	Run(ctx context.Context, env Env) error
}
