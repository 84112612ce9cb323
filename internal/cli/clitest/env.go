// Package clitest builds command environments backed by a throwaway store.
package clitest

import (
	"bytes"
	"testing"

	"github.com/GustavoCaso/zerobudget/internal/cli"
	"github.com/GustavoCaso/zerobudget/internal/config"
	"github.com/GustavoCaso/zerobudget/internal/ledger"
	"github.com/GustavoCaso/zerobudget/internal/testutil"
)

func NewEnv(t *testing.T) (cli.Env, *bytes.Buffer) {
	t.Helper()

	logger := testutil.TestLogger(t)
	out := &bytes.Buffer{}

	return cli.Env{
		Ledger: ledger.New(testutil.SetupTestStorage(t, logger), logger),
		Config: &config.Config{Currency: "₹", Addr: "127.0.0.1:0"},
		Logger: logger,
		Out:    out,
	}, out
}
