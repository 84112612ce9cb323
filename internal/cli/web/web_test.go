package web

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/GustavoCaso/zerobudget/internal/cli/clitest"
)

func TestNewCommand(t *testing.T) {
	cmd := NewCommand()
	if cmd == nil {
		t.Fatal("Expected non-nil command")
	}

	if desc := cmd.Description(); desc != "JSON API server" {
		t.Errorf("Description = %q, want JSON API server", desc)
	}
}

func TestSetFlags(t *testing.T) {
	cmd := NewCommand()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(fs)

	timeoutFlag := fs.Lookup("timeout")
	if timeoutFlag == nil {
		t.Fatal("Expected timeout flag to be registered")
	}
	if timeoutFlag.DefValue != "3" {
		t.Errorf("Timeout default value = %q, want 3", timeoutFlag.DefValue)
	}

	for _, name := range []string{"addr", "origins"} {
		if fs.Lookup(name) == nil {
			t.Errorf("Expected %s flag to be registered", name)
		}
	}
}

func TestSplitOrigins(t *testing.T) {
	got := splitOrigins(" http://a.test , ,http://b.test")
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Errorf("splitOrigins() = %v", got)
	}
	if got = splitOrigins(""); len(got) != 0 {
		t.Errorf("splitOrigins(\"\") = %v, want empty", got)
	}
}

func TestServe(t *testing.T) {
	env, _ := clitest.NewEnv(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}

	cmd := &webCommand{timeout: defaultTimeout}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- cmd.serve(ctx, env, listener)
	}()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://%s/api/status", listener.Addr()))
	if err != nil {
		cancel()
		t.Fatalf("GET /api/status error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Status code = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if !strings.Contains(string(body), `"status":"empty"`) {
		t.Errorf("Unexpected body: %s", body)
	}

	cancel()

	select {
	case err = <-done:
		if err != nil {
			t.Errorf("serve() error = %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("server did not shut down")
	}
}
