package cmd

import (
	"bytes"
	"testing"

	m "github.com/mole-wink/logmend/internal/model"
)

func TestFixCmd(t *testing.T) {
	mock := &mockWorkflow{}
	swapWorkflow(t, mock)

	cmd := newFixCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--rule", "single-stringify", "--dry-run", "server/routes.ts"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(mock.fixArgs) != 1 {
		t.Fatalf("Fix called %d times, want 1", len(mock.fixArgs))
	}

	args := mock.fixArgs[0]

	if !args.DryRun {
		t.Fatalf("DryRun = false, want true")
	}

	if len(args.Rules) != 1 || args.Rules[0] != m.RuleSingleStringify {
		t.Fatalf("Rules = %v, want [single-stringify]", args.Rules)
	}

	if len(args.Paths) != 1 || args.Paths[0] != "server/routes.ts" {
		t.Fatalf("Paths = %v", args.Paths)
	}
}
