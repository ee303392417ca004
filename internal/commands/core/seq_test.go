// SPDX-License-Identifier: MPL-2.0

package core

import (
	"context"
	"errors"
	"testing"

	"github.com/invowk/cmdloader/pkg/command"
)

func TestSeq_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"last only", []string{"3"}, "1\n2\n3\n"},
		{"first and last", []string{"2", "4"}, "2\n3\n4\n"},
		{"increment", []string{"1", "2", "7"}, "1\n3\n5\n7\n"},
		{"negative increment", []string{"3", "-1", "1"}, "3\n2\n1\n"},
		{"fractional", []string{"0", "0.5", "1"}, "0\n0.5\n1\n"},
		{"drift keeps last value", []string{"0", "0.1", "0.3"}, "0\n0.1\n0.2\n0.3\n"},
		{"separator", []string{"-s", ",", "3"}, "1,2,3\n"},
		{"equal width", []string{"-w", "8", "10"}, "08\n09\n10\n"},
		{"empty range", []string{"5", "1"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := runCommand(t, NewSeq(), t.TempDir(), tt.args...)
			if err != nil {
				t.Fatalf("Run(%v) error = %v", tt.args, err)
			}
			if stdout != tt.want {
				t.Errorf("Run(%v) = %q, want %q", tt.args, stdout, tt.want)
			}
		})
	}
}

func TestSeq_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"no operand", nil},
		{"not a number", []string{"ten"}},
		{"zero increment", []string{"1", "0", "5"}},
		{"extra operand", []string{"1", "1", "5", "6"}},
		{"unknown flag", []string{"-x", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, _, err := runCommand(t, NewSeq(), t.TempDir(), tt.args...); err == nil {
				t.Errorf("Run(%v) expected error", tt.args)
			}
		})
	}
}

func TestSeq_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(command.WithEnv(context.Background(), &command.Env{}))
	cancel()

	err := NewSeq().Run(ctx, []string{"1000000"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want %v", err, context.Canceled)
	}
}
