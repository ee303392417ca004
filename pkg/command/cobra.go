// SPDX-License-Identifier: MPL-2.0

package command

import (
	"context"

	"github.com/spf13/cobra"
)

// ToCobra adapts c into a cobra command so a host can register it with AddCommand.
// Flag parsing is disabled: every argument after the command name reaches Run untouched.
// When the cobra context carries no Env, one is derived from the cobra streams.
func ToCobra(c Command) *cobra.Command {
	return &cobra.Command{
		Use:                c.Name(),
		Short:              c.Description(),
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if _, ok := ctx.Value(envContextKey{}).(*Env); !ok {
				env := DefaultEnv()
				env.Stdin = cmd.InOrStdin()
				env.Stdout = cmd.OutOrStdout()
				env.Stderr = cmd.ErrOrStderr()
				ctx = WithEnv(ctx, env)
			}
			return c.Run(ctx, args)
		},
	}
}
