// SPDX-License-Identifier: MIT

package cmd

import (
	"math/big"

	"github.com/katalvlaran/lvlinalg/internal/check"
	"github.com/spf13/cobra"
)

func newInverseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inverse",
		Short: "Check A·Inverse(A) = I on random matrices (float64, bigrat)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			return execute(cmd, opts, "inverse", cfg, dispatch(strategies{
				f64: check.Inverses[float64],
				rat: check.Inverses[*big.Rat],
			}))
		},
	}
}
