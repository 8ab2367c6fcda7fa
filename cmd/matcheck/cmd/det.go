// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlinalg/internal/check"
	"github.com/katalvlaran/lvlinalg/internal/config"
	"github.com/spf13/cobra"
)

func newDetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "det",
		Short: "Compare the LUP and permutation determinants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			if cfg.Check.Order > config.MaxPermutationOrder {
				return fmt.Errorf("det: order %d exceeds %d (permutation expansion is O(n!)): %w",
					cfg.Check.Order, config.MaxPermutationOrder, config.ErrInvalidConfig)
			}

			return execute(cmd, opts, "det", cfg, dispatch(strategies{
				f64:    check.Determinants[float64],
				rat:    check.Determinants[*big.Rat],
				i64:    check.Determinants[int64],
				bigInt: check.Determinants[*big.Int],
			}))
		},
	}
}
