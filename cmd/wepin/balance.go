package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/wepin/wepin-common-go/internal/logger"
	"github.com/wepin/wepin-common-go/internal/output"
	"github.com/wepin/wepin-common-go/pkg/decimal"
	"github.com/wepin/wepin-common-go/pkg/werrors"
	"go.uber.org/zap"
)

func balanceCommand(a *app) *cobra.Command {
	var (
		decimals int
		places   int
		toBase   bool
	)
	cmd := &cobra.Command{
		Use:   "balance <amount>",
		Short: "Format a base-unit balance with the token's decimals",
		Long: "Format a base-unit balance with the token's decimals.\n" +
			"With --to-base the amount is read in display units and converted back to base units.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount := args[0]
			doc := output.NewDocument("BALANCE").
				Add("input", amount).
				Add("decimals", strconv.Itoa(decimals))

			if toBase {
				b, err := decimal.NewBalanceFromString(amount)
				if err != nil {
					return werrors.Wrap(werrors.CodeInvalidParameter, err, "")
				}
				raw, err := b.ToBaseUnits(decimals)
				if err != nil {
					return werrors.Wrap(werrors.CodeInvalidParameter, err, "")
				}
				return a.render(cmd, doc.Add("baseUnits", raw))
			}

			if places > decimal.MaxScale {
				return werrors.Newf(werrors.CodeInvalidParameter, "places must not exceed %d", decimal.MaxScale)
			}
			formatted := decimal.GetBalanceWithDecimal(amount, decimals)
			if formatted == "0" && amount != "0" {
				logger.Debug(cmd.Context(), "balance formatted as zero", zap.String("input", amount), zap.Int("decimals", decimals))
			}
			doc.Add("balance", formatted)
			if places >= 0 {
				b, err := decimal.NewBalanceFromString(formatted)
				if err != nil {
					return werrors.Wrap(werrors.CodeParsingFailed, err, "")
				}
				doc.Add("fixed", b.StringFixed(int32(places)))
			}
			return a.render(cmd, doc)
		},
	}
	cmd.Flags().IntVarP(&decimals, "decimals", "d", 18, "Token decimals")
	cmd.Flags().IntVar(&places, "places", -1, "Also show the balance with exactly this many fractional digits")
	cmd.Flags().BoolVar(&toBase, "to-base", false, "Convert a display amount to base units")
	return cmd
}
