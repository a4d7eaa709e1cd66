package main

import (
	"fmt"

	"github.com/govalues/tafqit"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		currency string
		unit     string
		subunit  string
		digits   bool
	)

	cmd := &cobra.Command{
		Use:   "tafqit AMOUNT",
		Short: "Render a monetary amount as an Arabic cheque legend",
		Long: `Render a monetary amount as an Arabic cheque legend.

The amount is written in words using the unit nouns of the selected
currency, for example:

  tafqit -c EGP 1234.56
  ألف و مائتان و أربعة و ثلاثون جنيه مصري و ستة و خمسون قرش`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := tafqit.ParseAmount(currency, args[0])
			if err != nil {
				return err
			}

			var words string
			if unit != "" || subunit != "" {
				f, ok := a.Decimal().Float64()
				if !ok {
					return fmt.Errorf("amount %s cannot be represented as a float", a)
				}
				words = tafqit.AmountWords(f, unit, subunit)
			} else {
				words = a.Words()
			}
			if words == "" {
				return fmt.Errorf("amount %s is out of the convertible range", a)
			}

			fmt.Fprintln(cmd.OutOrStdout(), words)
			if digits {
				fmt.Fprintln(cmd.OutOrStdout(), a.Numerals())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&currency, "currency", "c", "EGP", "ISO 4217 code of the amount's currency")
	cmd.Flags().StringVar(&unit, "unit", "", "override the main unit noun (subunits default to piastres)")
	cmd.Flags().StringVar(&subunit, "subunit", "", "override the subunit noun")
	cmd.Flags().BoolVar(&digits, "digits", false, "also print the amount in Eastern Arabic-Indic numerals")

	return cmd
}
