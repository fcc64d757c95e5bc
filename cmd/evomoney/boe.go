package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/evomoney/evomoney/internal/cli"
	"github.com/evomoney/evomoney/internal/common"
	"github.com/evomoney/evomoney/internal/diagram"
	"github.com/evomoney/evomoney/internal/verify"
)

func boeCmd() *cobra.Command {
	var (
		face           float64
		centralRate    float64
		commercialRate float64
		start          string
		maturityDays   int
	)

	cmd := &cobra.Command{
		Use:   "boe",
		Short: "Run a full bill-of-exchange lifecycle and print its transaction log",
		RunE: func(_ *cobra.Command, _ []string) error {
			startDate, err := time.Parse(time.DateOnly, start)
			if err != nil {
				return common.NewUserError("invalid --start date", err)
			}
			if maturityDays <= 28 {
				return common.NewUserError("--maturity-days must exceed the acceptance window (28 days)", nil)
			}

			terms := diagram.Terms{
				FaceValue:       face,
				CentralBankRate: centralRate,
				CommercialRate:  commercialRate,
				Buyer:           "Firm",
				Seller:          "Household",
				BuyerBank:       "BuyerBank",
				SellerBank:      "SellerBank",
			}

			maturity := startDate.AddDate(0, 0, maturityDays)
			timeline := []time.Time{
				startDate,
				startDate.AddDate(0, 0, 7),
				startDate.AddDate(0, 0, 14),
				startDate.AddDate(0, 0, 28),
				maturity,
				maturity.AddDate(0, 0, 3),
			}

			lifecycle, err := diagram.NewLifecycle(terms, timeline)
			if err != nil {
				return common.NewUserError("failed to set up the lifecycle", err)
			}

			var diagrams []*diagram.Diagram
			for _, date := range timeline {
				d, err := lifecycle.Advance(date)
				if err != nil {
					common.LogError(err, "lifecycle transition failed", common.Fields{
						"date": date.Format(time.DateOnly),
					})
					return common.NewUserError("lifecycle transition failed", err)
				}
				common.LogDebug("lifecycle transition", common.Fields{
					"state":    string(lifecycle.State()),
					"date":     date.Format(time.DateOnly),
					"bookings": len(d.Bookings),
				})
				diagrams = append(diagrams, d)
			}

			fmt.Print(cli.RenderLog(lifecycle.Log()))

			invariance := []verify.Result{
				verify.MicroInvariance(diagrams...),
				verify.MacroInvariance(diagram.CanonicalPairs(), diagrams...),
			}
			fmt.Print(cli.RenderResults("conservation", invariance))

			return nil
		},
	}

	cmd.Flags().Float64Var(&face, "face", 5000, "face value of the bill")
	cmd.Flags().Float64Var(&centralRate, "central-rate", 0.05, "central bank rediscount rate")
	cmd.Flags().Float64Var(&commercialRate, "commercial-rate", 0.10, "commercial discount rate")
	cmd.Flags().StringVar(&start, "start", "2026-01-01", "delivery date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&maturityDays, "maturity-days", 90, "days from delivery to maturity")

	return cmd
}
