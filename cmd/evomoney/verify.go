package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/evomoney/evomoney/internal/category"
	"github.com/evomoney/evomoney/internal/cli"
	"github.com/evomoney/evomoney/internal/common"
	"github.com/evomoney/evomoney/internal/diagram"
	"github.com/evomoney/evomoney/internal/verify"
)

func verifyCmd() *cobra.Command {
	var (
		creationAmount float64
		loanAmount     float64
		purchasePrice  float64
		borrower       string
		buyer          string
		seller         string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Build the canonical event diagrams and verify every law",
		RunE: func(cmd *cobra.Command, _ []string) error {
			date := time.Now()

			creation, err := diagram.MoneyCreation(creationAmount, date)
			if err != nil {
				return common.NewUserError("failed to build money creation diagram", err)
			}
			loan, err := diagram.Loan(diagram.AgentCentralBank, borrower, loanAmount, date)
			if err != nil {
				return common.NewUserError("failed to build loan diagram", err)
			}
			purchase, err := diagram.Purchase(buyer, seller, purchasePrice, date)
			if err != nil {
				return common.NewUserError("failed to build purchase diagram", err)
			}

			diagrams := []*diagram.Diagram{creation, loan, purchase}
			cats := make([]*category.Category, len(diagrams))
			for i, d := range diagrams {
				cats[i] = d.Category
			}

			suites, err := verify.Batch(cmd.Context(), cats)
			if err != nil {
				return common.NewUserError("verification interrupted", err)
			}

			for i, d := range diagrams {
				fmt.Print(cli.RenderResults(d.Event, suites[i]))
			}

			invariance := []verify.Result{
				verify.MicroInvariance(diagrams...),
				verify.MacroInvariance(diagram.CanonicalPairs(), diagrams...),
			}
			fmt.Print(cli.RenderResults("conservation", invariance))

			failed := 0
			for _, suite := range suites {
				for _, r := range suite {
					if !r.Passed {
						failed++
					}
				}
			}
			for _, r := range invariance {
				if !r.Passed {
					failed++
				}
			}
			common.LogInfo("verification complete", common.Fields{
				"events":      len(diagrams),
				"failed_laws": failed,
			})

			return nil
		},
	}

	cmd.Flags().Float64Var(&creationAmount, "creation-amount", 1000, "paper money issued by the central bank")
	cmd.Flags().Float64Var(&loanAmount, "loan-amount", 200, "central-bank loan to the commercial bank")
	cmd.Flags().Float64Var(&purchasePrice, "purchase-price", 150, "spot purchase price")
	cmd.Flags().StringVar(&borrower, "borrower", "Bank", "borrowing bank")
	cmd.Flags().StringVar(&buyer, "buyer", "Firm", "purchasing agent")
	cmd.Flags().StringVar(&seller, "seller", "Household", "selling agent")

	return cmd
}
