package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/evomoney/evomoney/internal/category"
	"github.com/evomoney/evomoney/internal/cli"
	"github.com/evomoney/evomoney/internal/common"
	"github.com/evomoney/evomoney/internal/pattern"
	"github.com/evomoney/evomoney/internal/verify"
)

func colimitCmd() *cobra.Command {
	var (
		objectIDs []string
		bind      []string
	)

	cmd := &cobra.Command{
		Use:   "colimit",
		Short: "Build a chain category, bind a pattern, and fold its colimit back in",
		Long: `Builds a category whose objects form a chain (each object linked to
the next), selects the requested objects as a pattern, computes the
pattern's colimit, and complexifies the category with the binding
object. Prints the resulting cocone and the law report.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if len(objectIDs) < 2 {
				return common.NewUserError("need at least two --objects", nil)
			}

			objects := make([]category.Object, len(objectIDs))
			for i, id := range objectIDs {
				objects[i] = category.NewObject(id)
			}

			edges := make([]category.Morphism, 0, len(objects)-1)
			for i := 0; i+1 < len(objects); i++ {
				label := fmt.Sprintf("f%d", i+1)
				edges = append(edges,
					category.NewMorphism(objects[i], objects[i+1], label, 0, time.Time{}))
			}

			// Close the chain under composition so the law suite has
			// every composite in the table.
			morphisms := append([]category.Morphism(nil), edges...)
			spans := append([]category.Morphism(nil), edges...)
			for i := range spans {
				for j := i + 1; j < len(edges); j++ {
					composite, err := category.Compose(spans[i], edges[j])
					if err != nil {
						return common.NewUserError("failed to close the chain", err)
					}
					spans[i] = composite
					morphisms = append(morphisms, composite)
				}
			}

			cat, err := category.New(objects, morphisms)
			if err != nil {
				return common.NewUserError("failed to build the category", err)
			}

			if len(bind) == 0 {
				bind = objectIDs[:2]
			}
			var links []category.Pair
			for i := 0; i+1 < len(bind); i++ {
				links = append(links, category.Pair{Source: bind[i], Target: bind[i+1]})
			}

			p, err := pattern.New("selection", cat, bind, links)
			if err != nil {
				return common.NewUserError("failed to build the pattern", err)
			}

			colim := pattern.Calculate(p)
			fmt.Printf("binding object: %s\n", cli.BoldStyle.Render(colim.Binding.ID))
			for _, obj := range p.Objects() {
				fmt.Printf("  cocone %s -> %s\n", obj.ID, colim.Cocone[obj.ID].Target.ID)
			}

			folded, err := pattern.Complexify(cat, p)
			if err != nil {
				return common.NewUserError("complexification failed", err)
			}

			results := append(verify.LawSuite(folded), verify.UniversalProperty(p, colim))
			fmt.Print(cli.RenderResults("laws after complexification", results))

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&objectIDs, "objects", []string{"A", "B", "C"}, "chain object IDs")
	cmd.Flags().StringSliceVar(&bind, "bind", nil, "object IDs to bind (default: first two objects)")

	return cmd
}
