package cmd

import (
	"fmt"
	"strings"

	"github.com/adasgupta/simtutor/internal/catalog"
	"github.com/spf13/cobra"
)

var simulationsCmd = &cobra.Command{
	Use:   "simulations",
	Short: "List the available simulations",
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		for _, sum := range catalog.List() {
			sim, err := catalog.Get(sum.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%-18s  %s\n", sim.ID, sim.Title)
			if !verbose {
				continue
			}
			fmt.Printf("    %s\n", sim.Description)
			fmt.Printf("    %s\n", sim.BuildURL("", sim.InitialParams, false))
			if len(sim.Concepts) > 0 {
				titles := make([]string, len(sim.Concepts))
				for i, c := range sim.Concepts {
					titles[i] = c.Title
				}
				fmt.Printf("    Concepts: %s\n", strings.Join(titles, ", "))
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	simulationsCmd.Flags().BoolP("verbose", "v", false, "Show descriptions, URLs, and concepts")
}
