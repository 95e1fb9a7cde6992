package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adventure-squad/neon-runner/internal/runner"
)

var charactersCmd = &cobra.Command{
	Use:     "characters",
	Aliases: []string{"heroes"},
	Short:   "List the playable heroes",
	Long:    `Shows the hero roster in the order of the selection screen.`,
	Args:    cobra.NoArgs,
	Run:     runCharacters,
}

func runCharacters(_ *cobra.Command, _ []string) {
	heroes := runner.Characters()

	fmt.Println("Heroes:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-3s  %-8s  %-8s  %s\n", "Key", "ID", "Name", "Role")
	fmt.Printf("  %-3s  %-8s  %-8s  %s\n", "---", "--", "----", "----")

	for i, h := range heroes {
		fmt.Printf("  %-3d  %-8s  %-8s  %s\n", i+1, h.ID, h.Name, h.Description)
	}

	fmt.Println()
	fmt.Println("Run 'neonrunner play' and press the key to pick a hero.")
}
