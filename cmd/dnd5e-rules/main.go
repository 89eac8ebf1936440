// Package main is the entry point for the dnd5e-rules CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dnd5e-rules",
	Short: "D&D 5e rules calculator",
	Long:  `dnd5e-rules answers rules questions from the D&D 5e core tables: abilities, skills, modifiers, and proficiency bonuses.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(abilitiesCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(modifierCmd)
	rootCmd.AddCommand(bonusCmd)
	rootCmd.AddCommand(checkCmd)
}
