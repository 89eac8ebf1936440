package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd5e-rules/dnd5e"
)

var abilitiesCmd = &cobra.Command{
	Use:   "abilities",
	Short: "List the six abilities and the skills they govern",
	Run:   runAbilities,
}

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the eighteen skills and their governing abilities",
	Run:   runSkills,
}

func runAbilities(cmd *cobra.Command, args []string) {
	for _, ability := range dnd5e.Abilities() {
		skills := ability.Skills()
		names := make([]string, len(skills))
		for i, skill := range skills {
			names[i] = skill.Name()
		}
		fmt.Printf("%-12s (%s)  %s\n", ability.Name(), ability.Abbr(), strings.Join(names, ", "))
	}
}

func runSkills(cmd *cobra.Command, args []string) {
	for _, skill := range dnd5e.Skills() {
		fmt.Printf("%-15s %s\n", skill.Name(), skill.Ability().Name())
	}
}
