package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd5e-rules/dnd5e"
	apperrors "github.com/KirkDiggler/dnd5e-rules/internal/errors"
)

var (
	checkProficient bool
	checkExpertise  bool
)

var modifierCmd = &cobra.Command{
	Use:   "modifier <score>",
	Short: "Derive the ability modifier for a score",
	Args:  cobra.ExactArgs(1),
	RunE:  runModifier,
}

var bonusCmd = &cobra.Command{
	Use:   "bonus <level>",
	Short: "Derive the proficiency bonus for a character level",
	Args:  cobra.ExactArgs(1),
	RunE:  runBonus,
}

var checkCmd = &cobra.Command{
	Use:   "check <skill> <score> <level>",
	Short: "Derive the total bonus for a skill check",
	Long: `Derive the total bonus for a skill check from the governing ability's
score and the character's level. Use --proficient or --expertise to add
the proficiency bonus once or twice.`,
	Args: cobra.ExactArgs(3),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkProficient, "proficient", false, "add the proficiency bonus")
	checkCmd.Flags().BoolVar(&checkExpertise, "expertise", false, "add the proficiency bonus twice")
}

func runModifier(cmd *cobra.Command, args []string) error {
	value, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("score must be a number: %w", err)
	}

	score, err := dnd5e.NewAbilityScore(value)
	if err != nil {
		return apperrors.FromRules(err)
	}

	fmt.Println(score.Modifier())
	return nil
}

func runBonus(cmd *cobra.Command, args []string) error {
	value, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("level must be a number: %w", err)
	}

	level, err := dnd5e.NewLevel(value)
	if err != nil {
		return apperrors.FromRules(err)
	}

	fmt.Println(level.ProficiencyBonus())
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	skill, err := dnd5e.ParseSkill(args[0])
	if err != nil {
		return apperrors.FromRules(err)
	}

	scoreValue, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("score must be a number: %w", err)
	}
	score, err := dnd5e.NewAbilityScore(scoreValue)
	if err != nil {
		return apperrors.FromRules(err)
	}

	levelValue, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("level must be a number: %w", err)
	}
	level, err := dnd5e.NewLevel(levelValue)
	if err != nil {
		return apperrors.FromRules(err)
	}

	if checkProficient && checkExpertise {
		return fmt.Errorf("--proficient and --expertise are mutually exclusive")
	}

	total := int(score.Modifier().Value())
	switch {
	case checkExpertise:
		total += 2 * int(level.ProficiencyBonus().Value())
	case checkProficient:
		total += int(level.ProficiencyBonus().Value())
	}

	fmt.Printf("%s (%s): %+d\n", skill.Name(), skill.Ability().Abbr(), total)
	return nil
}
