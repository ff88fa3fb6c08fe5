package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xizzxy/NextMove/internal/agents"
	"github.com/xizzxy/NextMove/internal/logger"
	"github.com/xizzxy/NextMove/internal/profile"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute one move plan and print it as JSON",
	Run: func(cmd *cobra.Command, _ []string) {
		runPlan(cmd)
	},
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringP("profile", "p", "", "JSON file with the intake profile; prompts interactively when unset")
	planCmd.Flags().StringP("output", "o", "", "write the plan to this file instead of stdout")
}

func runPlan(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	prof, err := intakeProfile(cmd.Flag("profile").Value.String())
	if err != nil {
		logger.Fatal("reading the profile", zap.Error(err))
	}

	runner := agents.NewRunner(buildDeps(ctx, config, logger))
	result, err := runner.Run(ctx, prof)
	if err != nil {
		logger.Fatal("computing the plan", zap.Error(err))
	}

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal("encoding the plan", zap.Error(err))
	}

	output := cmd.Flag("output").Value.String()
	if output == "" {
		fmt.Println(string(pretty))
		return
	}

	if err := os.WriteFile(output, pretty, 0o644); err != nil {
		logger.Fatal("writing the plan", zap.Error(err))
	}
	logger.Info("plan written", zap.String("filename", output))
}

func intakeProfile(filename string) (profile.Profile, error) {
	if filename != "" {
		return profileFromFile(filename)
	}
	return profileFromPrompts()
}

func profileFromFile(filename string) (profile.Profile, error) {
	var prof profile.Profile

	data, err := os.ReadFile(filename)
	if err != nil {
		return prof, err
	}
	if err := json.Unmarshal(data, &prof); err != nil {
		return prof, fmt.Errorf("parse profile file: %w", err)
	}

	if strings.TrimSpace(prof.City) == "" {
		return prof, fmt.Errorf("profile file is missing the city")
	}
	return prof, nil
}

func profileFromPrompts() (profile.Profile, error) {
	var prof profile.Profile

	city, err := (&promptui.Prompt{
		Label: "Destination city",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("city is required")
			}
			return nil
		},
	}).Run()
	if err != nil {
		return prof, err
	}

	budgetRaw, err := (&promptui.Prompt{
		Label: "Monthly rent budget (USD)",
		Validate: func(s string) error {
			n, convErr := strconv.Atoi(strings.TrimSpace(s))
			if convErr != nil || n <= 0 {
				return fmt.Errorf("budget must be a positive number")
			}
			return nil
		},
	}).Run()
	if err != nil {
		return prof, err
	}
	budget, _ := strconv.Atoi(strings.TrimSpace(budgetRaw))

	_, band, err := (&promptui.Select{
		Label: "Credit band",
		Items: []string{profile.BandExcellent, profile.BandGood, profile.BandFair, profile.BandPoor},
	}).Run()
	if err != nil {
		return prof, err
	}

	career, err := (&promptui.Prompt{Label: "Career path (optional)"}).Run()
	if err != nil {
		return prof, err
	}

	interestsRaw, err := (&promptui.Prompt{Label: "Interests, comma separated (optional)"}).Run()
	if err != nil {
		return prof, err
	}

	var interests []string
	for _, interest := range strings.Split(interestsRaw, ",") {
		if interest = strings.TrimSpace(interest); interest != "" {
			interests = append(interests, interest)
		}
	}

	prof = profile.Profile{
		City:       city,
		Budget:     budget,
		CreditBand: band,
		CareerPath: career,
		Interests:  interests,
	}
	return prof, nil
}
