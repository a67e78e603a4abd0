package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loggedIn()
		if err != nil {
			return err
		}
		u, err := c.Profile()
		if err != nil {
			return err
		}
		fmt.Printf("name:  %s\nemail: %s\ndob:   %s\ngoal:  %d kcal/day\n",
			u.Name, u.Email, u.DateOfBirth, u.DailyCalorieGoal)
		return nil
	},
}

var (
	setName  string
	setEmail string
	setDOB   string
	setGoal  int
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields (only the flags you pass are changed)",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loggedIn()
		if err != nil {
			return err
		}

		fields := map[string]any{}
		if cmd.Flags().Changed("name") {
			fields["name"] = setName
		}
		if cmd.Flags().Changed("email") {
			fields["email"] = setEmail
		}
		if cmd.Flags().Changed("dob") {
			fields["date_of_birth"] = setDOB
		}
		if cmd.Flags().Changed("goal") {
			fields["daily_calorie_goal"] = setGoal
		}
		if len(fields) == 0 {
			return fmt.Errorf("nothing to update; pass at least one of --name/--email/--dob/--goal")
		}

		if err := c.UpdatePreferences(fields); err != nil {
			return err
		}
		fmt.Println("Profile updated")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&setName, "name", "", "display name")
	profileSetCmd.Flags().StringVar(&setEmail, "email", "", "email address")
	profileSetCmd.Flags().StringVar(&setDOB, "dob", "", "date of birth (YYYY-MM-DD)")
	profileSetCmd.Flags().IntVar(&setGoal, "goal", 0, "daily calorie goal")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
}
