package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	regName     string
	regEmail    string
	regPassword string
	regDOB      string
	regGoal     int
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := apiClient()
		if err != nil {
			return err
		}
		res, err := c.Register(regName, regEmail, regPassword, regDOB, regGoal)
		if err != nil {
			return err
		}
		fmt.Printf("Registered %s (user %d). Now run `cal-tracker login`.\n", res.Name, res.UserID)
		return nil
	},
}

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and save the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, sess, err := apiClient()
		if err != nil {
			return err
		}
		user, err := c.Login(loginEmail, loginPassword)
		if err != nil {
			return err
		}

		sess.Token = c.Token
		sess.UserID = c.UserID
		if err := sess.Save(); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (daily goal %d kcal)\n", user.Name, user.DailyCalorieGoal)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&regName, "name", "", "display name")
	registerCmd.Flags().StringVar(&regEmail, "email", "", "email address")
	registerCmd.Flags().StringVar(&regPassword, "password", "", "password")
	registerCmd.Flags().StringVar(&regDOB, "dob", "", "date of birth (YYYY-MM-DD)")
	registerCmd.Flags().IntVar(&regGoal, "goal", 0, "daily calorie goal (server default if omitted)")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	_ = registerCmd.MarkFlagRequired("dob")

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}
