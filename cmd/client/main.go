package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/RidgwayA/cal-tracker/client"

	"github.com/spf13/cobra"
)

var serverURL string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cal-tracker",
	Short: "cal-tracker — terminal client for the calorie tracker API",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:4000", "API base URL")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(mealCmd)
	rootCmd.AddCommand(foodCmd)
	rootCmd.AddCommand(profileCmd)
}

// apiClient resumes the saved session, preferring an explicit --server.
func apiClient() (*client.Client, *client.Session, error) {
	sess, err := client.LoadSession()
	if err != nil {
		return nil, nil, err
	}
	if serverURL != "" {
		sess.BaseURL = serverURL
	}
	if sess.BaseURL == "" {
		return nil, nil, errors.New("no server configured; pass --server")
	}
	c := sess.Resume()
	return c, sess, nil
}

// loggedIn is like apiClient but refuses to run without a token.
func loggedIn() (*client.Client, error) {
	c, _, err := apiClient()
	if err != nil {
		return nil, err
	}
	if c.Token == "" {
		return nil, errors.New("not logged in; run `cal-tracker login` first")
	}
	return c, nil
}
