package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/RidgwayA/cal-tracker/client"

	"github.com/spf13/cobra"
)

var (
	dashDate  string
	dashWatch bool
)

func today() string {
	return time.Now().Format("2006-01-02")
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show meals and calorie progress for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loggedIn()
		if err != nil {
			return err
		}

		date := dashDate
		if date == "" {
			date = today()
		}

		meals, err := c.MealsForDate(date)
		if err != nil {
			return err
		}
		board := client.NewDashboard(date, meals)
		printDashboard(c, board)

		if !dashWatch {
			return nil
		}

		// Follow the server's change feed and repaint on every event.
		stop := make(chan struct{})
		events := make(chan client.ChangeEvent, 8)
		go func() {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt)
			<-sig
			close(stop)
		}()
		go func() {
			_ = c.Listen(stop, events)
			close(events)
		}()

		for range events {
			fresh, err := c.MealsForDate(date)
			if err != nil {
				continue
			}
			board = client.NewDashboard(date, fresh)
			printDashboard(c, board)
		}
		return nil
	},
}

func printDashboard(c *client.Client, board *client.Dashboard) {
	readOnly := ""
	if board.Date != today() {
		readOnly = " (read-only: not today)"
	}
	fmt.Printf("\n== %s%s ==\n", board.Date, readOnly)

	meals := board.Snapshot()
	if len(meals) == 0 {
		fmt.Println("no meals logged")
	}
	for _, m := range meals {
		fmt.Printf("[%d] %s — %d kcal\n", m.ID, m.MealName, m.TotalCalories)
		for _, f := range m.Foods {
			fmt.Printf("    [%d] %s  %d kcal  P%.1f C%.1f F%.1f\n",
				f.ID, f.Name, f.Calories, f.Protein, f.Carbs, f.Fat)
		}
	}

	if sum, err := c.DailySummary(board.Date); err == nil {
		fmt.Printf("total: %d / %d kcal (%.0f%%)\n", sum.Consumed, sum.Goal, sum.Percent*100)
	} else {
		fmt.Printf("total: %d kcal\n", board.TotalCalories())
	}
}

func init() {
	dashboardCmd.Flags().StringVar(&dashDate, "date", "", "day to show (YYYY-MM-DD, default today)")
	dashboardCmd.Flags().BoolVar(&dashWatch, "watch", false, "stay attached and repaint on server changes")
}
