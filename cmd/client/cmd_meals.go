package main

import (
	"fmt"
	"strconv"

	"github.com/RidgwayA/cal-tracker/client"

	"github.com/spf13/cobra"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Manage meals",
}

var mealDate string

var mealAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Log a meal (Breakfast, Lunch, Dinner, Snack, or anything else)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loggedIn()
		if err != nil {
			return err
		}
		meal, err := c.AddMeal(args[0], mealDate)
		if err != nil {
			return err
		}
		fmt.Printf("Added meal [%d] %s on %s\n", meal.ID, meal.MealName, meal.Date)
		return nil
	},
}

var mealRmCmd = &cobra.Command{
	Use:   "rm MEAL_ID",
	Short: "Delete a meal and all its foods",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loggedIn()
		if err != nil {
			return err
		}
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid meal id %q", args[0])
		}
		if err := c.DeleteMeal(uint(id)); err != nil {
			return err
		}
		fmt.Println("Meal deleted")
		return nil
	},
}

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage foods within a meal",
}

var foodFields client.FoodFields

func foodFlagSet(cmd *cobra.Command) {
	cmd.Flags().StringVar(&foodFields.Name, "name", "", "food name")
	cmd.Flags().IntVar(&foodFields.Calories, "calories", 0, "calories (kcal)")
	cmd.Flags().Float64Var(&foodFields.Protein, "protein", 0, "protein (g)")
	cmd.Flags().Float64Var(&foodFields.Carbs, "carbs", 0, "carbs (g)")
	cmd.Flags().Float64Var(&foodFields.Fat, "fat", 0, "fat (g)")
	_ = cmd.MarkFlagRequired("name")
}

var foodAddCmd = &cobra.Command{
	Use:   "add MEAL_ID",
	Short: "Add a food to a meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loggedIn()
		if err != nil {
			return err
		}
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid meal id %q", args[0])
		}
		food, err := c.AddFood(uint(id), foodFields)
		if err != nil {
			return err
		}
		fmt.Printf("Added food [%d] %s (%d kcal)\n", food.ID, food.Name, food.Calories)
		return nil
	},
}

var foodEditCmd = &cobra.Command{
	Use:   "edit FOOD_ID",
	Short: "Replace a food's name and macros",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loggedIn()
		if err != nil {
			return err
		}
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid food id %q", args[0])
		}
		food, err := c.UpdateFood(uint(id), foodFields)
		if err != nil {
			return err
		}
		fmt.Printf("Updated food [%d] %s (%d kcal)\n", food.ID, food.Name, food.Calories)
		return nil
	},
}

var foodRmCmd = &cobra.Command{
	Use:   "rm FOOD_ID",
	Short: "Delete a food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loggedIn()
		if err != nil {
			return err
		}
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid food id %q", args[0])
		}
		if err := c.DeleteFood(uint(id)); err != nil {
			return err
		}
		fmt.Println("Food deleted")
		return nil
	},
}

func init() {
	mealAddCmd.Flags().StringVar(&mealDate, "date", "", "meal date (YYYY-MM-DD, default today)")
	mealCmd.AddCommand(mealAddCmd)
	mealCmd.AddCommand(mealRmCmd)

	foodFlagSet(foodAddCmd)
	foodFlagSet(foodEditCmd)
	foodCmd.AddCommand(foodAddCmd)
	foodCmd.AddCommand(foodEditCmd)
	foodCmd.AddCommand(foodRmCmd)
}
