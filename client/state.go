package client

import (
	"sync"

	"github.com/RidgwayA/cal-tracker/models"
)

// Dashboard holds the day being viewed. It is never authoritative: after
// each mutation the server's returned entity is patched in locally instead
// of refetching the whole day, and local meal totals are recomputed so
// they track what the server will report.
type Dashboard struct {
	mu    sync.Mutex
	Date  string
	Meals []models.Meal
}

func NewDashboard(date string, meals []models.Meal) *Dashboard {
	return &Dashboard{Date: date, Meals: meals}
}

func (d *Dashboard) Snapshot() []models.Meal {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.Meal, len(d.Meals))
	copy(out, d.Meals)
	return out
}

func recomputeTotal(meal *models.Meal) {
	total := 0
	for _, f := range meal.Foods {
		total += f.Calories
	}
	meal.TotalCalories = total
}

func (d *Dashboard) ApplyMealAdded(meal models.Meal) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if meal.Foods == nil {
		meal.Foods = []models.Food{}
	}
	d.Meals = append(d.Meals, meal)
}

func (d *Dashboard) ApplyMealDeleted(mealID uint) {
	d.mu.Lock()
	defer d.mu.Unlock()
	kept := d.Meals[:0]
	for _, m := range d.Meals {
		if m.ID != mealID {
			kept = append(kept, m)
		}
	}
	d.Meals = kept
}

func (d *Dashboard) ApplyFoodAdded(food models.Food) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.Meals {
		if d.Meals[i].ID == food.MealID {
			d.Meals[i].Foods = append(d.Meals[i].Foods, food)
			recomputeTotal(&d.Meals[i])
			return
		}
	}
}

func (d *Dashboard) ApplyFoodUpdated(food models.Food) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.Meals {
		if d.Meals[i].ID != food.MealID {
			continue
		}
		for j := range d.Meals[i].Foods {
			if d.Meals[i].Foods[j].ID == food.ID {
				d.Meals[i].Foods[j] = food
			}
		}
		recomputeTotal(&d.Meals[i])
		return
	}
}

func (d *Dashboard) ApplyFoodDeleted(mealID, foodID uint) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.Meals {
		if d.Meals[i].ID != mealID {
			continue
		}
		kept := d.Meals[i].Foods[:0]
		for _, f := range d.Meals[i].Foods {
			if f.ID != foodID {
				kept = append(kept, f)
			}
		}
		d.Meals[i].Foods = kept
		recomputeTotal(&d.Meals[i])
		return
	}
}

// TotalCalories is the day's aggregate shown at the top of the dashboard.
func (d *Dashboard) TotalCalories() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	total := 0
	for _, m := range d.Meals {
		total += m.TotalCalories
	}
	return total
}
