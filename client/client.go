// Package client is a small consumer of the cal-tracker REST API: it
// authenticates, fetches a day's meals, and mirrors mutations into a local
// dashboard without refetching the whole day.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/RidgwayA/cal-tracker/models"

	"github.com/gorilla/websocket"
)

type Client struct {
	BaseURL string
	Token   string
	UserID  uint
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
	}
}

type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

func (c *Client) do(method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &apiError{Status: resp.StatusCode, Message: e.Error}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type RegisterResult struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
	Name    string `json:"name"`
}

func (c *Client) Register(name, email, password, dateOfBirth string, calorieGoal int) (*RegisterResult, error) {
	var out RegisterResult
	err := c.do(http.MethodPost, "/api/auth/register", map[string]any{
		"name":               name,
		"email":              email,
		"password":           password,
		"date_of_birth":      dateOfBirth,
		"daily_calorie_goal": calorieGoal,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login stores the bearer token and user id on the client for every
// subsequent call.
func (c *Client) Login(email, password string) (*models.User, error) {
	var out struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := c.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out); err != nil {
		return nil, err
	}
	c.Token = out.Token
	c.UserID = out.User.ID
	return &out.User, nil
}

func (c *Client) Profile() (*models.User, error) {
	var u models.User
	err := c.do(http.MethodGet, fmt.Sprintf("/api/users/%d", c.UserID), nil, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdatePreferences(fields map[string]any) error {
	return c.do(http.MethodPut, fmt.Sprintf("/api/users/%d/preferences", c.UserID), fields, nil)
}

func (c *Client) MealsForDate(date string) ([]models.Meal, error) {
	var meals []models.Meal
	err := c.do(http.MethodGet, fmt.Sprintf("/api/meals/%d/%s", c.UserID, date), nil, &meals)
	return meals, err
}

func (c *Client) AddMeal(mealName, date string) (*models.Meal, error) {
	var m models.Meal
	err := c.do(http.MethodPost, "/api/meals", map[string]any{
		"user_id":   c.UserID,
		"meal_name": mealName,
		"date":      date,
	}, &m)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) DeleteMeal(mealID uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/meals/%d", mealID), nil, nil)
}

type FoodFields struct {
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (c *Client) AddFood(mealID uint, f FoodFields) (*models.Food, error) {
	var food models.Food
	err := c.do(http.MethodPost, fmt.Sprintf("/api/foods/%d", mealID), f, &food)
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (c *Client) UpdateFood(foodID uint, f FoodFields) (*models.Food, error) {
	var food models.Food
	err := c.do(http.MethodPut, fmt.Sprintf("/api/foods/%d", foodID), f, &food)
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (c *Client) DeleteFood(foodID uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/foods/%d", foodID), nil, nil)
}

type Summary struct {
	Date     string  `json:"date"`
	Consumed int     `json:"consumed"`
	Goal     int     `json:"goal"`
	Percent  float64 `json:"percent"`
	Meals    int     `json:"meals"`
}

func (c *Client) DailySummary(date string) (*Summary, error) {
	var s Summary
	err := c.do(http.MethodGet, fmt.Sprintf("/api/users/%d/summary/%s", c.UserID, date), nil, &s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ChangeEvent mirrors the server's websocket payload.
type ChangeEvent struct {
	Kind   string `json:"kind"`
	MealID uint   `json:"meal_id,omitempty"`
	FoodID uint   `json:"food_id,omitempty"`
	Date   string `json:"date,omitempty"`
}

// Listen opens the change feed and forwards events until the connection
// drops or stop is closed.
func (c *Client) Listen(stop <-chan struct{}, events chan<- ChangeEvent) error {
	wsURL := strings.Replace(c.BaseURL, "http", "ws", 1) + "/api/ws"
	header := http.Header{"Authorization": {"Bearer " + c.Token}}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		return err
	}
	defer conn.Close()

	go func() {
		<-stop
		_ = conn.Close()
	}()

	for {
		var ev ChangeEvent
		if err := conn.ReadJSON(&ev); err != nil {
			return err
		}
		select {
		case events <- ev:
		case <-stop:
			return nil
		}
	}
}
