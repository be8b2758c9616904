package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidRating = errors.New("rating must be a whole number")
	ErrInvalidDate   = errors.New("date must be formatted as YYYY-MM-DD")
)

type Ingredient struct {
	Name        string `json:"name"        validate:"required"`
	Measurement string `json:"measurement"`
	Amount      string `json:"amount"`
}

type Recipe struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Directions  []string     `json:"directions"`
	Ingredients []Ingredient `json:"ingredients"`
}

// RecipeRequest is the body of POST and PUT on /recipes.
type RecipeRequest struct {
	Name        *string      `json:"name"        validate:"required,min=1"`
	Directions  []string     `json:"directions"  validate:"required"`
	Ingredients []Ingredient `json:"ingredients" validate:"required,dive"`
}

type ImportRecipeRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type Log struct {
	ID          string `json:"id"`
	DateOfEvent Date   `json:"dateOfEvent"`
	Notes       string `json:"notes"`
	Rating      int    `json:"rating"`
	RecipeID    string `json:"recipeId"`
}

// LogRequest is the body of POST and PUT on /logs.
type LogRequest struct {
	DateOfEvent *Date   `json:"dateOfEvent" validate:"required"`
	Notes       *string `json:"notes"       validate:"required"`
	Rating      *Rating `json:"rating"      validate:"required,min=1,max=5"`
	RecipeID    *string `json:"recipeId"    validate:"required,uuid"`
}

// Error is the body of every failed response.
type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// Rating accepts both 2 and "2".
type Rating int

func (r *Rating) UnmarshalJSON(data []byte) error {
	text := string(bytes.TrimSpace(data))

	if unquoted, err := strconv.Unquote(text); err == nil {
		text = strings.TrimSpace(unquoted)
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRating, data)
	}

	*r = Rating(value)

	return nil
}

// Date is a calendar day. It also accepts RFC 3339 timestamps and keeps their date part.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(time.DateOnly))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, data)
	}

	parsed, err := time.Parse(time.DateOnly, text)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, text)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDate, text)
		}
	}

	*d = NewDate(parsed)

	return nil
}
