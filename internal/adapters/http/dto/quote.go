package dto

import "time"

// DateLayout is the calendar date format accepted in query parameters.
const DateLayout = "2006-01-02"

// TodayRequest holds the query parameters of GET /api/v1/quotes/today.
type TodayRequest struct {
	// Date selects the calendar day to resolve. Empty means today.
	Date string `form:"date" validate:"omitempty,datetime=2006-01-02"`
}

// At returns the instant to resolve: noon of Date in loc, or now when Date
// is empty. Noon keeps the day stable when loc has a DST transition at
// midnight.
func (r *TodayRequest) At(now time.Time, loc *time.Location) (time.Time, error) {
	if r.Date == "" {
		return now, nil
	}

	d, err := time.ParseInLocation(DateLayout, r.Date, loc)
	if err != nil {
		return time.Time{}, err
	}

	return d.Add(12 * time.Hour), nil
}
