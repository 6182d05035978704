package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is an "HH:MM" 24-hour wall-clock time. Comparisons go through
// Minutes so that "9:30" and "09:30" order the same.
type TimeOfDay string

// DefaultOrderCutoff applies when a store never configured a cutoff.
const DefaultOrderCutoff TimeOfDay = "15:00"

// DefaultPickupWindow applies when a stored pickup window cannot be decoded.
var DefaultPickupWindow = PickupWindow{Start: "09:00", End: "20:00"}

// Minutes converts to minutes since midnight.
func (t TimeOfDay) Minutes() (int, error) {
	parts := strings.SplitN(string(t), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time of day: %q", t)
	}
	hh, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid time of day: %q", t)
	}
	mm, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("invalid time of day: %q", t)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("time of day out of range: %q", t)
	}
	return hh*60 + mm, nil
}

func (t TimeOfDay) Valid() bool {
	_, err := t.Minutes()
	return err == nil
}

// PickupWindow is the start/end pair a buyer can pick food up in.
type PickupWindow struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// DeliverySlot is one named delivery run, e.g. "Lunch 11:30-13:00".
type DeliverySlot struct {
	Name    string    `json:"name"`
	Start   TimeOfDay `json:"start"`
	End     TimeOfDay `json:"end"`
	Enabled bool      `json:"enabled"`
}
