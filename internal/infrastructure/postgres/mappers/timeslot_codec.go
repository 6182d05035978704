package mappers

import (
	"encoding/json"
	"log/slog"

	"github.com/khyunjo1/paytalk-menu-service/internal/domain"
	"github.com/khyunjo1/paytalk-menu-service/internal/infrastructure/metrics"
)

// Metrics counts decode fallbacks. Nil until wired at startup; the
// Record methods tolerate a nil receiver.
var Metrics *metrics.MenuMetrics

// The jsonb columns for pickup windows and delivery slots have drifted over
// time: some rows hold the structured value, older rows hold a JSON string
// that itself contains the value. Decoding tries the structured shape first,
// then the string-wrapped shape, and falls back to the documented default so
// a malformed row degrades instead of breaking the sheet.

// DecodePickupWindow decodes a stored pickup window, accepting either the
// ["09:00","20:00"] pair or a {"start","end"} object, directly or wrapped in
// a JSON string. Failure yields DefaultPickupWindow.
func DecodePickupWindow(raw string) domain.PickupWindow {
	if raw == "" {
		return domain.DefaultPickupWindow
	}
	if w, ok := decodePickupOnce([]byte(raw)); ok {
		return w
	}
	var wrapped string
	if err := json.Unmarshal([]byte(raw), &wrapped); err == nil {
		if w, ok := decodePickupOnce([]byte(wrapped)); ok {
			return w
		}
	}
	slog.Warn("undecodable pickup window, using default", "raw", raw)
	Metrics.RecordSlotDecodeFailure("pickup_window")
	return domain.DefaultPickupWindow
}

func decodePickupOnce(data []byte) (domain.PickupWindow, bool) {
	var pair []domain.TimeOfDay
	if err := json.Unmarshal(data, &pair); err == nil && len(pair) == 2 {
		w := domain.PickupWindow{Start: pair[0], End: pair[1]}
		if w.Start.Valid() && w.End.Valid() {
			return w, true
		}
		return domain.PickupWindow{}, false
	}
	var w domain.PickupWindow
	if err := json.Unmarshal(data, &w); err == nil && w.Start.Valid() && w.End.Valid() {
		return w, true
	}
	return domain.PickupWindow{}, false
}

func EncodePickupWindow(w domain.PickupWindow) string {
	data, err := json.Marshal([]domain.TimeOfDay{w.Start, w.End})
	if err != nil {
		return ""
	}
	return string(data)
}

// DecodeDeliverySlots decodes the slot list, directly or string-wrapped.
// Failure yields an empty list.
func DecodeDeliverySlots(raw string) []domain.DeliverySlot {
	if raw == "" {
		return []domain.DeliverySlot{}
	}
	var slots []domain.DeliverySlot
	if err := json.Unmarshal([]byte(raw), &slots); err == nil {
		return slots
	}
	var wrapped string
	if err := json.Unmarshal([]byte(raw), &wrapped); err == nil {
		if err := json.Unmarshal([]byte(wrapped), &slots); err == nil {
			return slots
		}
	}
	slog.Warn("undecodable delivery slots, using empty list", "raw", raw)
	Metrics.RecordSlotDecodeFailure("delivery_slots")
	return []domain.DeliverySlot{}
}

func EncodeDeliverySlots(slots []domain.DeliverySlot) string {
	if slots == nil {
		slots = []domain.DeliverySlot{}
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return "[]"
	}
	return string(data)
}
