package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Occupancy is one slot reading. The ESP32 firmware sends 0/1, older builds send booleans.
type Occupancy bool

// UnmarshalJSON treats any non-zero number, true, or a non-zero numeric string as busy.
func (o *Occupancy) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("true")):
		*o = true
	case bytes.Equal(b, []byte("false")), bytes.Equal(b, []byte("null")):
		*o = false
	default:
		if len(b) > 0 && b[0] == '"' {
			var s string
			if err := json.Unmarshal(b, &s); err != nil {
				return err
			}
			b = []byte(s)
		}
		f, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return fmt.Errorf("occupancy: parse %q: %w", b, err)
		}
		*o = f != 0
	}
	return nil
}

// SensorReading is the sensor_update payload. Slots and MQ135 are optional.
type SensorReading struct {
	Slots     []Occupancy `json:"slots,omitempty"`
	FreeSlots *int        `json:"free_slots,omitempty"`
	MQ135     *AirQuality `json:"mq135,omitempty"`
}

// UnmarshalJSON decodes field by field. A malformed slot reads as free and a
// malformed mq135 or free_slots is left out; only a payload that is not an
// object fails.
func (r *SensorReading) UnmarshalJSON(b []byte) error {
	reading, err := DecodeSensorReading(b)
	var bad *BadFieldsError
	if err != nil && !errors.As(err, &bad) {
		return err
	}
	*r = reading
	return nil
}

// BadFieldsError lists the sensor fields that were dropped while decoding.
type BadFieldsError struct {
	Errs []error
}

func (e *BadFieldsError) Error() string {
	return "sensor_update: " + errors.Join(e.Errs...).Error()
}

// DecodeSensorReading returns whatever part of b is usable. The error is a
// *BadFieldsError when only some fields were malformed.
func DecodeSensorReading(b []byte) (SensorReading, error) {
	var raw struct {
		Slots     json.RawMessage `json:"slots"`
		FreeSlots json.RawMessage `json:"free_slots"`
		MQ135     json.RawMessage `json:"mq135"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return SensorReading{}, fmt.Errorf("sensor_update: %w", err)
	}

	var r SensorReading
	var bad []error
	if present(raw.Slots) {
		var items []json.RawMessage
		if err := json.Unmarshal(raw.Slots, &items); err != nil {
			bad = append(bad, fmt.Errorf("slots: %w", err))
		} else {
			r.Slots = make([]Occupancy, len(items))
			for i, item := range items {
				if err := r.Slots[i].UnmarshalJSON(item); err != nil {
					r.Slots[i] = false
					bad = append(bad, fmt.Errorf("slot %d: %w", i, err))
				}
			}
		}
	}
	if present(raw.FreeSlots) {
		var n int
		if err := json.Unmarshal(raw.FreeSlots, &n); err != nil {
			bad = append(bad, fmt.Errorf("free_slots: %w", err))
		} else {
			r.FreeSlots = &n
		}
	}
	if present(raw.MQ135) {
		var a AirQuality
		if err := a.UnmarshalJSON(raw.MQ135); err != nil {
			bad = append(bad, err)
		} else {
			r.MQ135 = &a
		}
	}
	if len(bad) > 0 {
		return r, &BadFieldsError{Errs: bad}
	}
	return r, nil
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// AirQuality is a raw MQ135 reading. It is truncated to an integer like the firmware
// dashboard always did (parseInt), whether it arrives as a number or a string.
type AirQuality int

func (a *AirQuality) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(s)
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("mq135: parse %q: %w", b, err)
	}
	*a = AirQuality(int(f))
	return nil
}
