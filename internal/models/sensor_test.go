package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDecodeSensorReading_KeepsUsableFields(t *testing.T) {
	r, err := DecodeSensorReading([]byte(`{"slots":[true,"x",1],"free_slots":"two","mq135":"410"}`))
	var bad *BadFieldsError
	if !errors.As(err, &bad) || len(bad.Errs) != 2 {
		t.Fatalf("err=%v, want two bad fields", err)
	}
	if len(r.Slots) != 3 || !r.Slots[0] || r.Slots[1] || !r.Slots[2] {
		t.Fatalf("slots=%v", r.Slots)
	}
	if r.FreeSlots != nil {
		t.Fatalf("free_slots=%d, want absent", *r.FreeSlots)
	}
	if r.MQ135 == nil || *r.MQ135 != 410 {
		t.Fatalf("mq135=%v", r.MQ135)
	}
}

func TestDecodeSensorReading_NullFieldsAreAbsent(t *testing.T) {
	r, err := DecodeSensorReading([]byte(`{"slots":null,"mq135":null}`))
	if err != nil {
		t.Fatalf("DecodeSensorReading: %v", err)
	}
	if r.Slots != nil || r.MQ135 != nil {
		t.Fatalf("reading=%+v, want empty", r)
	}
}

func TestSensorReading_UnmarshalIsLenient(t *testing.T) {
	var r SensorReading
	if err := json.Unmarshal([]byte(`{"slots":[0,"?"],"mq135":"abc"}`), &r); err != nil {
		t.Fatalf("bad fields must not fail the whole reading: %v", err)
	}
	if len(r.Slots) != 2 || r.MQ135 != nil {
		t.Fatalf("reading=%+v", r)
	}
	if err := json.Unmarshal([]byte(`[1,2]`), &r); err == nil {
		t.Fatal("a non-object payload must fail")
	}
}
