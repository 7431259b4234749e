package models

// RegisteredVehicle is a monthly-pass vehicle, keyed by plate.
type RegisteredVehicle struct {
	ID          int64  `json:"id,omitempty"`
	Plate       string `json:"plate"`
	Owner       string `json:"owner,omitempty"`
	VehicleType string `json:"vehicle_type,omitempty"`
	ExpiryDate  string `json:"expiry_date,omitempty"`
}

// VehicleInput is the body of POST /api/registered.
type VehicleInput struct {
	Plate string `json:"plate"`
	Owner string `json:"owner"`
	Type  string `json:"type"`
}

// APIResult is the {status, msg} envelope the backend answers mutations with.
type APIResult struct {
	Status string `json:"status"`
	Msg    string `json:"msg,omitempty"`
}

// OK reports whether the backend accepted the request.
func (r APIResult) OK() bool { return r.Status == "ok" }
