package visit

// Location is a GPS fix.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ClockInRequest is a caregiver clock-in event.
type ClockInRequest struct {
	CaregiverName string   `json:"caregiver_name"`
	ClientName    *string  `json:"client_name"`
	PhoneNumber   string   `json:"phone_number"`
	Location      Location `json:"location"`
	ScheduledTime string   `json:"scheduled_time"`
	ActualTime    string   `json:"actual_time"`
	HasSchedule   *bool    `json:"has_schedule,omitempty"`
}

// ScheduleKnown defaults to true when the caller did not say otherwise.
func (r ClockInRequest) ScheduleKnown() bool {
	return r.HasSchedule == nil || *r.HasSchedule
}

// ClockOutRequest is a caregiver clock-out event.
type ClockOutRequest struct {
	CaregiverName string   `json:"caregiver_name"`
	ClientName    string   `json:"client_name"`
	PhoneNumber   string   `json:"phone_number"`
	Location      Location `json:"location"`
	ScheduledTime string   `json:"scheduled_time"`
	ActualTime    string   `json:"actual_time"`
}

// ScenarioType names the outcome of evaluating a visit event.
type ScenarioType string

const (
	NoSchedule       ScenarioType = "no_schedule"
	OutOfWindow      ScenarioType = "out_of_window"
	GPSOutOfRange    ScenarioType = "gps_out_of_range"
	WrongPhoneNumber ScenarioType = "wrong_phone_number"
	PhoneNotFound    ScenarioType = "phone_not_found"
	DuplicateCall    ScenarioType = "duplicate_call"
	Accepted         ScenarioType = "accepted"
)

// Priority levels for follow-up calls.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// ScenarioResponse is the agent script for a visit event.
type ScenarioResponse struct {
	ScenarioType    ScenarioType `json:"scenario_type"`
	AgentScript     string       `json:"agent_script"`
	ActionsRequired []string     `json:"actions_required"`
	Priority        string       `json:"priority"`
}

// DuplicateResponse acknowledges a repeated event.
type DuplicateResponse struct {
	Message string `json:"message"`
	Action  string `json:"action"`
}

// Schedule is the assignment a caregiver is expected to be working.
type Schedule struct {
	Client   string   `json:"client"`
	Phone    string   `json:"phone"`
	Window   string   `json:"schedule"`
	Location Location `json:"location"`
}

// Directory holds the registered client phones and caregiver schedules.
type Directory struct {
	Phones    map[string]string
	Schedules map[string]Schedule
}

// Seed returns the agency's demo directory.
func Seed() Directory {
	return Directory{
		Phones: map[string]string{
			"+1234567890": "John Client",
			"+0987654321": "Jane Client",
		},
		Schedules: map[string]Schedule{
			"Mary Caregiver": {
				Client:   "John Client",
				Phone:    "+1234567890",
				Window:   "Monday-Friday 9am-5pm",
				Location: Location{Lat: 40.7128, Lng: -74.0060},
			},
		},
	}
}
