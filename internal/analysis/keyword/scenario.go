package keyword

// Caregiver scenarios detected by the backend.
const (
	ScheduleIssue  = "Schedule Issue"
	LocationIssue  = "Location Issue"
	PhoneIssue     = "Phone Issue"
	TimingIssue    = "Timing Issue"
	GeneralRequest = GeneralInquiry
)

// Scenarios is matched against the reason and message together.
var Scenarios = Table{
	{Category: ScheduleIssue, Match: Any("schedule", "calendar", "missing", "not showing", "removed")},
	{Category: LocationIssue, Match: Any("location", "gps", "outside", "range", "distance", "address")},
	{Category: PhoneIssue, Match: Any("phone", "number", "call", "ivr", "registered")},
	{Category: TimingIssue, Match: Any("late", "early", "time", "clock", "hours", "forgot")},
	{Category: GeneralRequest},
}

// DegradedScenarios is the coarse message-only guess used when no script applies.
var DegradedScenarios = Table{
	{Category: ScheduleIssue, Match: Any("schedule")},
	{Category: LocationIssue, Match: Any("location", "gps")},
	{Category: PhoneIssue, Match: Any("phone")},
	{Category: TimingIssue, Match: Any("late", "time")},
	{Category: GeneralRequest},
}

// DetectScenario classifies a caregiver request from its reason and message.
func DetectScenario(reason, message string) string {
	rule, _ := Dispatch(Scenarios, reason+" "+message)
	return rule.Category
}

// GuessScenario is the degraded variant of DetectScenario.
func GuessScenario(reason, message string) string {
	if rule, ok := Dispatch(DegradedScenarios[:1], reason); ok {
		return rule.Category
	}
	rule, _ := Dispatch(DegradedScenarios, message)
	return rule.Category
}
