package visit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/independencecare/chatdesk/internal/model/visit"
)

var ErrInvalidRequest = errors.New("invalid visit request")

const (
	// Rough miles per degree; good enough to flag far-off clock-ins.
	milesPerDegree  = 69
	maxMilesAway    = 0.5
	maxMinutesDrift = 15
)

// Service evaluates clock-in and clock-out events against the directory.
type Service struct {
	directory visit.Directory
	recent    *cache.Cache
	log       *zap.Logger
}

// NewService returns a Service. A zero window disables duplicate detection.
func NewService(directory visit.Directory, window time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	svc := &Service{
		directory: directory,
		log:       log.Named("visit"),
	}
	if window > 0 {
		svc.recent = cache.New(window, 2*window)
	}
	return svc
}

// ClockIn returns the agent script for a clock-in event. An event only claims
// the duplicate window once it has been evaluated without error.
func (s *Service) ClockIn(_ context.Context, req visit.ClockInRequest) (visit.ScenarioResponse, error) {
	if strings.TrimSpace(req.CaregiverName) == "" || strings.TrimSpace(req.PhoneNumber) == "" {
		return visit.ScenarioResponse{}, fmt.Errorf("%w: caregiver_name and phone_number are required", ErrInvalidRequest)
	}

	key := eventKey("clock-in", req.CaregiverName, req.PhoneNumber)
	if s.seenRecently(key) {
		return duplicateScenario(), nil
	}

	resp, err := s.evaluateClockIn(req)
	if err != nil {
		return visit.ScenarioResponse{}, err
	}
	if !s.claim(key) {
		return duplicateScenario(), nil
	}
	return resp, nil
}

func (s *Service) evaluateClockIn(req visit.ClockInRequest) (visit.ScenarioResponse, error) {
	if !req.ScheduleKnown() || req.ClientName == nil {
		return visit.ScenarioResponse{
			ScenarioType:    visit.NoSchedule,
			AgentScript:     noScheduleScript,
			ActionsRequired: []string{"Add caregiver to schedule", "Clock in caregiver", "Notify coordinator"},
			Priority:        visit.PriorityHigh,
		}, nil
	}

	owner, ok := s.directory.Phones[req.PhoneNumber]
	if !ok {
		return visit.ScenarioResponse{
			ScenarioType:    visit.PhoneNotFound,
			AgentScript:     fmt.Sprintf(phoneNotFoundScript, req.PhoneNumber),
			ActionsRequired: []string{"Verify phone number", "Update client profile", "Confirm with client"},
			Priority:        visit.PriorityMedium,
		}, nil
	}
	if client := strings.TrimSpace(*req.ClientName); client != "" && !strings.EqualFold(client, owner) {
		return visit.ScenarioResponse{
			ScenarioType:    visit.WrongPhoneNumber,
			AgentScript:     fmt.Sprintf(wrongPhoneScript, req.PhoneNumber, owner, client),
			ActionsRequired: []string{"Confirm client location", "Use client's registered phone", "Document exception"},
			Priority:        visit.PriorityMedium,
		}, nil
	}

	if s.outOfRange(req.CaregiverName, req.Location) {
		return visit.ScenarioResponse{
			ScenarioType:    visit.GPSOutOfRange,
			AgentScript:     clockInOutOfRangeScript,
			ActionsRequired: []string{"Request re-clock in", "Verify location", "Document exception if valid"},
			Priority:        visit.PriorityHigh,
		}, nil
	}

	drift, err := minutesApart(req.ScheduledTime, req.ActualTime)
	if err != nil {
		return visit.ScenarioResponse{}, err
	}
	if drift > maxMinutesDrift {
		return visit.ScenarioResponse{
			ScenarioType:    visit.OutOfWindow,
			AgentScript:     outOfWindowScript,
			ActionsRequired: []string{"Confirm reason", "Adjust schedule if needed", "Document time change"},
			Priority:        visit.PriorityMedium,
		}, nil
	}

	return visit.ScenarioResponse{
		ScenarioType:    visit.Accepted,
		AgentScript:     clockInAcceptedScript,
		ActionsRequired: []string{"Log successful clock-in"},
		Priority:        visit.PriorityLow,
	}, nil
}

// ClockOut returns the agent script for a clock-out event.
func (s *Service) ClockOut(_ context.Context, req visit.ClockOutRequest) (visit.ScenarioResponse, error) {
	if strings.TrimSpace(req.CaregiverName) == "" {
		return visit.ScenarioResponse{}, fmt.Errorf("%w: caregiver_name is required", ErrInvalidRequest)
	}

	key := eventKey("clock-out", req.CaregiverName, req.PhoneNumber)
	if s.seenRecently(key) {
		return duplicateScenario(), nil
	}

	resp := visit.ScenarioResponse{
		ScenarioType:    visit.Accepted,
		AgentScript:     clockOutAcceptedScript,
		ActionsRequired: []string{"Log successful clock-out"},
		Priority:        visit.PriorityLow,
	}
	if s.outOfRange(req.CaregiverName, req.Location) {
		resp = visit.ScenarioResponse{
			ScenarioType:    visit.GPSOutOfRange,
			AgentScript:     clockOutOutOfRangeScript,
			ActionsRequired: []string{"Request return to client location", "Re-clock out", "Document issue"},
			Priority:        visit.PriorityHigh,
		}
	}

	if !s.claim(key) {
		return duplicateScenario(), nil
	}
	return resp, nil
}

// Duplicate acknowledges an event the caller already knows is repeated.
func (s *Service) Duplicate() visit.DuplicateResponse {
	return visit.DuplicateResponse{Message: duplicateMessage, Action: "reject"}
}

func eventKey(kind, caregiver, phone string) string {
	return strings.Join([]string{kind, strings.ToLower(strings.TrimSpace(caregiver)), strings.TrimSpace(phone)}, "|")
}

func (s *Service) seenRecently(key string) bool {
	if s.recent == nil {
		return false
	}
	if _, found := s.recent.Get(key); found {
		s.log.Info("duplicate visit event rejected", zap.String("key", key))
		return true
	}
	return false
}

// claim records key for the window. It fails if a concurrent identical event
// got there first.
func (s *Service) claim(key string) bool {
	if s.recent == nil {
		return true
	}
	if err := s.recent.Add(key, struct{}{}, cache.DefaultExpiration); err != nil {
		s.log.Info("duplicate visit event rejected", zap.String("key", key))
		return false
	}
	return true
}

func (s *Service) outOfRange(caregiver string, loc visit.Location) bool {
	schedule, ok := s.directory.Schedules[caregiver]
	if !ok {
		return false
	}
	return distanceMiles(loc, schedule.Location) > maxMilesAway
}

func distanceMiles(a, b visit.Location) float64 {
	return (math.Abs(a.Lat-b.Lat) + math.Abs(a.Lng-b.Lng)) * milesPerDegree
}

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04"}

func parseTimestamp(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable timestamp %q", ErrInvalidRequest, raw)
}

func minutesApart(scheduled, actual string) (float64, error) {
	s, err := parseTimestamp(scheduled)
	if err != nil {
		return 0, err
	}
	a, err := parseTimestamp(actual)
	if err != nil {
		return 0, err
	}
	return math.Abs(a.Sub(s).Minutes()), nil
}

func duplicateScenario() visit.ScenarioResponse {
	return visit.ScenarioResponse{
		ScenarioType:    visit.DuplicateCall,
		AgentScript:     duplicateMessage,
		ActionsRequired: []string{"reject"},
		Priority:        visit.PriorityLow,
	}
}
