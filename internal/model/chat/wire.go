package chat

// ChatRequest is the JSON body posted to the backend /chat endpoint.
type ChatRequest struct {
	UserName         string `json:"user_name"`
	ContactNumber    string `json:"contact_number"`
	ReasonForContact string `json:"reason_for_contact"`
	Message          string `json:"message"`
}

// ChatResponse is the backend reply.
type ChatResponse struct {
	Response         string   `json:"response"`
	Suggestions      []string `json:"suggestions"`
	ScenarioDetected string   `json:"scenario_detected,omitempty"`
}

// InitialContactMessage is sent on registration to fetch the opening reply.
const InitialContactMessage = "Initial contact - user just registered"

// NewChatRequest builds a request carrying the profile fields.
func NewChatRequest(profile Profile, message string) ChatRequest {
	return ChatRequest{
		UserName:         profile.Name,
		ContactNumber:    profile.Contact,
		ReasonForContact: profile.Reason,
		Message:          message,
	}
}
