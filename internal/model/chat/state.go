package chat

// State gates whether the widget accepts chat messages.
type State int

const (
	AwaitingProfile State = iota
	Chatting
)

func (s State) String() string {
	switch s {
	case AwaitingProfile:
		return "awaiting_profile"
	case Chatting:
		return "chatting"
	default:
		return "unknown"
	}
}
