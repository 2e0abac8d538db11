package keyword

import "math/rand/v2"

// Intner picks an index in [0, n). *rand.Rand satisfies it.
type Intner interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultIntner draws from the process-wide source.
var DefaultIntner Intner = globalRand{}

// Replies is the local reply table used when the backend cannot answer.
var Replies = Table{
	{
		Category: "greeting",
		Reply:    "Hello {name}! How can I assist you today?",
		Match:    Any("hello", "hi", "hey"),
	},
	{
		Category: "thanks",
		Reply:    "You're very welcome! Is there anything else I can help you with?",
		Match:    Any("thank", "thanks"),
	},
	{
		Category: "help",
		Reply:    "I'm here to help! Based on your initial inquiry, I can provide guidance on various topics. What specific area would you like assistance with?",
		Match:    Any("help", "assist", "support"),
	},
	{
		Category: "pricing",
		Reply:    "I'd be happy to discuss pricing options with you. Our plans are designed to be flexible and cost-effective. Would you like me to explain our different pricing tiers?",
		Match:    Any("price", "cost", "expensive"),
	},
	{
		Category: "how-it-works",
		Reply:    "Great question! I can walk you through how our system works. The process is quite straightforward - would you like a step-by-step explanation or do you have a specific aspect you'd like to focus on?",
		Match:    All(Any("how"), Any("work", "use")),
	},
}

// GenericPrompts are drawn uniformly when no reply rule matches.
var GenericPrompts = []string{
	"That's an interesting point. Could you provide a bit more detail so I can give you the most helpful response?",
	"I understand your concern. Let me help you with that. Can you elaborate on what specifically you're looking for?",
	"Thank you for that information. Based on what you've shared, I can offer some guidance. What would be most helpful for you right now?",
	"{name}, I want to make sure I address your needs properly. Could you help me understand your priority here?",
	"I appreciate you sharing that with me. To provide the best assistance, could you tell me more about your specific situation?",
}

// FallbackReply answers a message locally for the named visitor.
func FallbackReply(name, message string, rng Intner) string {
	if rule, ok := Dispatch(Replies, message); ok {
		return Render(rule.Reply, name, "")
	}
	if rng == nil {
		rng = DefaultIntner
	}
	return Render(GenericPrompts[rng.IntN(len(GenericPrompts))], name, "")
}
