package ai

import (
	"fmt"
	"strings"

	"github.com/independencecare/chatdesk/internal/model/chat"
	"github.com/independencecare/chatdesk/internal/model/scenario"
)

// IsInitialContact reports whether a message is the registration opener.
func IsInitialContact(message string) bool {
	return strings.Contains(strings.ToLower(message), "initial contact")
}

// BuildSystemPrompt describes Rosella, the caregiver and the script to follow.
func BuildSystemPrompt(req chat.ChatRequest, script scenario.Script) string {
	var builder strings.Builder

	builder.WriteString("You are Rosella from Independence Care, a home care agency. A caregiver needs help.\n\n")
	builder.WriteString(fmt.Sprintf("Caregiver: %s\n", orDefault(req.UserName, "the caregiver")))
	builder.WriteString(fmt.Sprintf("Contact: %s\n", orDefault(req.ContactNumber, "N/A")))
	builder.WriteString(fmt.Sprintf("Reason for contact: %s\n", orDefault(req.ReasonForContact, "General inquiry")))
	builder.WriteString(fmt.Sprintf("Issue type: %s\n\n", script.Name))

	if IsInitialContact(req.Message) {
		builder.WriteString("This is the first message of the conversation. Start with:\n")
		builder.WriteString(fmt.Sprintf("%q\n\n", script.Greeting))
		builder.WriteString("Then follow the company script:\n")
		builder.WriteString(fmt.Sprintf("%q\n\n", script.MainResponse))
	} else {
		builder.WriteString("Continue the conversation. When it fits what the caregiver said, follow the company script:\n")
		builder.WriteString(fmt.Sprintf("%q\n\n", script.FollowUp))
	}

	builder.WriteString("Be professional and empathetic. Keep the answer short. If the request is outside these scripts, offer to connect the caregiver with a coordinator.")
	return builder.String()
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
