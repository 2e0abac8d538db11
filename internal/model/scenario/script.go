package scenario

import "github.com/independencecare/chatdesk/internal/analysis/keyword"

// Script captures the agent wording used for one caregiver scenario.
type Script struct {
	Name         string   `json:"name"`
	Greeting     string   `json:"greeting"`
	MainResponse string   `json:"mainResponse"`
	FollowUp     string   `json:"followUp"`
	Suggestions  []string `json:"suggestions"`
}

const greeting = "Hello, this is Rosella, I am calling from Independence Care, how are you doing today!"

// Seed provides the agency's scripts for every detectable scenario.
func Seed() []Script {
	return []Script{
		{
			Name:         keyword.ScheduleIssue,
			Greeting:     greeting,
			MainResponse: "I see you clocked in but there seems to be no schedule on your Calendar, can you confirm the client you are working with today?",
			FollowUp:     "No, please do not leave. Unfortunately, the app can malfunction at times and remove Caregivers from schedules. I will add you to the schedule and clock you in, if for any reason this causes an error your coordinator will reach out to you to clarify.",
			Suggestions:  []string{"Provide client name", "Check app again", "Contact coordinator"},
		},
		{
			Name:         keyword.LocationIssue,
			Greeting:     greeting,
			MainResponse: "I have noticed you have clocked in outside of the client's service area, which is not close to your client's house. Can you please clock in again once you are at your client's house, because we are not able to accept this clock in.",
			FollowUp:     "Remember it is state law that a Home Care agency cannot bill for visits that are rendered outside of the client's home.",
			Suggestions:  []string{"I'm at client's house", "I stopped for supplies", "GPS isn't working"},
		},
		{
			Name:         keyword.PhoneIssue,
			Greeting:     greeting,
			MainResponse: "I have noticed that you used the IVR number to clock in today, but you used your phone to call that number instead of the client's house phone. Can you please clock in again using the client's house phone?",
			FollowUp:     "If the client won't allow you to use their phone, I would recommend you use the HHA app to clock in. If your app doesn't work, I can have one of our care coordinators give you a call and get your HHA app set up.",
			Suggestions:  []string{"Use client's phone", "My app isn't working", "Help set up app"},
		},
		{
			Name:         keyword.TimingIssue,
			Greeting:     greeting,
			MainResponse: "I have noticed that you clocked in late for your shift today, I just wanted to confirm what was the reason for that?",
			FollowUp:     "Would you be willing to make up for the hours you missed today by staying late on your shift today? Or any other day throughout the week?",
			Suggestions:  []string{"I can stay late", "Make up hours tomorrow", "Had an emergency"},
		},
		{
			Name:         keyword.GeneralRequest,
			Greeting:     greeting,
			MainResponse: "Thank you for contacting us. I'm here to help you with any questions or concerns you may have.",
			FollowUp:     "Could you tell me more about what you're looking for so I can provide the best assistance?",
			Suggestions:  []string{"Tell me more", "What should I do?", "Who can help?"},
		},
	}
}
