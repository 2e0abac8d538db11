package widget

import "github.com/independencecare/chatdesk/internal/model/chat"

// Reply is a bot answer and the path that produced it.
type Reply struct {
	Text        string      `json:"text"`
	Suggestions []string    `json:"suggestions,omitempty"`
	Category    string      `json:"category,omitempty"`
	Source      chat.Source `json:"source"`
}

// Remote reports whether the backend answered.
func (r Reply) Remote() bool {
	return r.Source == chat.SourceRemote
}

func remoteReply(resp chat.ChatResponse) Reply {
	return Reply{
		Text:        resp.Response,
		Suggestions: resp.Suggestions,
		Category:    resp.ScenarioDetected,
		Source:      chat.SourceRemote,
	}
}

func fallbackReply(text string) Reply {
	return Reply{Text: text, Source: chat.SourceFallback}
}
