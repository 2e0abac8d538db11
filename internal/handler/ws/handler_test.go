package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/independencecare/chatdesk/internal/analysis/keyword"
	"github.com/independencecare/chatdesk/internal/model/chat"
	"github.com/independencecare/chatdesk/internal/model/scenario"
	chatservice "github.com/independencecare/chatdesk/internal/service/chat"
)

type frame struct {
	Type   string          `json:"type"`
	ConnID string          `json:"connId"`
	Data   json.RawMessage `json:"data"`
}

func dial(t *testing.T) *websocket.Conn {
	t.Helper()
	handler := New(chatservice.NewService(scenario.NewMemoryStore(scenario.Seed()), nil, nil), nil)
	r := chi.NewRouter()
	handler.RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestChatRoundTrip(t *testing.T) {
	conn := dial(t)

	require.NoError(t, conn.WriteJSON(map[string]any{
		"type": "chat",
		"data": chat.ChatRequest{
			UserName:         "Mary",
			ContactNumber:    "+1234567890",
			ReasonForContact: "My shift is missing from the calendar",
			Message:          "It still does not show up",
		},
	}))

	var got frame
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "reply", got.Type)
	assert.NotEmpty(t, got.ConnID)

	var resp chat.ChatResponse
	require.NoError(t, json.Unmarshal(got.Data, &resp))
	assert.Equal(t, keyword.ScheduleIssue, resp.ScenarioDetected)
	assert.NotEmpty(t, resp.Response)
}

func TestBadFrames(t *testing.T) {
	conn := dial(t)

	frames := []string{
		`not json`,
		`{"type":"audio","data":{}}`,
		`{"type":"chat","data":{"user_name":"Mary","message":"  "}}`,
	}
	for _, raw := range frames {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(raw)))

		var got frame
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, "error", got.Type, raw)
	}
}
