package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathfinders-assessment/internal/app"
	"pathfinders-assessment/internal/assessment"
	"pathfinders-assessment/internal/infra/memory"
)

// socialPath picks the social option of every default question (38 points).
var socialPath = []struct{ question, option string }{
	{"creativity", "C"},
	{"work_environment", "C"},
	{"motivation", "A"},
	{"communication", "C"},
	{"interests", "C"},
	{"decision_making", "C"},
	{"ideal_outcome", "D"},
	{"work_style", "B"},
}

func newTestService() *app.AssessmentService {
	return app.NewAssessmentService(app.Stores{
		Banks:       memory.NewBankRepository(memory.NewStaticBankLoader(assessment.DefaultBank()), time.Minute),
		Attempts:    memory.NewAttemptStore(),
		Answers:     memory.NewAnswerLog(),
		Profiles:    memory.NewProfileStore(),
		Leaderboard: memory.NewLeaderboardStore(),
	})
}

func TestWebSocketAnswerFlow(t *testing.T) {
	server := httptest.NewServer(NewRouter(newTestService()))
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?bankId=" + assessment.DefaultBankID + "&userId=u1&name=Alice"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Expect joined event first.
	_, payload := readNext(conn, t, "joined")
	bank, ok := payload["bank"].(map[string]any)
	require.True(t, ok, "joined payload without bank: %v", payload)
	assert.Len(t, bank["questions"], 8)

	for _, step := range socialPath {
		answer := map[string]any{
			"type":    "answer",
			"payload": map[string]any{"questionId": step.question, "optionId": step.option},
		}
		require.NoError(t, conn.WriteJSON(answer))
	}

	results := 0
	var profile map[string]any
	leaderboardWithUser := false
	for i := 0; i < 20 && (profile == nil || !leaderboardWithUser || results < len(socialPath)); i++ {
		typ, payload := readNext(conn, t, "")
		switch typ {
		case "answerResult":
			results++
		case "profile":
			profile = payload
		case "leaderboard":
			if current, ok := payload["current"].(map[string]any); ok && current["participantId"] == "u1" {
				leaderboardWithUser = true
			}
		case "error":
			require.Failf(t, "unexpected error message", "%v", payload)
		}
	}
	assert.Equal(t, len(socialPath), results)
	require.NotNil(t, profile)
	assert.Equal(t, "social", profile["dominantCategory"])
	assert.Equal(t, float64(38), profile["totalPoints"])
	assert.Equal(t, []any{"quiz_master"}, profile["badges"])
	assert.True(t, leaderboardWithUser, "expected leaderboard update marking the current user")
}

func TestWebSocketRejectsDuplicateAnswer(t *testing.T) {
	server := httptest.NewServer(NewRouter(newTestService()))
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?bankId=" + assessment.DefaultBankID + "&userId=u2&name=Bob"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	defer conn.Close()
	readNext(conn, t, "joined")

	answer := map[string]any{"type": "answer", "payload": map[string]any{"questionId": "creativity", "optionId": "A"}}
	_ = conn.WriteJSON(answer)
	_ = conn.WriteJSON(answer)

	sawResult, sawError := false, false
	for i := 0; i < 5 && !(sawResult && sawError); i++ {
		typ, _ := readNext(conn, t, "")
		switch typ {
		case "answerResult":
			sawResult = true
		case "error":
			sawError = true
		}
	}
	assert.True(t, sawResult, "expected an answer result")
	assert.True(t, sawError, "expected an error for the repeated answer")
}

func TestWebSocketRequiresParams(t *testing.T) {
	server := httptest.NewServer(NewRouter(newTestService()))
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?bankId=x&name=Alice"
	_, resp, err := websocket.DefaultDialer.Dial(u, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWebSocketUsesDefaultBank(t *testing.T) {
	server := httptest.NewServer(NewRouter(newTestService()))
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?userId=u3&name=Casey"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	defer conn.Close()

	_, payload := readNext(conn, t, "joined")
	attempt, ok := payload["attempt"].(map[string]any)
	require.True(t, ok, "joined payload without attempt: %v", payload)
	assert.Equal(t, assessment.DefaultBankID, attempt["bankId"])
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	require.NoError(t, conn.ReadJSON(&msg))
	if expect != "" {
		require.Equal(t, expect, msg.Type)
	}
	return msg.Type, msg.Payload
}
