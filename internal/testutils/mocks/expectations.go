// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"encoding/json"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/jp-mud/internal/clients/gameapi"
	gameapimock "github.com/KirkDiggler/jp-mud/internal/clients/gameapi/mock"
	"github.com/KirkDiggler/jp-mud/internal/entities"
)

// ExpectWorldGeneration expects one world generation call returning payload
func ExpectWorldGeneration(mockClient *gameapimock.MockClient, payload string) *gomock.Call {
	return mockClient.EXPECT().
		GenerateWorld(gomock.Any(), gomock.Any()).
		Return(&gameapi.GenerateWorldResponse{World: json.RawMessage(payload)}, nil)
}

// ExpectWorldGenerationError expects one world generation call that fails with err
func ExpectWorldGenerationError(mockClient *gameapimock.MockClient, err error) *gomock.Call {
	return mockClient.EXPECT().
		GenerateWorld(gomock.Any(), gomock.Any()).
		Return(nil, err)
}

// inputMatcher matches a ProcessInputRequest by its input text
type inputMatcher string

func (m inputMatcher) Matches(x any) bool {
	req, ok := x.(*gameapi.ProcessInputRequest)
	return ok && req.Input == string(m)
}

func (m inputMatcher) String() string {
	return "process input " + string(m)
}

// ProcessInputFor matches a ProcessInput request for the given input text
func ProcessInputFor(input string) gomock.Matcher {
	return inputMatcher(input)
}

// ExpectEcho expects one ProcessInput call for input that answers with reply
// and echoes the request state and transcript back with the reply appended
func ExpectEcho(mockClient *gameapimock.MockClient, input, reply string) *gomock.Call {
	return mockClient.EXPECT().
		ProcessInput(gomock.Any(), ProcessInputFor(input)).
		DoAndReturn(func(_ context.Context, req *gameapi.ProcessInputRequest) (*gameapi.ProcessInputResponse, error) {
			history := append(entities.CloneTranscript(req.ChatHistory), entities.AssistantMessage(reply))
			return &gameapi.ProcessInputResponse{
				Response:    reply,
				GameState:   req.GameState,
				ChatHistory: history,
			}, nil
		})
}

// ExpectValidation expects one Japanese validation call with the given verdict
func ExpectValidation(mockClient *gameapimock.MockClient, text string, valid bool, feedback string) *gomock.Call {
	return mockClient.EXPECT().
		ValidateJapanese(gomock.Any(), &gameapi.ValidateJapaneseRequest{Text: text}).
		Return(&gameapi.ValidateJapaneseResponse{IsValid: valid, Feedback: feedback}, nil)
}
