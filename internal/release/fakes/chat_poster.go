package fakes

import (
	"context"

	"github.com/slack-go/slack"
)

type ChatPoster struct {
	PostMessageContextCall struct {
		CallCount int
		Receives  struct {
			ChannelID string
			Options   []slack.MsgOption
		}
		Returns struct {
			Channel   string
			Timestamp string
			Err       error
		}
	}
}

func (mock *ChatPoster) PostMessageContext(_ context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	mock.PostMessageContextCall.CallCount++
	mock.PostMessageContextCall.Receives.ChannelID = channelID
	mock.PostMessageContextCall.Receives.Options = options
	return mock.PostMessageContextCall.Returns.Channel, mock.PostMessageContextCall.Returns.Timestamp, mock.PostMessageContextCall.Returns.Err
}
