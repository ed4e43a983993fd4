package release

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/slack-go/slack"

	"github.com/shearwater-tools/cutter/pkg/freight"
)

// ChatPoster is the slice of the Slack API the announce activity needs.
// *slack.Client satisfies it.
type ChatPoster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Announce posts the release summary to the configured Slack channel.
type Announce struct {
	Collaborators struct {
		InitOnce sync.Once
		ChatPoster
	}
}

func (activity *Announce) Name() string { return freight.ActivityAnnounce }

func (activity *Announce) init(run *Run) {
	activity.Collaborators.InitOnce.Do(func() {
		if activity.Collaborators.ChatPoster != nil {
			return
		}
		activity.Collaborators.ChatPoster = slack.New(run.SlackToken)
	})
}

func (activity *Announce) Check(_ context.Context, run *Run) error {
	if run.Cutterfile.Announce.SlackChannel == "" {
		return errors.New("announce.slack_channel is not set")
	}
	if run.SlackToken == "" && activity.Collaborators.ChatPoster == nil {
		return errors.New("slack token is absent (set SLACK_TOKEN)")
	}
	return nil
}

func (activity *Announce) Do(ctx context.Context, run *Run) error {
	activity.init(run)

	message := fmt.Sprintf("%s %s has been released: %s/releases/tag/%s",
		run.Cutterfile.Project, run.TagName(), run.Cutterfile.RepositoryURL(), run.TagName())

	channel := run.Cutterfile.Announce.SlackChannel
	_, _, err := activity.Collaborators.PostMessageContext(ctx, channel, slack.MsgOptionText(message, false))
	if err != nil {
		return fmt.Errorf("failed to announce %s to %s: %w", run.TagName(), channel, err)
	}
	run.Logger.Printf("announced %s to %s", run.TagName(), channel)
	return nil
}
