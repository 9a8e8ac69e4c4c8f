// event-app10/internal/notify/line.go

package notify

import (
	"context"
	"fmt"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
)

type lineClient struct {
	bot     *messaging_api.MessagingApiAPI
	groupID string
}

func newLineClient(channelToken, groupID string) *lineClient {
	c := &lineClient{groupID: groupID}
	if channelToken == "" {
		return c
	}
	bot, err := messaging_api.NewMessagingApiAPI(channelToken)
	if err != nil {
		// Leave bot nil; push reports the problem per call.
		return c
	}
	c.bot = bot
	return c
}

func (c *lineClient) push(ctx context.Context, text string) error {
	if c.bot == nil {
		return fmt.Errorf("LINE_CHANNEL_ACCESS_TOKEN is not configured")
	}
	if c.groupID == "" {
		return fmt.Errorf("LINE_GROUP_ID is not configured")
	}

	_, err := c.bot.PushMessage(&messaging_api.PushMessageRequest{
		To: c.groupID,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: text},
		},
	}, "")
	if err != nil {
		return fmt.Errorf("LINE push: %w", err)
	}
	return nil
}
