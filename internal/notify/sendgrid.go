// event-app10/internal/notify/sendgrid.go

package notify

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/matsumurashin0125/event-app10/internal/ics"
	"github.com/matsumurashin0125/event-app10/models"
)

const inviteSubject = "【参加登録】カレンダーに追加できます"

type mailClient struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func newMailClient(apiKey, fromEmail, fromName string) *mailClient {
	return &mailClient{apiKey: apiKey, fromEmail: fromEmail, fromName: fromName}
}

// sendInvite builds the ICS blob, base64-encodes it and sends it as a
// text/calendar attachment named event.ics.
func (c *mailClient) sendInvite(ctx context.Context, cand models.Candidate, recipientName, recipientEmail string, loc *time.Location) error {
	if c.apiKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is not configured")
	}
	if c.fromEmail == "" {
		return fmt.Errorf("FROM_EMAIL is not configured")
	}

	body, err := ics.BuildInvite(cand, recipientName, loc)
	if err != nil {
		return fmt.Errorf("build invite: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(body))

	html := fmt.Sprintf(
		"<p>%s さん、参加登録ありがとうございます。</p>"+
			"<p>カレンダーに追加できる .ics ファイルを添付しています。</p>"+
			"<p>iPhone・Google・Outlook 全てに対応しています。</p>",
		recipientName,
	)

	from := mail.NewEmail(c.fromName, c.fromEmail)
	to := mail.NewEmail(recipientName, recipientEmail)
	plain := fmt.Sprintf("%s さん、参加登録ありがとうございます。カレンダーに追加できる .ics ファイルを添付しています。", recipientName)
	message := mail.NewSingleEmail(from, inviteSubject, to, plain, html)

	attachment := mail.NewAttachment()
	attachment.SetContent(encoded)
	attachment.SetType("text/calendar")
	attachment.SetFilename("event.ics")
	attachment.SetDisposition("attachment")
	message.AddAttachment(attachment)

	client := sendgrid.NewSendClient(c.apiKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
