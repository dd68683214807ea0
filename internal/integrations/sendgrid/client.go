package sendgrid

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sendgrid/rest"
	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendEndpoint = "/v3/mail/send"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент SendGrid для отправки ваучеров
type Client struct {
	apiKey    string
	fromEmail string
	fromName  string
	host      string
	timeout   time.Duration
	log       Logger
}

// NewClient создает новый экземпляр клиента SendGrid
// host пустой - используется api.sendgrid.com
func NewClient(apiKey, fromEmail, fromName, host string, timeout time.Duration, log Logger) *Client {
	return &Client{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		host:      host,
		timeout:   timeout,
		log:       log,
	}
}

// Send отправляет письмо
func (c *Client) Send(ctx context.Context, msg *Message) error {
	if c.apiKey == "" || c.fromEmail == "" {
		return ErrNotConfigured
	}
	if strings.TrimSpace(msg.ToEmail) == "" {
		return ErrInvalidRecipient
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	request := sg.GetRequest(c.apiKey, sendEndpoint, c.host)
	request.Method = rest.Post
	request.Body = mail.GetRequestBody(c.build(msg))

	resp, err := sg.MakeRequestWithContext(ctx, request)
	if err != nil {
		c.log.Error("SendGrid: failed to send %q to %s: %v", msg.Subject, msg.ToEmail, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		c.log.Info("SendGrid: %q sent to %s", msg.Subject, msg.ToEmail)
		return nil
	default:
		detail := resp.Body
		var errResp ErrorResponse
		if json.Unmarshal([]byte(resp.Body), &errResp) == nil && len(errResp.Errors) > 0 {
			detail = errResp.Errors[0].Message
		}
		c.log.Error("SendGrid: %q to %s rejected with status %d: %s", msg.Subject, msg.ToEmail, resp.StatusCode, detail)
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, detail)
	}
}

func (c *Client) build(msg *Message) *mail.SGMailV3 {
	from := mail.NewEmail(c.fromName, c.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.ToEmail)
	m := mail.NewSingleEmail(from, msg.Subject, to, msg.PlainText, msg.HTML)

	for _, a := range msg.Attachments {
		att := mail.NewAttachment()
		att.SetContent(base64.StdEncoding.EncodeToString(a.Content))
		att.SetType(a.ContentType)
		att.SetFilename(a.Filename)
		att.SetDisposition("attachment")
		m.AddAttachment(att)
	}
	return m
}
