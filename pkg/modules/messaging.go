package modules

import (
	"context"
	"fmt"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/pkg/mcp"
	"github.com/butlerhq/butlerd/pkg/models"
)

// Transport delivers and fetches messages for the messaging module. The
// concrete implementation is a connector (Telegram bot API, SMTP/IMAP); tests
// use an in-memory fake.
type Transport interface {
	Send(ctx context.Context, channelType, recipient, body string) (string, error)
	Fetch(ctx context.Context, channelType string, limit int) ([]map[string]interface{}, error)
}

// MessagingModule exposes the send/fetch tool surface over a Transport.
type MessagingModule struct {
	transport Transport
}

// NewMessagingModule creates the messaging module.
func NewMessagingModule(transport Transport) *MessagingModule {
	return &MessagingModule{transport: transport}
}

func (m *MessagingModule) Name() string            { return "messaging" }
func (m *MessagingModule) Dependencies() []string  { return nil }
func (m *MessagingModule) Migrations() []string    { return nil }
func (m *MessagingModule) CredentialsEnv() []string {
	return []string{"TELEGRAM_BOT_TOKEN", "SMTP_PASSWORD", "IMAP_PASSWORD"}
}

func (m *MessagingModule) Descriptors() Descriptors {
	return Descriptors{
		UserOutputs: []models.ToolDescriptor{
			{
				Name:            "user_telegram_send",
				Description:     "Send a Telegram message from the operator's own account",
				ApprovalDefault: models.ApprovalConditional,
			},
			{
				Name:        "user_telegram_reply",
				Description: "Reply in an existing Telegram conversation as the operator",
				// The load-time heuristic forces this to always regardless.
				ApprovalDefault: models.ApprovalConditional,
			},
		},
		BotOutputs: []models.ToolDescriptor{
			{
				Name:            "bot_telegram_send",
				Description:     "Send a Telegram message from the butler's bot account",
				ApprovalDefault: models.ApprovalConditional,
			},
			{
				Name:            "bot_email_send",
				Description:     "Send an email from the butler's address",
				ApprovalDefault: models.ApprovalConditional,
			},
		},
		BotInputs: []models.ToolDescriptor{
			{
				Name:            "bot_email_fetch",
				Description:     "Fetch recent messages from the butler's inbox",
				ApprovalDefault: models.ApprovalNone,
			},
		},
	}
}

func (m *MessagingModule) RegisterTools(reg *mcp.Registry, _ map[string]interface{}, _ *ent.Client) error {
	for _, desc := range m.Descriptors().All() {
		var handler mcp.HandlerFunc
		switch desc.Name {
		case "user_telegram_send", "user_telegram_reply", "bot_telegram_send":
			handler = m.sendHandler("telegram")
		case "bot_email_send":
			handler = m.sendHandler("email")
		case "bot_email_fetch":
			handler = m.fetchHandler("email")
		}
		if err := reg.Register(m.Name(), desc, handler); err != nil {
			return err
		}
	}
	return nil
}

func (m *MessagingModule) OnStartup(context.Context) error  { return nil }
func (m *MessagingModule) OnShutdown(context.Context) error { return nil }

func (m *MessagingModule) sendHandler(channelType string) mcp.HandlerFunc {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		if m.transport == nil {
			return nil, fmt.Errorf("%s transport not configured", channelType)
		}
		recipient := stringArg(args, "to")
		if recipient == "" {
			recipient = stringArg(args, "recipient")
		}
		if recipient == "" {
			recipient = stringArg(args, "chat_id")
		}
		if recipient == "" {
			return nil, fmt.Errorf("recipient is required")
		}
		body := stringArg(args, "body")
		if body == "" {
			return nil, fmt.Errorf("body is required")
		}

		messageID, err := m.transport.Send(ctx, channelType, recipient, body)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"message_id": messageID, "recipient": recipient}, nil
	}
}

func (m *MessagingModule) fetchHandler(channelType string) mcp.HandlerFunc {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		if m.transport == nil {
			return nil, fmt.Errorf("%s transport not configured", channelType)
		}
		limit := 10
		if v, ok := args["limit"].(float64); ok && v > 0 {
			limit = int(v)
		}
		messages, err := m.transport.Fetch(ctx, channelType, limit)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"messages": messages, "count": len(messages)}, nil
	}
}

func stringArg(args map[string]interface{}, key string) string {
	switch v := args[key].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}
