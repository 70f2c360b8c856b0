package notification

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dev-9820/eventease-frontend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramSink mirrors channel notifications to a Telegram chat, so
// booking outcomes reach the user even with the app window closed.
type TelegramSink struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramSink(token string, chatID int64, logger logger.Logger) (*TelegramSink, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram sink disabled (no token or chat_id)")
		return &TelegramSink{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramSink{bot: bot, chatID: chatID, logger: logger}, nil
}

func (s *TelegramSink) Deliver(n domain.Notification) {
	if s.bot == nil {
		s.logger.Debug("telegram delivery skipped (sink disabled)",
			logger.String("id", n.ID),
		)
		return
	}

	msg := tgbotapi.NewMessage(s.chatID, fmt.Sprintf("%s %s", kindBadge(n.Kind), n.Message))
	if _, err := s.bot.Send(msg); err != nil {
		s.logger.Error("failed to send telegram notification",
			logger.String("id", n.ID),
			logger.String("error", err.Error()),
		)
	}
}

func kindBadge(kind domain.NotificationKind) string {
	switch kind {
	case domain.NotifySuccess:
		return "✅"
	case domain.NotifyError:
		return "❌"
	case domain.NotifyWarning:
		return "⚠️"
	default:
		return "ℹ️"
	}
}
