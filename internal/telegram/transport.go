// Package telegram adapts the Telegram Bot API to the bot's chat transport:
// outbound messages with inline buttons, callback acknowledgments, and
// inbound commands and taps fed into the dispatch loop.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/sevigo/job-warden/internal/core"
)

// Enqueuer accepts inbound chat events for the dispatch loop.
type Enqueuer interface {
	Enqueue(ctx context.Context, ev core.Event) error
}

// commands the bot serves. The capitalized help alias mirrors what operators
// actually type on phones with auto-capitalization.
var commands = []string{"/help", "/Help", "/jobs", "/failed", "/pause"}

// Transport implements core.Messenger over a long-polling Telegram bot.
type Transport struct {
	bot    *tele.Bot
	chatID tele.ChatID
	logger *slog.Logger
}

// New connects to the Telegram Bot API. Messages go to the single configured
// operator chat; inbound traffic from any other chat is ignored.
func New(token string, chatID int64, logger *slog.Logger) (*Transport, error) {
	bot, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &Transport{bot: bot, chatID: tele.ChatID(chatID), logger: logger}, nil
}

// Bind registers the command and callback handlers. Handlers only translate
// updates into events and enqueue them; all real work happens on the
// dispatch loop, one event at a time.
func (t *Transport) Bind(emitter Enqueuer) {
	for _, cmd := range commands {
		command := strings.ToLower(strings.TrimPrefix(cmd, "/"))
		t.bot.Handle(cmd, func(c tele.Context) error {
			ev := core.NewCommandEvent(command)
			if err := emitter.Enqueue(context.Background(), ev); err != nil {
				t.logger.Error("dropping command", "command", command, "error", err)
			}
			return nil
		})
	}

	t.bot.Handle(tele.OnCallback, func(c tele.Context) error {
		cb := c.Callback()
		if cb == nil {
			return nil
		}
		ev := core.NewCallbackEvent(cb.ID, strings.TrimSpace(cb.Data))
		if err := emitter.Enqueue(context.Background(), ev); err != nil {
			t.logger.Error("dropping callback", "callback_id", cb.ID, "error", err)
			// Still clear the spinner so the tap does not hang.
			return c.Respond(&tele.CallbackResponse{Text: "⏳ Busy, try again"})
		}
		return nil
	})
}

// Start begins long polling. It blocks until Stop is called.
func (t *Transport) Start() {
	t.logger.Info("starting telegram long polling")
	t.bot.Start()
}

// Stop ends long polling.
func (t *Transport) Stop() {
	t.logger.Info("stopping telegram long polling")
	t.bot.Stop()
}

// Send delivers one message to the operator chat.
func (t *Transport) Send(_ context.Context, msg core.Message) error {
	opts := &tele.SendOptions{}
	if msg.Markdown {
		opts.ParseMode = tele.ModeMarkdown
	}
	if len(msg.Buttons) > 0 {
		markup, err := buildMarkup(msg.Buttons)
		if err != nil {
			return err
		}
		opts.ReplyMarkup = markup
	}

	if _, err := t.bot.Send(t.chatID, msg.Text, opts); err != nil {
		t.logger.Error("failed to send message", "error", err)
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// Respond acknowledges a pending callback query.
func (t *Transport) Respond(_ context.Context, callbackID, text string) error {
	err := t.bot.Respond(&tele.Callback{ID: callbackID}, &tele.CallbackResponse{Text: text})
	if err != nil {
		return fmt.Errorf("answer callback %s: %w", callbackID, err)
	}
	return nil
}

// buildMarkup renders buttons as a single inline keyboard row, encoding each
// action into its callback data.
func buildMarkup(buttons []core.Button) (*tele.ReplyMarkup, error) {
	row := make([]tele.InlineButton, 0, len(buttons))
	for _, b := range buttons {
		data, err := b.Action.Encode()
		if err != nil {
			return nil, fmt.Errorf("button %q: %w", b.Label, err)
		}
		row = append(row, tele.InlineButton{Text: b.Label, Data: data})
	}
	return &tele.ReplyMarkup{InlineKeyboard: [][]tele.InlineButton{row}}, nil
}
