package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"somrates-bot/internal/application"

	"github.com/cenkalti/backoff/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// botAPI is the slice of *tgbotapi.BotAPI the bot uses, narrowed so handlers
// and the polling loop can be exercised against a scripted fake.
type botAPI interface {
	GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error)
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot is the chat transport: it long-polls Telegram for commands and renders
// ConverterService results as messages. Each update is handled in its own
// goroutine; a panic in one handler never takes the process down.
type Bot struct {
	api     botAPI
	self    string
	svc     *application.ConverterService
	dedup   application.UpdateDedup
	log     *zap.Logger
	timeout int

	offset    int // next update id to request; touched only by poll
	retryInit time.Duration
}

func New(token string, svc *application.ConverterService, dedup application.UpdateDedup, pollTimeoutSec int, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: authorize: %w", err)
	}
	return newBot(api, api.Self.UserName, svc, dedup, pollTimeoutSec, log), nil
}

func newBot(api botAPI, self string, svc *application.ConverterService, dedup application.UpdateDedup, pollTimeoutSec int, log *zap.Logger) *Bot {
	if log == nil {
		log = zap.NewNop()
	}
	if dedup == nil {
		dedup = application.NoopDedup{}
	}
	if pollTimeoutSec <= 0 {
		pollTimeoutSec = 30
	}
	return &Bot{
		api:       api,
		self:      self,
		svc:       svc,
		dedup:     dedup,
		log:       log,
		timeout:   pollTimeoutSec,
		retryInit: 1 * time.Second,
	}
}

// Run polls for updates until ctx is canceled. A failed getUpdates round makes
// poll return, and the loop re-enters here with exponential backoff; this is
// transport plumbing and distinct from feed calls, which are never retried.
func (b *Bot) Run(ctx context.Context) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = b.retryInit
	exp.MaxInterval = 30 * time.Second
	exp.MaxElapsedTime = 0

	op := func() error {
		err := b.poll(ctx)
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		b.log.Warn("polling_restart", zap.Error(err))
		return err
	}
	err := backoff.Retry(op, backoff.WithContext(exp, ctx))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// poll drives getUpdates long polling directly, managing the offset itself.
// It returns on the first transport failure; the already-confirmed offset is
// kept so a restarted poll does not replay delivered updates.
func (b *Bot) poll(ctx context.Context) error {
	b.log.Info("bot_polling", zap.String("username", b.self))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		updates, err := b.api.GetUpdates(tgbotapi.UpdateConfig{Offset: b.offset, Timeout: b.timeout})
		if err != nil {
			return fmt.Errorf("get updates: %w", err)
		}
		for _, upd := range updates {
			if upd.UpdateID >= b.offset {
				b.offset = upd.UpdateID + 1
			}
			go b.handle(ctx, upd)
		}
	}
}

func (b *Bot) handle(ctx context.Context, upd tgbotapi.Update) {
	defer func() {
		if rec := recover(); rec != nil {
			b.log.Error("panic recovered", zap.Any("error", rec), zap.Int("update_id", upd.UpdateID))
		}
	}()

	msg := upd.Message
	if msg == nil || !msg.IsCommand() {
		return
	}

	reserved, err := b.dedup.TryReserve(ctx, fmt.Sprintf("tg:update:%d", upd.UpdateID))
	if err != nil {
		// A broken dedup backend must not block commands.
		b.log.Warn("dedup_unavailable", zap.Error(err))
	} else if !reserved {
		b.log.Debug("duplicate_update_skipped", zap.Int("update_id", upd.UpdateID))
		return
	}

	switch msg.Command() {
	case "start":
		b.reply(msg, StartText(), "")
	case "help":
		b.reply(msg, HelpText(), tgbotapi.ModeMarkdown)
	case "rates":
		b.rates(ctx, msg)
	case "calc":
		b.calc(ctx, msg)
	}
}

func (b *Bot) calc(ctx context.Context, msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) != 2 {
		b.reply(msg, UsageText(), "")
		return
	}

	loading, ok := b.reply(msg, LoadingText(), "")
	conv, err := b.svc.Convert(ctx, args[0], args[1])
	if err != nil {
		b.log.Info("convert_failed",
			zap.String("coin", args[0]),
			zap.String("amount", args[1]),
			zap.Error(err),
		)
		b.present(msg, loading, ok, ErrorText(err), "")
		return
	}
	b.present(msg, loading, ok, ConversionText(conv), tgbotapi.ModeMarkdown)
}

func (b *Bot) rates(ctx context.Context, msg *tgbotapi.Message) {
	loading, ok := b.reply(msg, BoardLoadingText(), "")
	board := b.svc.Board(ctx)
	b.present(msg, loading, ok, BoardText(board), tgbotapi.ModeMarkdown)
}

func (b *Bot) reply(msg *tgbotapi.Message, text, parseMode string) (tgbotapi.Message, bool) {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ParseMode = parseMode
	sent, err := b.api.Send(out)
	if err != nil {
		b.log.Warn("send_failed", zap.Int64("chat_id", msg.Chat.ID), zap.Error(err))
		return tgbotapi.Message{}, false
	}
	return sent, true
}

// present edits the earlier placeholder message when one was sent, otherwise
// falls back to a fresh reply.
func (b *Bot) present(msg *tgbotapi.Message, loading tgbotapi.Message, edited bool, text, parseMode string) {
	if !edited {
		b.reply(msg, text, parseMode)
		return
	}
	edit := tgbotapi.NewEditMessageText(msg.Chat.ID, loading.MessageID, text)
	edit.ParseMode = parseMode
	if _, err := b.api.Send(edit); err != nil {
		b.log.Warn("edit_failed", zap.Int64("chat_id", msg.Chat.ID), zap.Error(err))
	}
}
