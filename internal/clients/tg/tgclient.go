package tg

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/customs-bot/internal/logger"
	"max.ks1230/customs-bot/internal/model/messages"
)

const (
	defaultUpdateOffset = 0
	updatesTimeout      = 60
	timeoutSeconds      = 5
)

type tokenGetter interface {
	Token() string
}

type Client struct {
	client *tgbotapi.BotAPI
}

func New(tokenGetter tokenGetter) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(tokenGetter.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	logger.Info("Bot authorized", zap.String("username", client.Self.UserName))
	return &Client{client}, nil
}

func (c *Client) SendMessage(text string, userID int64, keyboard *messages.Keyboard) error {
	msg := tgbotapi.NewMessage(userID, text)
	if keyboard != nil {
		msg.ReplyMarkup = toMarkup(keyboard)
	}
	_, err := c.client.Send(msg)
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

func toMarkup(keyboard *messages.Keyboard) interface{} {
	if keyboard.Inline {
		rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(keyboard.Rows))
		for _, row := range keyboard.Rows {
			buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
			for _, b := range row {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
			}
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(buttons...))
		}
		return tgbotapi.NewInlineKeyboardMarkup(rows...)
	}

	rows := make([][]tgbotapi.KeyboardButton, 0, len(keyboard.Rows))
	for _, row := range keyboard.Rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(b.Text))
		}
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(buttons...))
	}
	markup := tgbotapi.NewReplyKeyboard(rows...)
	markup.ResizeKeyboard = true
	markup.OneTimeKeyboard = true
	return markup
}

func (c *Client) ListenUpdates(ctx context.Context, msgModel *messages.Service) {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = updatesTimeout

	updates := c.client.GetUpdatesChan(u)

	logger.Info("Start listening for messages")

	for {
		select {
		case <-ctx.Done():
			c.client.StopReceivingUpdates()
			logger.Info("Stop listening for messages")
			return
		case update := <-updates:
			c.listenOnce(ctx, update, msgModel)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, update tgbotapi.Update, msgModel *messages.Service) {
	var msg messages.Message
	switch {
	case update.Message != nil:
		logger.Info(update.Message.Text, zap.String("user", update.Message.From.UserName))
		msg = messages.Message{
			Text:   update.Message.Text,
			UserID: update.Message.Chat.ID,
		}
	case update.CallbackQuery != nil:
		query := update.CallbackQuery
		logger.Info("callback", zap.String("data", query.Data), zap.String("user", query.From.UserName))
		if _, err := c.client.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
			logger.Error("cannot answer callback", zap.Error(err))
		}
		if query.Message == nil {
			return
		}
		msg = messages.Message{
			Data:   query.Data,
			UserID: query.Message.Chat.ID,
		}
	default:
		return
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*timeoutSeconds)
	defer cancel()

	err := msgModel.HandleIncomingMessage(ctx, msg)
	if err != nil {
		logger.Error("error processing message:", zap.Error(err))
	}
}
