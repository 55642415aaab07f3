package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

const failureMessage = "Sorry, something wrong happened... Try again later"

type messageSender interface {
	SendMessage(text string, userID int64, keyboard *Keyboard) error
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, msg Message) (Response, error)
}

type Service struct {
	tgClient messageSender
	handler  MessageHandler
}

func NewService(tgClient messageSender, storage sessionStorage, engine calculator) *Service {
	return &Service{
		tgClient: tgClient,
		handler:  newHandler(storage, engine),
	}
}

// Message is a text message or a pressed inline button.
type Message struct {
	Text   string
	Data   string
	UserID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg)
	if err != nil {
		_ = s.tgClient.SendMessage(failureMessage, msg.UserID, mainMenuKeyboard())
		return err
	}
	return s.tgClient.SendMessage(resp.Text, msg.UserID, resp.Keyboard)
}
