package messages

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/customs-bot/internal/entity/currency"
	"max.ks1230/customs-bot/internal/entity/user"
	"max.ks1230/customs-bot/internal/logger"
	"max.ks1230/customs-bot/internal/model/customerr"
	"max.ks1230/customs-bot/internal/model/tariff"
)

const (
	calculateButton   = "Calculate customs"
	aboutButton       = "About"
	individualButton  = "Individual"
	legalEntityButton = "Legal entity"
)

const (
	helloMessage = "Hello! I calculate customs duties for imported passenger cars 🚗\n\n" +
		"Press \"" + calculateButton + "\" and I will ask for:\n" +
		"- purchase price\n" +
		"- price currency\n" +
		"- manufacture date\n" +
		"- engine volume\n" +
		"- horsepower\n" +
		"- importer type (individual or legal entity)"
	aboutMessage = "I calculate customs payments for passenger cars.\n\n" +
		"Cars up to 3 years old and older than 5 years pay 48% of the invoice price.\n" +
		"Cars aged 3 to 5 years pay a fixed rate per cm³ of engine volume.\n" +
		"A recycling fee depending on engine volume, horsepower and age is added on top.\n\n" +
		"All rates are illustrative."
	dontUnderstandMessage = "I don't understand you :(\nUse the menu below or /start"
	cancelledMessage      = "Calculation cancelled. Press /start to begin again."
	doneMessage           = "Done! Start a new calculation whenever you like."

	askPriceMessage    = "Enter the purchase price (invoice), e.g. 15000"
	askCurrencyMessage = "Choose the price currency:"
	askDateMessage     = "Enter the manufacture date as YYYY-MM-DD or DD.MM.YYYY, e.g. 2022-05-15"
	askVolumeMessage   = "Enter the engine volume in liters, e.g. 2.0"
	askHPMessage       = "Enter the engine power in horsepower, e.g. 150"
	askImporterMessage = "Choose the importer type:"

	incorrectPriceMessage    = "Please enter a positive number, e.g. 15000"
	incorrectCurrencyMessage = "Please choose one of the offered currencies"
	incorrectDateMessage     = "The date is incorrect. Use YYYY-MM-DD or DD.MM.YYYY"
	incorrectVolumeMessage   = "Please enter the engine volume in liters, from 0 to 10, e.g. 1.6"
	incorrectHPMessage       = "Please enter a whole number of horsepower, from 1 to 2000"
	incorrectImporterMessage = "Please choose the importer type from the keyboard"
)

const (
	startCommand  = "/start"
	cancelCommand = "/cancel"
	ratesCommand  = "/rates"
	helpCommand   = "/help"
)

type sessionStorage interface {
	GetSession(ctx context.Context, userID int64) (user.Session, error)
	SaveSession(ctx context.Context, userID int64, session user.Session) error
	DropSession(ctx context.Context, userID int64) error
}

type calculator interface {
	Calculate(ctx context.Context, in tariff.Input) (tariff.Result, error)
	CheckManufactureDate(raw string) (tariff.Age, error)
	Rates() tariff.Rates
}

// Response is a reply to a single incoming message.
type Response struct {
	Text     string
	Keyboard *Keyboard
}

type commandHandler func(ctx context.Context, userID int64) (Response, error)

// stepHandler checks the answer and moves the session to the next step. A rejected
// answer leaves the session untouched.
type stepHandler func(ctx context.Context, session *user.Session, answer string) Response

type HandlerService struct {
	commands map[string]commandHandler
	steps    map[user.Step]stepHandler
	storage  sessionStorage
	engine   calculator
}

func newHandler(storage sessionStorage, engine calculator) *HandlerService {
	s := &HandlerService{
		storage: storage,
		engine:  engine,
	}
	s.commands = map[string]commandHandler{
		startCommand:    s.handleStart,
		helpCommand:     s.handleStart,
		cancelCommand:   s.handleCancel,
		ratesCommand:    s.handleRates,
		calculateButton: s.handleCalculate,
		aboutButton:     s.handleAbout,
	}
	s.steps = map[user.Step]stepHandler{
		user.StepPurchasePrice:   s.handlePrice,
		user.StepCurrency:        s.handleCurrency,
		user.StepManufactureDate: s.handleDate,
		user.StepEngineVolume:    s.handleVolume,
		user.StepHorsepower:      s.handleHorsepower,
	}
	return s
}

func (s *HandlerService) HandleMessage(ctx context.Context, msg Message) (Response, error) {
	answer := strings.TrimSpace(msg.Text)
	if msg.Data != "" {
		answer = msg.Data
	}

	if cmd, ok := s.commands[parseCommand(answer)]; ok {
		return cmd(ctx, msg.UserID)
	}

	session, err := s.storage.GetSession(ctx, msg.UserID)
	if err != nil {
		return Response{}, errors.Wrap(err, "handle message")
	}
	if !session.InProgress() {
		return Response{Text: dontUnderstandMessage, Keyboard: mainMenuKeyboard()}, nil
	}
	if session.Step == user.StepImporterType {
		return s.handleImporter(ctx, msg.UserID, session, answer)
	}

	step, ok := s.steps[session.Step]
	if !ok {
		return Response{}, errors.Errorf("unknown dialogue step %q", session.Step)
	}

	resp := step(ctx, &session, answer)
	if err = s.storage.SaveSession(ctx, msg.UserID, session); err != nil {
		return Response{}, errors.Wrap(err, "handle message")
	}
	return resp, nil
}

func (s *HandlerService) handleStart(ctx context.Context, userID int64) (Response, error) {
	if err := s.storage.DropSession(ctx, userID); err != nil {
		return Response{}, errors.Wrap(err, "handle start")
	}
	return Response{Text: helloMessage, Keyboard: mainMenuKeyboard()}, nil
}

func (s *HandlerService) handleAbout(_ context.Context, _ int64) (Response, error) {
	return Response{Text: aboutMessage, Keyboard: mainMenuKeyboard()}, nil
}

func (s *HandlerService) handleCancel(ctx context.Context, userID int64) (Response, error) {
	if err := s.storage.DropSession(ctx, userID); err != nil {
		return Response{}, errors.Wrap(err, "handle cancel")
	}
	return Response{Text: cancelledMessage, Keyboard: mainMenuKeyboard()}, nil
}

func (s *HandlerService) handleRates(_ context.Context, _ int64) (Response, error) {
	return Response{Text: formatRates(s.engine.Rates())}, nil
}

func (s *HandlerService) handleCalculate(ctx context.Context, userID int64) (Response, error) {
	err := s.storage.SaveSession(ctx, userID, user.Session{Step: user.StepPurchasePrice})
	if err != nil {
		return Response{}, errors.Wrap(err, "handle calculate")
	}
	return Response{Text: askPriceMessage}, nil
}

func (s *HandlerService) handlePrice(_ context.Context, session *user.Session, answer string) Response {
	price, err := decimal.NewFromString(normalizeNumber(answer))
	if err != nil || tariff.ValidatePrice(price) != nil {
		return Response{Text: incorrectPriceMessage}
	}
	session.PurchasePrice = price.String()
	session.Step = user.StepCurrency
	return Response{Text: askCurrencyMessage, Keyboard: currencyKeyboard()}
}

func (s *HandlerService) handleCurrency(_ context.Context, session *user.Session, answer string) Response {
	code := strings.ToUpper(strings.TrimPrefix(answer, currencyDataPrefix))
	if !currency.IsSupported(code) {
		return Response{Text: incorrectCurrencyMessage, Keyboard: currencyKeyboard()}
	}
	session.Currency = code
	session.Step = user.StepManufactureDate
	return Response{Text: fmt.Sprintf("Currency: %s\n\n%s", code, askDateMessage)}
}

func (s *HandlerService) handleDate(_ context.Context, session *user.Session, answer string) Response {
	if _, err := s.engine.CheckManufactureDate(answer); err != nil {
		return Response{Text: describeInputError(err, incorrectDateMessage)}
	}
	session.ManufactureDate = answer
	session.Step = user.StepEngineVolume
	return Response{Text: askVolumeMessage}
}

func (s *HandlerService) handleVolume(_ context.Context, session *user.Session, answer string) Response {
	volume, err := strconv.ParseFloat(normalizeNumber(answer), 64)
	if err != nil || tariff.ValidateEngineVolume(volume) != nil {
		return Response{Text: incorrectVolumeMessage}
	}
	session.EngineVolume = volume
	session.Step = user.StepHorsepower
	return Response{Text: askHPMessage}
}

func (s *HandlerService) handleHorsepower(_ context.Context, session *user.Session, answer string) Response {
	hp, err := strconv.Atoi(answer)
	if err != nil || tariff.ValidateHorsepower(hp) != nil {
		return Response{Text: incorrectHPMessage}
	}
	session.Horsepower = hp
	session.Step = user.StepImporterType
	return Response{Text: askImporterMessage, Keyboard: importerKeyboard()}
}

func (s *HandlerService) handleImporter(ctx context.Context, userID int64, session user.Session, answer string) (Response, error) {
	importer, ok := parseImporter(answer)
	if !ok {
		return Response{Text: incorrectImporterMessage, Keyboard: importerKeyboard()}, nil
	}

	price, err := decimal.NewFromString(session.PurchasePrice)
	if err != nil {
		return Response{}, errors.Wrap(err, "handle importer")
	}

	if err = s.storage.DropSession(ctx, userID); err != nil {
		return Response{}, errors.Wrap(err, "handle importer")
	}

	res, err := s.engine.Calculate(ctx, tariff.Input{
		PurchasePrice:   price,
		Currency:        session.Currency,
		ManufactureDate: session.ManufactureDate,
		EngineVolume:    session.EngineVolume,
		Horsepower:      session.Horsepower,
		ImporterType:    importer,
	})
	if isInputError(err) {
		logger.Info("calculation rejected", zap.Int64("userID", userID), zap.Error(err))
		return Response{Text: describeInputError(err, incorrectDateMessage) + "\n\n" + cancelledMessage, Keyboard: mainMenuKeyboard()}, nil
	}
	if err != nil {
		return Response{}, errors.Wrap(err, "handle importer")
	}

	return Response{Text: formatResult(res) + "\n\n" + doneMessage, Keyboard: mainMenuKeyboard()}, nil
}

func parseImporter(answer string) (tariff.ImporterType, bool) {
	switch {
	case strings.EqualFold(answer, individualButton):
		return tariff.Individual, true
	case strings.EqualFold(answer, legalEntityButton):
		return tariff.LegalEntity, true
	}
	return "", false
}

func isInputError(err error) bool {
	var validationErr *customerr.ValidationError
	var parseErr *customerr.ParseError
	return errors.As(err, &validationErr) || errors.As(err, &parseErr)
}

// describeInputError turns a validation failure into a user facing hint.
func describeInputError(err error, fallback string) string {
	var validationErr *customerr.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Sprintf("The %s is incorrect: %s", validationErr.Field, validationErr.Reason)
	}
	return fallback
}
