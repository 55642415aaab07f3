package messages

import "max.ks1230/customs-bot/internal/entity/currency"

const currencyDataPrefix = "currency_"

type Button struct {
	Text string
	// Data is sent back instead of Text when an inline button is pressed.
	Data string
}

// Keyboard is attached to an outgoing message. Inline keyboards belong to the
// message, reply keyboards replace the user's input keyboard.
type Keyboard struct {
	Inline bool
	Rows   [][]Button
}

func mainMenuKeyboard() *Keyboard {
	return &Keyboard{Rows: [][]Button{
		{{Text: calculateButton}},
		{{Text: aboutButton}},
	}}
}

func currencyKeyboard() *Keyboard {
	row := make([]Button, 0, len(currency.Currencies))
	for _, code := range currency.Currencies {
		row = append(row, Button{Text: code, Data: currencyDataPrefix + code})
	}
	return &Keyboard{Inline: true, Rows: [][]Button{row}}
}

func importerKeyboard() *Keyboard {
	return &Keyboard{Rows: [][]Button{
		{{Text: individualButton}},
		{{Text: legalEntityButton}},
	}}
}
