package tg

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/customs-bot/internal/model/messages"
)

func Test_ToMarkup_Inline(t *testing.T) {
	markup := toMarkup(&messages.Keyboard{
		Inline: true,
		Rows:   [][]messages.Button{{{Text: "USD", Data: "currency_USD"}, {Text: "EUR", Data: "currency_EUR"}}},
	})

	inline, ok := markup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, inline.InlineKeyboard, 1)
	require.Len(t, inline.InlineKeyboard[0], 2)
	assert.Equal(t, "EUR", inline.InlineKeyboard[0][1].Text)
	require.NotNil(t, inline.InlineKeyboard[0][1].CallbackData)
	assert.Equal(t, "currency_EUR", *inline.InlineKeyboard[0][1].CallbackData)
}

func Test_ToMarkup_Reply(t *testing.T) {
	markup := toMarkup(&messages.Keyboard{
		Rows: [][]messages.Button{{{Text: "Individual"}}, {{Text: "Legal entity"}}},
	})

	reply, ok := markup.(tgbotapi.ReplyKeyboardMarkup)
	require.True(t, ok)
	assert.True(t, reply.ResizeKeyboard)
	assert.True(t, reply.OneTimeKeyboard)
	require.Len(t, reply.Keyboard, 2)
	assert.Equal(t, "Legal entity", reply.Keyboard[1][0].Text)
}
