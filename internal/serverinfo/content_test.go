package serverinfo

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesMessage(t *testing.T) {
	t.Run("FitsSingleDiscordMessage", func(t *testing.T) {
		msg := RulesMessage()

		require.NotEmpty(t, msg)
		assert.LessOrEqual(t, utf8.RuneCountInString(msg), 2000,
			"rules text must fit in one Discord message")
	})

	t.Run("StableAcrossCalls", func(t *testing.T) {
		assert.Equal(t, RulesMessage(), RulesMessage())
	})

	t.Run("ContainsAllRules", func(t *testing.T) {
		msg := RulesMessage()

		assert.True(t, strings.HasPrefix(msg, "📜 **MANGODIA RULES** 📜"))
		assert.Contains(t, msg, "Mangodia Staff Team")
		for i := 1; i <= 13; i++ {
			assert.Contains(t, msg, fmt.Sprintf("\n%d. ", i), "rule %d is missing", i)
		}
	})
}

func TestBuildFAQEmbed(t *testing.T) {
	const gifURL = "https://media.tenor.com/example/surfing.gif"

	t.Run("WithImage", func(t *testing.T) {
		embed := BuildFAQEmbed(gifURL)

		assert.Equal(t, faqTitle, embed.Title)
		assert.Equal(t, faqDescription, embed.Description)
		assert.Equal(t, discord.Color(faqColor), embed.Color)
		require.NotNil(t, embed.Image)
		assert.Equal(t, gifURL, embed.Image.URL)
		require.NotNil(t, embed.Thumbnail)
		assert.Equal(t, mangoIconURL, embed.Thumbnail.URL)
		require.NotNil(t, embed.Footer)
		assert.Equal(t, faqFooterText, embed.Footer.Text)
	})

	t.Run("WithoutImage", func(t *testing.T) {
		embed := BuildFAQEmbed("")

		assert.Nil(t, embed.Image)
		assert.Equal(t, faqTitle, embed.Title)
		assert.Len(t, embed.Fields, len(faqItems))
	})

	t.Run("FieldsMatchFAQItems", func(t *testing.T) {
		embed := BuildFAQEmbed(gifURL)

		require.Len(t, embed.Fields, len(faqItems))
		for i, item := range faqItems {
			assert.Equal(t, item.Question, embed.Fields[i].Name)
			assert.Equal(t, "> "+item.Answer, embed.Fields[i].Value)
			assert.False(t, embed.Fields[i].Inline)
		}
	})
}
