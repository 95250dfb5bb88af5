package serverinfo

import (
	"github.com/diamondburned/arikawa/v3/discord"
)

// BuildFAQEmbed builds the FAQ embed. When gifURL is non-empty it becomes the
// embed image; an empty gifURL produces the same embed without an image.
func BuildFAQEmbed(gifURL string) discord.Embed {
	fields := make([]discord.EmbedField, 0, len(faqItems))
	for _, item := range faqItems {
		fields = append(fields, discord.EmbedField{
			Name:   item.Question,
			Value:  "> " + item.Answer,
			Inline: false,
		})
	}

	embed := discord.Embed{
		Title:       faqTitle,
		Description: faqDescription,
		Color:       faqColor,
		Fields:      fields,
		Thumbnail: &discord.EmbedThumbnail{
			URL: mangoIconURL,
		},
		Footer: &discord.EmbedFooter{
			Text: faqFooterText,
			Icon: mangoIconURL,
		},
	}

	if gifURL != "" {
		embed.Image = &discord.EmbedImage{
			URL: gifURL,
		}
	}

	return embed
}
