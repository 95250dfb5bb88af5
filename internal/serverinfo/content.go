// Package serverinfo provides the server rules and FAQ posting flow.
package serverinfo

// Static Mangodia content. The rules text must stay within Discord's 2000
// character message limit so it goes out as a single message.
const rulesMessage = "📜 **MANGODIA RULES** 📜\n" +
	"*Please read and adhere to the following rules. Failure to do so will result in disciplinary action.*\n" +
	"\n" +
	"1. 🤝 **Keep the Discussion Cordial**: Discrimination of any kind is not tolerated. Keep it just witty banter, but nothing more.\n" +
	"2. 🚫 **No Extremist Symbolism or Ideology**: Discord does not tolerate overt extremism, even as an edgy joke. Nazi or fascist adjacent symbolism will be removed and you will be muted.\n" +
	"3. ⛔ **No Paedophilia**: Permaban.\n" +
	"4. 📵 **No Raiding or Spamming**: Grounds for a permaban at the discretion of a staff member. It's just Discord, it's not that serious.\n" +
	"5. 🔒 **No Ban or Mute Evasion**: Staff review ban and mute appeals regularly. There is no reason to evade; evasion is grounds for a permaban.\n" +
	"6. 🏷️ **Do Not Tag Staff Unless It Is an Emergency**: You aren't funny, you are just a bellend.\n" +
	"7. 🔞 **No NSFW/NSFL Content**: All content must be Safe For Work. No explicit material should be shared on this server.\n" +
	"8. 👤 **No Impersonation**: Do not impersonate other users, staff, or public figures.\n" +
	"9. 📢 **No Self-Promotion or Advertising**: Don't advertise your content, servers, or other platforms without permission from mods.\n" +
	"10. 🇬🇧 **English Only**: There are ESL channels for non-English speakers. Keep discussion in general channels readable.\n" +
	"11. 📝 **Use the Appropriate Channel**: Keep content in the relevant channel to avoid cluttering channels.\n" +
	"12. 🔐 **Do Not Dox or Share Personal Details**: You will be lucky if you only get banned. We take the well-being of Mangodia members seriously.\n" +
	"13. 📋 **Follow Discord TOS**: Everyone must comply with the Discord TOS regardless. If you do not comply, you will be banned.\n" +
	"\n" +
	"*Thank you for your cooperation. • Mangodia Staff Team*"

const (
	faqTitle       = "❓ **FREQUENTLY ASKED QUESTIONS**"
	faqDescription = "*We expect to still be countlessly asked these questions despite this FAQ existing.*"
	faqFooterText  = "Still have questions? Open a ticket! • Mangodia FAQ"

	// Professional blue.
	faqColor = 0x45B7D1

	mangoIconURL = "https://cdn.discordapp.com/emojis/853658439068229642.png"

	setupConfirmation = "✅ Setup complete! The rules and FAQ have been posted."

	rulesReaction = "📜"
	faqReaction   = "❓"
)

// faqItem is a single question and answer pair on the FAQ embed.
type faqItem struct {
	Question string
	Answer   string
}

var faqItems = []faqItem{
	{
		Question: "🖼️ **How do I get pic perms?**",
		Answer: "Members who want image perms need to **invite five members** to the server. " +
			"Invitations are tracked, and image perms are automatically given when a member invites " +
			"five members to the server. This helps with growth and prevents unfunny shitpost pollution.",
	},
	{
		Question: "🛡️ **How do I become a mod?**",
		Answer: "We **do not accept mod applications**. Members will be given mod if Mango or anyone " +
			"else with role perms likes them. If you aren't annoying and are semi-active, there's a " +
			"very decent chance you will get mod.",
	},
	{
		Question: "📞 **How do I appeal?**",
		Answer: "There is a **ticket system** where people can send tickets with what punishment they " +
			"received and a short explanation as to why it was not justified. Mods that repeatedly " +
			"issue unfair infractions will be reprimanded and could be removed from the mod team.",
	},
}

// RulesMessage returns the rules text posted by the setup flow. The content
// is identical for every invocation.
func RulesMessage() string {
	return rulesMessage
}
