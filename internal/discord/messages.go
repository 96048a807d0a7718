package discord

// Friendly message constants for Discord responses
const (
	MsgInvalidInput   = "⚠️ **Invalid Input**"
	MsgNotFound       = "❓ **Not Found**"
	MsgUpstreamDown   = "🌐 **Game servers unreachable**\nThe hiscores or price API did not answer. Try again in a minute."
	MsgServiceBusy    = "⏳ **Busy**\nToo many requests, try again shortly."
	MsgNoPriceResults = "❓ **No items match that name.**"
	MsgPong           = "Pong! 🏓"
	MsgAPIUp          = "✅ Calculator API is up."
	MsgAPIDown        = "⚠️ Calculator API is unreachable, commands will fail until it is back."

	MsgGenericError = "❌ Something went wrong."
)

// Embed colors
const (
	ColorHerbs  = 0x2ecc71
	ColorPrices = 0xf1c40f
)

// Footer text for embeds
const (
	FooterHerbRun = "HerbRun"
)
