package bot

import (
	"fmt"
	"strings"

	"solana-wallet-bot/internal/core/domain"
	"solana-wallet-bot/pkg/format"
)

// Canned popup texts for the static fast path.
const (
	popupNoFundsTrading  = "🔴 You currently have no\nSOL in your wallet. To start trading, please deposit SOL to your address."
	popupNoFundsWithdraw = "🔴 You currently have no\nSOL in your wallet. To start withdrawing, please deposit SOL to your address."
)

var markdownV2Escaper = strings.NewReplacer(
	"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(", ")", "\\)",
	"~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#", "+", "\\+", "-", "\\-",
	"=", "\\=", "|", "\\|", "{", "\\{", "}", "\\}", ".", "\\.", "!", "\\!",
)

// escapeMarkdownV2 escapes text interpolated into MarkdownV2 templates.
func escapeMarkdownV2(text string) string {
	return markdownV2Escaper.Replace(text)
}

func staticPopupText(a domain.Action) string {
	if a.WithdrawLeaf() {
		return popupNoFundsWithdraw
	}
	return popupNoFundsTrading
}

// balanceLine renders the shared wallet-balance line of the submenu screens.
func balanceLine(snap domain.BalanceSnapshot) string {
	return fmt.Sprintf(
		"*Wallet Balance:* %s SOL \\(USD $%s\\)",
		escapeMarkdownV2(format.Balance(snap.SOL)),
		escapeMarkdownV2(format.Balance(snap.USD)),
	)
}

func welcomeText(w *domain.Wallet, snap domain.BalanceSnapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, `👋 *Welcome to SOLANA AI\!*

*Let your trading evolve with intelligence\!*

🌸 *Your Solana Wallet Address:*

→ W1: `+"`%s`"+`

🌸 *Your Solana Wallet Private Key:*

→ W1: `+"`%s`"+`

*Balance:* %s SOL \(USD $%s\)`,
		w.Address,
		w.PrivateKey,
		escapeMarkdownV2(format.Balance(snap.SOL)),
		escapeMarkdownV2(format.Balance(snap.USD)),
	)

	if snap.Zero() {
		b.WriteString("\n\n🔴 *You currently have no SOL in your wallet\\.*\n*To begin trading, please deposit SOL to your address\\.*")
	}

	b.WriteString("\n\n📚 *Resources:*")
	return b.String()
}

func positionsText(snap domain.BalanceSnapshot) string {
	return fmt.Sprintf(`*📊 SOLANA AI Positions*

%s

No open positions yet\.
Start your trading journey by pasting a contract address in the chat\.`, balanceLine(snap))
}

func sniperText(snap domain.BalanceSnapshot) string {
	return fmt.Sprintf(`*🎯 SOLANA AI Sniper Mode*

%s

🚀 Stay ahead — the bot scans the Solana blockchain for new pairs in real\-time\.

🔴 You need SOL to act on detected launches\. Fund your wallet to start sniping\.`, balanceLine(snap))
}

func copyTradeText(snap domain.BalanceSnapshot) string {
	return fmt.Sprintf(`*🤖 SOLANA AI Copy Trade*

%s

Track whales and smart money in real time\.
Stay ahead by following top wallets\.`, balanceLine(snap))
}

func earlyLaunchText(snap domain.BalanceSnapshot) string {
	return fmt.Sprintf(`*🚀 SOLANA AI Early\-Launch Radar*

%s

Detect presales and launchpads early\.
Be first to catch promising projects\.`, balanceLine(snap))
}

func withdrawText(snap domain.BalanceSnapshot) string {
	return fmt.Sprintf(`*💸 Withdraw*

%s

Balance: %s SOL

Current withdrawal address:

🔧 Last address edit: \-`, balanceLine(snap), escapeMarkdownV2(format.Balance(snap.SOL)))
}

func antiRugText(snap domain.BalanceSnapshot) string {
	return fmt.Sprintf(`*🔋 SOLANA AI Rug Pull Protection*

%s

Scan tokens before trading\.
Trade safer with risk alerts\.`, balanceLine(snap))
}

func socialTrendText(snap domain.BalanceSnapshot) string {
	return fmt.Sprintf(`*💡 SOLANA AI Social Trend Scanner*

%s

Spot trending tokens from social buzz\.
Catch the hype before volume spikes\.`, balanceLine(snap))
}
