package bot

import (
	"solana-wallet-bot/internal/core/domain"
	"solana-wallet-bot/internal/core/ports"
)

func btn(label string, a domain.Action) ports.Button {
	return ports.Button{Label: label, Data: string(a)}
}

func mainMenuKeyboard() ports.Keyboard {
	return ports.Keyboard{
		{btn("📊 Positions", domain.ActionPositions), btn("🎯 Sniper Mode", domain.ActionSniperMode)},
		{btn("🤖 Copy Trade", domain.ActionCopyTrade), btn("🚀 Early-Launch", domain.ActionEarlyLaunch)},
		{btn("💸 Withdraw", domain.ActionWithdraw), btn("🔋 Anti-Rug Pull", domain.ActionAntiRug)},
		{btn("💡 Social Trend Scanner", domain.ActionSocialTrend)},
	}
}

func positionsKeyboard() ports.Keyboard {
	return ports.Keyboard{
		{btn("📝 Min Value: N/A SOL", domain.ActionPosMinValue), btn("📝 Sell Position: 100%", domain.ActionPosSellPosition)},
		{btn("🔴 USD", domain.ActionPosUSD), btn("⬅️ Back", domain.ActionMainMenu)},
	}
}

func sniperKeyboard() ports.Keyboard {
	return ports.Keyboard{
		{btn("🎯 Pro Account", domain.ActionSniperPro), btn("🎯 Create Task", domain.ActionSniperCreate)},
		{btn("⬅️ Back", domain.ActionMainMenu)},
	}
}

func copyTradeKeyboard() ports.Keyboard {
	return ports.Keyboard{
		{btn("🆕 Add new config", domain.ActionCopyAddConfig), btn("🚛 Mass Create", domain.ActionCopyMassCreate)},
		{btn("⏹️ Pause All", domain.ActionCopyPauseAll), btn("▶️ Start All", domain.ActionCopyStartAll), btn("🗑️ Delete All", domain.ActionCopyDeleteAll)},
		{btn("⬅️ Back", domain.ActionMainMenu)},
	}
}

func earlyLaunchKeyboard() ports.Keyboard {
	return ports.Keyboard{
		{btn("🚀 Detect Presale", domain.ActionEarlyPresale), btn("🚀 Detect Launchpad", domain.ActionEarlyLaunchpad)},
		{btn("⬅️ Back", domain.ActionMainMenu)},
	}
}

func withdrawKeyboard() ports.Keyboard {
	return ports.Keyboard{
		{btn("50%", domain.ActionWithdraw50), btn("100%", domain.ActionWithdraw100), btn("X SOL", domain.ActionWithdrawCustom)},
		{btn("💸 Set Address", domain.ActionWithdrawSetAddress)},
		{btn("⬅️ Back", domain.ActionMainMenu)},
	}
}

func antiRugKeyboard() ports.Keyboard {
	return ports.Keyboard{
		{btn("🔋 Scan Token", domain.ActionRugScanToken), btn("🔋 Check Risk Score", domain.ActionRugRiskScore)},
		{btn("⬅️ Back", domain.ActionMainMenu)},
	}
}

func socialTrendKeyboard() ports.Keyboard {
	return ports.Keyboard{
		{btn("💡 Trending Now", domain.ActionSocialTrending), btn("💡 Top Influencers", domain.ActionSocialInfluencers)},
		{btn("⬅️ Back", domain.ActionMainMenu)},
	}
}
