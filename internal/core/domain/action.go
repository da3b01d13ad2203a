package domain

// Action is a menu selection identifier. Raw callback strings from the
// messaging front end are mapped to an Action once, at the router edge;
// everything past that point dispatches on the typed value.
type Action string

// Navigation actions. Each renders a screen backed by a fresh balance lookup.
const (
	ActionMainMenu    Action = "back_main"
	ActionPositions   Action = "positions"
	ActionSniperMode  Action = "sniper_mode"
	ActionCopyTrade   Action = "copy_trade"
	ActionEarlyLaunch Action = "early_launch"
	ActionWithdraw    Action = "withdraw"
	ActionAntiRug     Action = "anti_rug"
	ActionSocialTrend Action = "social_trend"
)

// Static leaf actions. These answer instantly with a canned popup and must
// not touch the wallet store or the balance resolver.
const (
	ActionPosMinValue        Action = "pos_min_value"
	ActionPosSellPosition    Action = "pos_sell_position"
	ActionPosUSD             Action = "pos_usd"
	ActionSniperPro          Action = "sniper_pro"
	ActionSniperCreate       Action = "sniper_create"
	ActionCopyAddConfig      Action = "copy_add_config"
	ActionCopyMassCreate     Action = "copy_mass_create"
	ActionCopyPauseAll       Action = "copy_pause_all"
	ActionCopyStartAll       Action = "copy_start_all"
	ActionCopyDeleteAll      Action = "copy_delete_all"
	ActionEarlyPresale       Action = "early_presale"
	ActionEarlyLaunchpad     Action = "early_launchpad"
	ActionWithdraw50         Action = "withdraw_50"
	ActionWithdraw100        Action = "withdraw_100"
	ActionWithdrawCustom     Action = "withdraw_custom"
	ActionWithdrawSetAddress Action = "withdraw_set_address"
	ActionRugScanToken       Action = "rug_scan_token"
	ActionRugRiskScore       Action = "rug_risk_score"
	ActionSocialTrending     Action = "social_trending"
	ActionSocialInfluencers  Action = "social_influencers"
)

var navigationActions = map[Action]struct{}{
	ActionMainMenu:    {},
	ActionPositions:   {},
	ActionSniperMode:  {},
	ActionCopyTrade:   {},
	ActionEarlyLaunch: {},
	ActionWithdraw:    {},
	ActionAntiRug:     {},
	ActionSocialTrend: {},
}

var staticActions = map[Action]struct{}{
	ActionPosMinValue:        {},
	ActionPosSellPosition:    {},
	ActionPosUSD:             {},
	ActionSniperPro:          {},
	ActionSniperCreate:       {},
	ActionCopyAddConfig:      {},
	ActionCopyMassCreate:     {},
	ActionCopyPauseAll:       {},
	ActionCopyStartAll:       {},
	ActionCopyDeleteAll:      {},
	ActionEarlyPresale:       {},
	ActionEarlyLaunchpad:     {},
	ActionWithdraw50:         {},
	ActionWithdraw100:        {},
	ActionWithdrawCustom:     {},
	ActionWithdrawSetAddress: {},
	ActionRugScanToken:       {},
	ActionRugRiskScore:       {},
	ActionSocialTrending:     {},
	ActionSocialInfluencers:  {},
}

// ParseAction maps a raw callback identifier to a known Action.
// The identifier space is an open enumeration: unknown values return ok=false
// and are handled (logged, acknowledged) at the router boundary.
func ParseAction(data string) (Action, bool) {
	a := Action(data)
	if _, ok := navigationActions[a]; ok {
		return a, true
	}
	if _, ok := staticActions[a]; ok {
		return a, true
	}
	return "", false
}

// Static reports whether the action is a canned fast-path leaf.
func (a Action) Static() bool {
	_, ok := staticActions[a]
	return ok
}

// WithdrawLeaf reports whether a static action belongs to the withdraw
// submenu, which uses the withdrawing variant of the popup text.
func (a Action) WithdrawLeaf() bool {
	switch a {
	case ActionWithdraw50, ActionWithdraw100, ActionWithdrawCustom, ActionWithdrawSetAddress:
		return true
	}
	return false
}

// NavigationActions returns all screen-rendering actions; used by the router
// to verify its dispatch table is complete.
func NavigationActions() []Action {
	out := make([]Action, 0, len(navigationActions))
	for a := range navigationActions {
		out = append(out, a)
	}
	return out
}

// StaticActions returns all canned fast-path actions.
func StaticActions() []Action {
	out := make([]Action, 0, len(staticActions))
	for a := range staticActions {
		out = append(out, a)
	}
	return out
}
