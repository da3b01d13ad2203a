package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction_Navigation(t *testing.T) {
	a, ok := ParseAction("positions")
	assert.True(t, ok)
	assert.Equal(t, ActionPositions, a)
	assert.False(t, a.Static())
}

func TestParseAction_Static(t *testing.T) {
	a, ok := ParseAction("sniper_pro")
	assert.True(t, ok)
	assert.Equal(t, ActionSniperPro, a)
	assert.True(t, a.Static())
}

func TestParseAction_Unknown(t *testing.T) {
	_, ok := ParseAction("launch_nukes")
	assert.False(t, ok)

	_, ok = ParseAction("")
	assert.False(t, ok)
}

func TestAction_WithdrawLeaf(t *testing.T) {
	for _, a := range []Action{ActionWithdraw50, ActionWithdraw100, ActionWithdrawCustom, ActionWithdrawSetAddress} {
		assert.True(t, a.WithdrawLeaf(), "%s", a)
	}
	assert.False(t, ActionSniperPro.WithdrawLeaf())
	assert.False(t, ActionWithdraw.WithdrawLeaf(), "the withdraw screen itself is not a leaf")
}

func TestActionSets_Disjoint(t *testing.T) {
	for _, a := range StaticActions() {
		_, nav := navigationActions[a]
		assert.False(t, nav, "%s is both static and navigation", a)
	}
}

func TestBalanceSnapshot_Zero(t *testing.T) {
	assert.True(t, BalanceSnapshot{}.Zero())
	assert.False(t, BalanceSnapshot{SOL: 0.5, USD: 40}.Zero())
}
