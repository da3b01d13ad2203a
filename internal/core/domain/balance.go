package domain

// BalanceSnapshot is a point-in-time balance for an address. It is computed
// fresh on every request and never cached or persisted. USD is always
// SOL × the rate observed at fetch time; a degraded fetch yields zeros.
type BalanceSnapshot struct {
	SOL float64 `json:"sol"`
	USD float64 `json:"usd"`
}

// Zero reports whether the snapshot shows no funds (or no data).
func (b BalanceSnapshot) Zero() bool {
	return b.SOL == 0
}
