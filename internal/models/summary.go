package models

// HomeSummary is the response payload of the home endpoint. IsNewUser is
// true only when the user has neither transactions nor budget rows.
type HomeSummary struct {
	IsNewUser          bool          `json:"isNewUser"`
	RecentTransactions []Transaction `json:"recentTransactions"`
	Budget             []Budget      `json:"budget"`
}
