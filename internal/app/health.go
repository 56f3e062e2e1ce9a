package app

// HealthStatus aggregates the portal's readiness picture: initialization,
// authentication, per-domain data presence and every current store error.
type HealthStatus struct {
	Initialized   bool            `json:"initialized"`
	Authenticated bool            `json:"authenticated"`
	Data          map[string]bool `json:"data"`
	Errors        []string        `json:"errors"`
	Healthy       bool            `json:"healthy"`
}

// Health builds the current health snapshot. The portal reports healthy only
// when it is initialized and no store carries an error.
func (s *State) Health() HealthStatus {
	status := HealthStatus{
		Initialized:   s.initialized.Load(),
		Authenticated: s.Auth.Authenticated(),
		Data: map[string]bool{
			"customers":    s.Customers.Ready(),
			"transactions": s.Transactions.Ready(),
			"queue":        s.Queue.Ready(),
			"products":     s.Products.Ready(),
			"cards":        s.Cards.Ready(),
			"loans":        s.Loans.Ready(),
		},
		Errors: s.Errors(),
	}
	status.Healthy = status.Initialized && len(status.Errors) == 0
	return status
}
