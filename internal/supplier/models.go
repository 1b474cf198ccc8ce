package supplier

// Response is the payload a supplier returns from its user-subscriptions
// endpoint. The resource name plus subscription id and type form the tuple
// that identifies a subscription across sync runs.
type Response struct {
	Subscriptions []SubscriptionEntry `json:"subscriptions"`
}

type SubscriptionEntry struct {
	Resource         string `json:"resource"`
	SubscriptionID   string `json:"subscription_id"`
	SubscriptionType string `json:"subscription_type"`
}
