package domain

import "fmt"

// SyncResult accumulates the outcome of one sync run across all suppliers.
// Errors are always logged by the caller; Infos only under verbose logging.
type SyncResult struct {
	Suppliers      int
	Created        int
	Updated        int
	FailedToCreate int
	Deactivated    int

	Errors []string
	Infos  []string
}

func NewSyncResult() *SyncResult {
	return &SyncResult{}
}

// Ok reports whether the run completed without accumulating any errors.
func (r *SyncResult) Ok() bool {
	return len(r.Errors) == 0
}

func (r *SyncResult) NoSuppliers() {
	r.Infos = append(r.Infos, "no authorized suppliers to sync")
}

func (r *SyncResult) NoSubscriptions(s *Supplier) {
	r.Infos = append(r.Infos, fmt.Sprintf("no subscriptions for supplier %s", s.URL))
}

func (r *SyncResult) ConnectionError(s *Supplier) {
	r.Errors = append(r.Errors, fmt.Sprintf("failed to connect to supplier %s", s.URL))
}

func (r *SyncResult) Error(s *Supplier, msg string) {
	r.Errors = append(r.Errors, fmt.Sprintf("supplier %s: %s", s.URL, msg))
}

func (r *SyncResult) CreatedSubscription(s *Supplier, sub *Subscription) {
	r.Created++
	r.Infos = append(r.Infos, fmt.Sprintf("created subscription %s/%s from supplier %s",
		sub.SubscriptionType, sub.SubscriptionID, s.URL))
}

func (r *SyncResult) UpdatedSubscription(s *Supplier, sub *Subscription) {
	r.Updated++
	r.Infos = append(r.Infos, fmt.Sprintf("updated subscription %s/%s from supplier %s",
		sub.SubscriptionType, sub.SubscriptionID, s.URL))
}

func (r *SyncResult) FailedToCreateSubscription(s *Supplier, subscriptionType, subscriptionID string) {
	r.FailedToCreate++
	r.Errors = append(r.Errors, fmt.Sprintf("failed to create subscription %s/%s from supplier %s",
		subscriptionType, subscriptionID, s.URL))
}

func (r *SyncResult) DeactivatedSubscription(sub *Subscription) {
	r.Deactivated++
}
