package services

import "github.com/cosmodumplings/cosmo-pos/models"

// Status flow over the dynamically configured status set. The forward chain
// is Pending -> Preparing -> Ready -> Completed, with "Ready" resolved to
// whatever status carries that label (or the literal as a fallback when the
// configuration lost it). An operator can always override with an explicit
// target; nothing here blocks a transition.

// ResolveReadyLabel returns the configured "Ready" label, or the literal
// "Ready" when no such status exists.
func ResolveReadyLabel(statuses []models.OrderStatus) string {
	for _, s := range statuses {
		if s.Label == "Ready" {
			return s.Label
		}
	}
	return "Ready"
}

// StartStatus picks the status a new order opens in: "Pending" when
// configured, else "Preparing".
func StartStatus(statuses []models.OrderStatus) string {
	for _, s := range statuses {
		if s.Label == "Pending" {
			return "Pending"
		}
	}
	return "Preparing"
}

// NextStatus suggests the default forward step from the current label.
func NextStatus(current string, statuses []models.OrderStatus) string {
	ready := ResolveReadyLabel(statuses)
	switch current {
	case "Pending":
		return "Preparing"
	case "Preparing":
		return ready
	case ready:
		return "Completed"
	}
	return "Completed"
}

// KitchenActive reports whether an order belongs on the kitchen display: its
// status is flagged kitchen-relevant, or it equals the resolved Ready label
// so staff can see hand-off candidates before completion. With no statuses
// configured the bootstrap labels apply.
func KitchenActive(order models.Order, statuses []models.OrderStatus) bool {
	if order.Status == ResolveReadyLabel(statuses) {
		return true
	}
	if len(statuses) == 0 {
		return order.Status == "Pending" || order.Status == "Preparing"
	}
	for _, s := range statuses {
		if s.IsKitchen && s.Label == order.Status {
			return true
		}
	}
	return false
}
