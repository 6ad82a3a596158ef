// Package notify forwards generated summaries to an external notification
// channel. It defines the Dispatcher interface implemented by the Slack
// webhook adapter, and Channel, an optional capability that turns every
// delivery attempt into a tri-state domain.DeliveryStatus instead of an error.
package notify
