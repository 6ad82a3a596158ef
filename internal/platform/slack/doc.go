// Package slack implements notify.Dispatcher by posting to a Slack
// incoming webhook.
package slack
