// Package constants holds string constants shared across layers.
package constants

const (
	// PubSubProviderLocal publishes events as Pub/Sub-style HTTP pushes.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// EventTypeContactCreated is emitted after a redemption creates a contact.
	EventTypeContactCreated = "contact.created"
)
