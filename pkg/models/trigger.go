package models

import "time"

// Trigger kinds. Every worker spawn funnels through exactly one of these.
const (
	TriggerIngest   = "ingest"
	TriggerSchedule = "schedule"
	TriggerManual   = "manual"
)

// Trigger is the spawner input: what caused a worker to run and with what
// prompt material.
type Trigger struct {
	Kind             string `json:"kind"`
	Butler           string `json:"butler"`
	Prompt           string `json:"prompt"`
	IdentityPreamble string `json:"identity_preamble,omitempty"`
	TaskID           string `json:"task_id,omitempty"`
	InboxID          string `json:"inbox_id,omitempty"`
}

// IngestEvent is a normalized external event handed to the switchboard by a
// connector.
type IngestEvent struct {
	ChannelType      string                 `json:"channel_type"`
	EndpointIdentity string                 `json:"endpoint_identity"`
	ExternalEventID  string                 `json:"external_event_id"`
	SenderValue      string                 `json:"sender_value"`
	Payload          map[string]interface{} `json:"payload,omitempty"`
	Text             string                 `json:"text,omitempty"`
	ReceivedAt       time.Time              `json:"received_at"`
}

// SessionOutcome is what the spawner records when a worker finishes.
type SessionOutcome struct {
	OutputSummary string
	Err           string
	Cost          float64
}
