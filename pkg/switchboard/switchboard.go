// Package switchboard is the ingress router: it deduplicates external
// events, resolves sender identity, picks the target butler, and hands the
// event to the worker spawner. At most one worker spawn happens per logical
// event, however many times a connector redelivers it.
package switchboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/pkg/config"
	"github.com/butlerhq/butlerd/pkg/events"
	"github.com/butlerhq/butlerd/pkg/identity"
	"github.com/butlerhq/butlerd/pkg/models"
)

// Spawner starts a worker session for a trigger and returns the new session
// ID. The session itself runs to completion in the background.
type Spawner interface {
	Spawn(ctx context.Context, trigger models.Trigger) (string, error)
}

// IngestResult reports what one Ingest call did.
type IngestResult struct {
	Duplicate bool
	InboxID   string
	SessionID string
}

// Switchboard routes normalized connector events to butler workers.
type Switchboard struct {
	client     *ent.Client
	resolver   *identity.Resolver
	routing    *config.RoutingConfig
	butlerName string
	notifier   *events.Notifier
	spawner    Spawner
}

// New creates a Switchboard. notifier may be nil.
func New(client *ent.Client, resolver *identity.Resolver, routing *config.RoutingConfig, butlerName string, notifier *events.Notifier, spawner Spawner) *Switchboard {
	return &Switchboard{
		client:     client,
		resolver:   resolver,
		routing:    routing,
		butlerName: butlerName,
		notifier:   notifier,
		spawner:    spawner,
	}
}

// Ingest processes one external event. Duplicate deliveries are dropped
// silently; a dropped duplicate is not an error to the connector.
func (s *Switchboard) Ingest(ctx context.Context, ev models.IngestEvent) (*IngestResult, error) {
	record, inserted, err := s.recordEvent(ctx, ev)
	if err != nil {
		// Write-path failure: fail closed so the connector redelivers.
		return nil, err
	}
	if !inserted {
		slog.Debug("Duplicate delivery dropped",
			"channel_type", ev.ChannelType, "external_event_id", ev.ExternalEventID)
		return &IngestResult{Duplicate: true}, nil
	}

	res := s.resolveSender(ctx, ev)
	preamble := buildPreamble(res, ev)
	role := roleOf(res)
	target := s.routing.TargetButler(ev.ChannelType, role, s.butlerName)

	sessionID, err := s.spawner.Spawn(ctx, models.Trigger{
		Kind:             models.TriggerIngest,
		Butler:           target,
		Prompt:           ev.Text,
		IdentityPreamble: preamble,
		InboxID:          record.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to spawn worker for inbox %s: %w", record.ID, err)
	}

	if err := s.client.InboxRecord.UpdateOneID(record.ID).
		SetPipelineRequestID(sessionID).
		Exec(ctx); err != nil {
		slog.Warn("Failed to link inbox record to session",
			"inbox_id", record.ID, "session_id", sessionID, "error", err)
	}

	return &IngestResult{InboxID: record.ID, SessionID: sessionID}, nil
}

// recordEvent inserts the idempotency record. The (source_channel,
// source_message_id) unique index is the dedup authority; a constraint hit
// means another delivery already won.
func (s *Switchboard) recordEvent(ctx context.Context, ev models.IngestEvent) (*ent.InboxRecord, bool, error) {
	ingestedAt := ev.ReceivedAt
	if ingestedAt.IsZero() {
		ingestedAt = time.Now().UTC()
	}

	record, err := s.client.InboxRecord.Create().
		SetID(uuid.New().String()).
		SetSourceChannel(ev.ChannelType).
		SetSourceMessageID(idempotencyKey(ev)).
		SetPayload(ev.Payload).
		SetIngestedAt(ingestedAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to record inbox event: %w", err)
	}
	return record, true, nil
}

// idempotencyKey scopes an external event ID to the endpoint it arrived on,
// so two accounts receiving the same provider-side ID stay distinct.
func idempotencyKey(ev models.IngestEvent) string {
	return ev.EndpointIdentity + ":" + ev.ExternalEventID
}

// resolveSender maps the sender to a contact. Unknown senders get a temp
// contact and a one-shot owner notification. Lookup failures fail open: the
// event still routes, with an unresolved preamble and a warning.
func (s *Switchboard) resolveSender(ctx context.Context, ev models.IngestEvent) *identity.Resolution {
	res, err := s.resolver.Resolve(ctx, ev.ChannelType, ev.SenderValue)
	if err == nil {
		return res
	}
	if err != identity.ErrUnknownChannel {
		slog.Warn("Identity lookup failed, routing with unresolved sender",
			"channel_type", ev.ChannelType, "error", err)
		return nil
	}

	contact, err := s.resolver.CreateTempContact(ctx, ev.ChannelType, ev.SenderValue)
	if err != nil {
		slog.Warn("Failed to create temp contact, routing with unresolved sender",
			"channel_type", ev.ChannelType, "error", err)
		return nil
	}

	if s.notifier != nil {
		if err := s.notifier.UnknownSender(ctx, ev.ChannelType, ev.SenderValue, contact.ID); err != nil {
			slog.Warn("Unknown-sender notification failed", "error", err)
		}
	}
	return &identity.Resolution{Contact: contact, Kind: identity.KindUnknown}
}

// buildPreamble renders the deterministic provenance prefix for the
// worker's prompt.
func buildPreamble(res *identity.Resolution, ev models.IngestEvent) string {
	if res == nil || res.Contact == nil {
		return fmt.Sprintf("[Source: Unresolved sender (%s), via %s -- pending disambiguation]",
			ev.SenderValue, ev.ChannelType)
	}
	switch res.Kind {
	case identity.KindOwner:
		return fmt.Sprintf("[Source: Owner, via %s]", ev.ChannelType)
	case identity.KindKnown:
		return fmt.Sprintf("[Source: %s (contact_id:%s), via %s]",
			res.Contact.Name, res.Contact.ID, ev.ChannelType)
	default:
		return fmt.Sprintf("[Source: Unknown sender (contact_id:%s), via %s -- pending disambiguation]",
			res.Contact.ID, ev.ChannelType)
	}
}

func roleOf(res *identity.Resolution) string {
	if res == nil || res.Contact == nil {
		return identity.KindUnknown
	}
	if res.Kind == identity.KindOwner {
		return identity.RoleOwner
	}
	if len(res.Contact.Roles) > 0 {
		return res.Contact.Roles[0]
	}
	return res.Kind
}
