// Package identity maps channel identities to contacts and maintains the
// singleton owner.
//
// Writes to the contacts/contact_channels tables are restricted to this
// package (and the owner bootstrap); every other component resolves through
// it.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/contactchannel"
)

// RoleOwner is the sentinel role carried by exactly one contact after
// bootstrap.
const RoleOwner = "owner"

// Resolution kinds.
const (
	KindOwner   = "owner"
	KindKnown   = "known"
	KindUnknown = "unknown"
)

// ErrUnknownChannel is returned when no contact owns a channel identity.
var ErrUnknownChannel = errors.New("unknown channel identity")

// Resolution is the outcome of resolving a channel identity or contact ID.
type Resolution struct {
	Contact *ent.Contact
	Kind    string
}

// Resolver resolves channel identities to contacts.
type Resolver struct {
	client *ent.Client
}

// NewResolver creates a Resolver.
func NewResolver(client *ent.Client) *Resolver {
	return &Resolver{client: client}
}

// IsOwner reports whether a contact carries the owner role.
func IsOwner(c *ent.Contact) bool {
	return c != nil && slices.Contains(c.Roles, RoleOwner)
}

// kindOf classifies a resolved contact.
func kindOf(c *ent.Contact) string {
	if IsOwner(c) {
		return KindOwner
	}
	if len(c.Roles) == 0 {
		return KindUnknown
	}
	return KindKnown
}

// Resolve maps (channel_type, channel_value) to a contact.
// Returns ErrUnknownChannel when no channel row exists.
func (r *Resolver) Resolve(ctx context.Context, channelType, channelValue string) (*Resolution, error) {
	ch, err := r.client.ContactChannel.Query().
		Where(
			contactchannel.ChannelTypeEQ(channelType),
			contactchannel.ChannelValueEQ(channelValue),
		).
		WithContact().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrUnknownChannel
		}
		return nil, fmt.Errorf("failed to resolve channel %s:%s: %w", channelType, channelValue, err)
	}

	c := ch.Edges.Contact
	if c == nil {
		return nil, fmt.Errorf("channel %s has no contact edge loaded", ch.ID)
	}
	return &Resolution{Contact: c, Kind: kindOf(c)}, nil
}

// ResolveContactID looks a contact up by its UUID.
func (r *Resolver) ResolveContactID(ctx context.Context, contactID string) (*Resolution, error) {
	c, err := r.client.Contact.Get(ctx, contactID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrUnknownChannel
		}
		return nil, fmt.Errorf("failed to load contact %s: %w", contactID, err)
	}
	return &Resolution{Contact: c, Kind: kindOf(c)}, nil
}

// Owner returns the singleton owner contact.
// Roles is a JSON array, so the filter runs in-process. The contact table is
// small (humans the butler knows about) and the single-owner partial index
// guarantees at most one hit.
func (r *Resolver) Owner(ctx context.Context) (*ent.Contact, error) {
	contacts, err := r.client.Contact.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	for _, c := range contacts {
		if IsOwner(c) {
			return c, nil
		}
	}
	return nil, errors.New("owner contact not bootstrapped")
}

// BootstrapOwner ensures the owner contact exists with the given channels.
// Idempotent: if an owner already exists it is returned unchanged.
func (r *Resolver) BootstrapOwner(ctx context.Context, name string, channels []ChannelSpec) (*ent.Contact, error) {
	if existing, err := r.Owner(ctx); err == nil {
		return existing, nil
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	owner, err := tx.Contact.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetRoles([]string{RoleOwner}).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a bootstrap race; the winner's owner is authoritative.
			return r.Owner(ctx)
		}
		return nil, fmt.Errorf("failed to create owner contact: %w", err)
	}

	for _, spec := range channels {
		_, err := tx.ContactChannel.Create().
			SetID(uuid.New().String()).
			SetContactID(owner.ID).
			SetChannelType(spec.Type).
			SetChannelValue(spec.Value).
			SetIsPrimary(spec.Primary).
			SetSecured(spec.Secured).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create owner channel %s:%s: %w", spec.Type, spec.Value, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit owner bootstrap: %w", err)
	}

	slog.Info("Owner bootstrapped", "contact_id", owner.ID, "name", name, "channels", len(channels))
	return owner, nil
}

// ChannelSpec describes one channel attached to a contact.
type ChannelSpec struct {
	Type    string
	Value   string
	Primary bool
	Secured bool
}

// CreateTempContact creates a role-less contact for an unknown sender,
// with its channel, in one transaction. Concurrency-safe: if another
// ingest won the unique-channel race, the winner's contact is returned.
func (r *Resolver) CreateTempContact(ctx context.Context, channelType, channelValue string) (*ent.Contact, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	name := fmt.Sprintf("Unknown (%s:%s)", channelType, channelValue)
	c, err := tx.Contact.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetMetadata(map[string]interface{}{
			"temp":       true,
			"first_seen": time.Now().UTC().Format(time.RFC3339),
		}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp contact: %w", err)
	}

	_, err = tx.ContactChannel.Create().
		SetID(uuid.New().String()).
		SetContactID(c.ID).
		SetChannelType(channelType).
		SetChannelValue(channelValue).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Another ingest created the channel concurrently; use theirs.
			_ = tx.Rollback()
			res, rerr := r.Resolve(ctx, channelType, channelValue)
			if rerr != nil {
				return nil, fmt.Errorf("temp contact race lost and re-resolve failed: %w", rerr)
			}
			return res.Contact, nil
		}
		return nil, fmt.Errorf("failed to create temp channel: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit temp contact: %w", err)
	}

	slog.Info("Temporary contact created",
		"contact_id", c.ID, "channel_type", channelType, "channel_value", channelValue)
	return c, nil
}

// Channels lists a contact's channels. Secured channels (credential
// material) are excluded unless includeSecured is set; only the worker
// spawner's credential composer passes true.
func (r *Resolver) Channels(ctx context.Context, contactID string, includeSecured bool) ([]*ent.ContactChannel, error) {
	q := r.client.ContactChannel.Query().
		Where(contactchannel.ContactIDEQ(contactID))
	if !includeSecured {
		q = q.Where(contactchannel.SecuredEQ(false))
	}
	channels, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels for %s: %w", contactID, err)
	}
	return channels, nil
}

// AddChannel attaches a channel to an existing contact.
func (r *Resolver) AddChannel(ctx context.Context, contactID string, spec ChannelSpec) (*ent.ContactChannel, error) {
	ch, err := r.client.ContactChannel.Create().
		SetID(uuid.New().String()).
		SetContactID(contactID).
		SetChannelType(spec.Type).
		SetChannelValue(spec.Value).
		SetIsPrimary(spec.Primary).
		SetSecured(spec.Secured).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("channel %s:%s already attached to a contact", spec.Type, spec.Value)
		}
		return nil, fmt.Errorf("failed to add channel: %w", err)
	}
	return ch, nil
}
