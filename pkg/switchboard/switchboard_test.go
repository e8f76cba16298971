package switchboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/pkg/config"
	"github.com/butlerhq/butlerd/pkg/identity"
	"github.com/butlerhq/butlerd/pkg/models"
	dbtest "github.com/butlerhq/butlerd/test/database"
)

type fakeSpawner struct {
	mu       sync.Mutex
	triggers []models.Trigger
	err      error
}

func (f *fakeSpawner) Spawn(_ context.Context, trigger models.Trigger) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.triggers = append(f.triggers, trigger)
	return uuid.New().String(), nil
}

func (f *fakeSpawner) all() []models.Trigger {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Trigger(nil), f.triggers...)
}

func newSwitchboard(t *testing.T, routing *config.RoutingConfig) (*Switchboard, *fakeSpawner, *identity.Resolver, *ent.Client) {
	db := dbtest.NewTestClient(t)
	resolver := identity.NewResolver(db.Client)
	spawner := &fakeSpawner{}
	if routing == nil {
		routing = &config.RoutingConfig{}
	}
	sb := New(db.Client, resolver, routing, "jeeves", nil, spawner)
	return sb, spawner, resolver, db.Client
}

func telegramEvent(eventID, sender, text string) models.IngestEvent {
	return models.IngestEvent{
		ChannelType:      "telegram",
		EndpointIdentity: "bot-1",
		ExternalEventID:  eventID,
		SenderValue:      sender,
		Text:             text,
		Payload:          map[string]interface{}{"text": text},
		ReceivedAt:       time.Now().UTC(),
	}
}

func TestIngestSpawnsWorker(t *testing.T) {
	ctx := context.Background()
	sb, spawner, resolver, client := newSwitchboard(t, nil)

	_, err := resolver.BootstrapOwner(ctx, "Avery", []identity.ChannelSpec{
		{Type: "telegram", Value: "1001", Primary: true},
	})
	require.NoError(t, err)

	res, err := sb.Ingest(ctx, telegramEvent("m-1", "1001", "what's on my calendar?"))
	require.NoError(t, err)
	assert.False(t, res.Duplicate)
	require.NotEmpty(t, res.InboxID)
	require.NotEmpty(t, res.SessionID)

	triggers := spawner.all()
	require.Len(t, triggers, 1)
	assert.Equal(t, models.TriggerIngest, triggers[0].Kind)
	assert.Equal(t, "jeeves", triggers[0].Butler)
	assert.Equal(t, "what's on my calendar?", triggers[0].Prompt)
	assert.Equal(t, "[Source: Owner, via telegram]", triggers[0].IdentityPreamble)
	assert.Equal(t, res.InboxID, triggers[0].InboxID)

	// The inbox record links back to the spawned session.
	record, err := client.InboxRecord.Get(ctx, res.InboxID)
	require.NoError(t, err)
	require.NotNil(t, record.PipelineRequestID)
	assert.Equal(t, res.SessionID, *record.PipelineRequestID)
}

func TestIngestDeduplicatesRedelivery(t *testing.T) {
	ctx := context.Background()
	sb, spawner, _, _ := newSwitchboard(t, nil)

	ev := telegramEvent("m-1", "555", "hello")
	first, err := sb.Ingest(ctx, ev)
	require.NoError(t, err)
	assert.False(t, first.Duplicate)

	// Same (endpoint, event) again: dropped silently, no second spawn.
	second, err := sb.Ingest(ctx, ev)
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.Empty(t, second.SessionID)
	assert.Len(t, spawner.all(), 1)
}

func TestIngestScopesDedupToEndpoint(t *testing.T) {
	ctx := context.Background()
	sb, spawner, _, _ := newSwitchboard(t, nil)

	ev := telegramEvent("m-1", "555", "hello")
	_, err := sb.Ingest(ctx, ev)
	require.NoError(t, err)

	// The same provider-side ID on a different endpoint is a distinct event.
	ev.EndpointIdentity = "bot-2"
	res, err := sb.Ingest(ctx, ev)
	require.NoError(t, err)
	assert.False(t, res.Duplicate)
	assert.Len(t, spawner.all(), 2)
}

func TestIngestUnknownSenderGetsTempContact(t *testing.T) {
	ctx := context.Background()
	sb, spawner, _, client := newSwitchboard(t, nil)

	res, err := sb.Ingest(ctx, telegramEvent("m-1", "999", "hi there"))
	require.NoError(t, err)
	require.NotEmpty(t, res.SessionID)

	triggers := spawner.all()
	require.Len(t, triggers, 1)
	assert.Contains(t, triggers[0].IdentityPreamble, "Unknown sender")
	assert.Contains(t, triggers[0].IdentityPreamble, "pending disambiguation")

	// One role-less contact now owns the channel identity.
	contacts, err := client.Contact.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Empty(t, contacts[0].Roles)
	assert.Contains(t, triggers[0].IdentityPreamble, contacts[0].ID)

	// The next event from the same sender reuses the contact.
	_, err = sb.Ingest(ctx, telegramEvent("m-2", "999", "still me"))
	require.NoError(t, err)
	n, err := client.Contact.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestIngestKnownContactPreamble(t *testing.T) {
	ctx := context.Background()
	sb, spawner, _, client := newSwitchboard(t, nil)

	contact, err := client.Contact.Create().
		SetID(uuid.New().String()).
		SetName("Sam").
		SetRoles([]string{"family"}).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.ContactChannel.Create().
		SetID(uuid.New().String()).
		SetContactID(contact.ID).
		SetChannelType("telegram").
		SetChannelValue("777").
		Save(ctx)
	require.NoError(t, err)

	_, err = sb.Ingest(ctx, telegramEvent("m-1", "777", "dinner tonight?"))
	require.NoError(t, err)

	triggers := spawner.all()
	require.Len(t, triggers, 1)
	assert.Equal(t,
		"[Source: Sam (contact_id:"+contact.ID+"), via telegram]",
		triggers[0].IdentityPreamble)
}

func TestIngestRoutesByRole(t *testing.T) {
	ctx := context.Background()
	routing := &config.RoutingConfig{Rules: []config.RoutingRule{
		{Channel: "telegram", Role: "family", Butler: "house"},
		{Channel: "telegram", Butler: "front-desk"},
	}}
	sb, spawner, _, client := newSwitchboard(t, routing)

	contact, err := client.Contact.Create().
		SetID(uuid.New().String()).
		SetName("Sam").
		SetRoles([]string{"family"}).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.ContactChannel.Create().
		SetID(uuid.New().String()).
		SetContactID(contact.ID).
		SetChannelType("telegram").
		SetChannelValue("777").
		Save(ctx)
	require.NoError(t, err)

	// Exact (channel, role) rule wins.
	_, err = sb.Ingest(ctx, telegramEvent("m-1", "777", "hi"))
	require.NoError(t, err)

	// Channel-only rule catches everyone else.
	_, err = sb.Ingest(ctx, telegramEvent("m-2", "999", "hi"))
	require.NoError(t, err)

	triggers := spawner.all()
	require.Len(t, triggers, 2)
	assert.Equal(t, "house", triggers[0].Butler)
	assert.Equal(t, "front-desk", triggers[1].Butler)
}

func TestIngestSpawnFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	sb, spawner, _, _ := newSwitchboard(t, nil)
	spawner.err = errors.New("worker binary missing")

	_, err := sb.Ingest(ctx, telegramEvent("m-1", "555", "hi"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker binary missing")
}

func TestBuildPreamble(t *testing.T) {
	ev := models.IngestEvent{ChannelType: "email", SenderValue: "x@example.com"}

	t.Run("unresolved", func(t *testing.T) {
		assert.Equal(t,
			"[Source: Unresolved sender (x@example.com), via email -- pending disambiguation]",
			buildPreamble(nil, ev))
	})

	t.Run("owner", func(t *testing.T) {
		res := &identity.Resolution{
			Contact: &ent.Contact{ID: "c-1", Name: "Avery", Roles: []string{identity.RoleOwner}},
			Kind:    identity.KindOwner,
		}
		assert.Equal(t, "[Source: Owner, via email]", buildPreamble(res, ev))
	})

	t.Run("known", func(t *testing.T) {
		res := &identity.Resolution{
			Contact: &ent.Contact{ID: "c-2", Name: "Sam", Roles: []string{"family"}},
			Kind:    identity.KindKnown,
		}
		assert.Equal(t, "[Source: Sam (contact_id:c-2), via email]", buildPreamble(res, ev))
	})

	t.Run("unknown", func(t *testing.T) {
		res := &identity.Resolution{
			Contact: &ent.Contact{ID: "c-3", Name: "Unknown (email:x@example.com)"},
			Kind:    identity.KindUnknown,
		}
		assert.Equal(t,
			"[Source: Unknown sender (contact_id:c-3), via email -- pending disambiguation]",
			buildPreamble(res, ev))
	})
}
