package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/butlerhq/butlerd/ent"
	dbtest "github.com/butlerhq/butlerd/test/database"
)

func newResolver(t *testing.T) (*Resolver, *ent.Client) {
	db := dbtest.NewTestClient(t)
	return NewResolver(db.Client), db.Client
}

func TestBootstrapOwner(t *testing.T) {
	ctx := context.Background()
	resolver, client := newResolver(t)

	owner, err := resolver.BootstrapOwner(ctx, "Avery", []ChannelSpec{
		{Type: "telegram", Value: "1001", Primary: true},
		{Type: "email", Value: "avery@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{RoleOwner}, owner.Roles)

	t.Run("idempotent", func(t *testing.T) {
		again, err := resolver.BootstrapOwner(ctx, "Someone Else", nil)
		require.NoError(t, err)
		assert.Equal(t, owner.ID, again.ID)
		assert.Equal(t, "Avery", again.Name)
	})

	t.Run("owner lookup", func(t *testing.T) {
		got, err := resolver.Owner(ctx)
		require.NoError(t, err)
		assert.Equal(t, owner.ID, got.ID)
	})

	t.Run("single owner enforced at the schema level", func(t *testing.T) {
		_, err := client.Contact.Create().
			SetID(uuid.New().String()).
			SetName("Impostor").
			SetRoles([]string{RoleOwner}).
			Save(ctx)
		require.Error(t, err)
		assert.True(t, ent.IsConstraintError(err))
	})
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	resolver, _ := newResolver(t)

	owner, err := resolver.BootstrapOwner(ctx, "Avery", []ChannelSpec{
		{Type: "telegram", Value: "1001", Primary: true},
	})
	require.NoError(t, err)

	t.Run("owner channel", func(t *testing.T) {
		res, err := resolver.Resolve(ctx, "telegram", "1001")
		require.NoError(t, err)
		assert.Equal(t, KindOwner, res.Kind)
		assert.Equal(t, owner.ID, res.Contact.ID)
	})

	t.Run("unknown channel", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, "telegram", "2002")
		assert.ErrorIs(t, err, ErrUnknownChannel)
	})

	t.Run("by contact id", func(t *testing.T) {
		res, err := resolver.ResolveContactID(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, KindOwner, res.Kind)

		_, err = resolver.ResolveContactID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrUnknownChannel)
	})
}

func TestResolveKinds(t *testing.T) {
	ctx := context.Background()
	resolver, client := newResolver(t)

	known, err := client.Contact.Create().
		SetID(uuid.New().String()).
		SetName("Sam").
		SetRoles([]string{"family"}).
		Save(ctx)
	require.NoError(t, err)
	_, err = resolver.AddChannel(ctx, known.ID, ChannelSpec{Type: "email", Value: "sam@example.com"})
	require.NoError(t, err)

	res, err := resolver.Resolve(ctx, "email", "sam@example.com")
	require.NoError(t, err)
	assert.Equal(t, KindKnown, res.Kind)

	// A role-less contact resolves but stays untrusted.
	temp, err := resolver.CreateTempContact(ctx, "email", "stranger@example.com")
	require.NoError(t, err)
	res, err = resolver.Resolve(ctx, "email", "stranger@example.com")
	require.NoError(t, err)
	assert.Equal(t, KindUnknown, res.Kind)
	assert.Equal(t, temp.ID, res.Contact.ID)
}

func TestCreateTempContact(t *testing.T) {
	ctx := context.Background()
	resolver, client := newResolver(t)

	first, err := resolver.CreateTempContact(ctx, "telegram", "999")
	require.NoError(t, err)
	assert.Empty(t, first.Roles)
	assert.Equal(t, true, first.Metadata["temp"])

	// The unique channel index collapses a second create onto the winner.
	second, err := resolver.CreateTempContact(ctx, "telegram", "999")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	n, err := client.Contact.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestChannels(t *testing.T) {
	ctx := context.Background()
	resolver, _ := newResolver(t)

	owner, err := resolver.BootstrapOwner(ctx, "Avery", []ChannelSpec{
		{Type: "telegram", Value: "1001", Primary: true},
		{Type: "imap", Value: "imap://avery", Secured: true},
	})
	require.NoError(t, err)

	t.Run("secured excluded by default", func(t *testing.T) {
		channels, err := resolver.Channels(ctx, owner.ID, false)
		require.NoError(t, err)
		require.Len(t, channels, 1)
		assert.Equal(t, "telegram", channels[0].ChannelType)
	})

	t.Run("secured included for credential composer", func(t *testing.T) {
		channels, err := resolver.Channels(ctx, owner.ID, true)
		require.NoError(t, err)
		assert.Len(t, channels, 2)
	})
}

func TestAddChannelUnique(t *testing.T) {
	ctx := context.Background()
	resolver, client := newResolver(t)

	a, err := client.Contact.Create().
		SetID(uuid.New().String()).SetName("A").Save(ctx)
	require.NoError(t, err)
	b, err := client.Contact.Create().
		SetID(uuid.New().String()).SetName("B").Save(ctx)
	require.NoError(t, err)

	_, err = resolver.AddChannel(ctx, a.ID, ChannelSpec{Type: "email", Value: "shared@example.com"})
	require.NoError(t, err)

	// A channel identity belongs to exactly one contact.
	_, err = resolver.AddChannel(ctx, b.ID, ChannelSpec{Type: "email", Value: "shared@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already attached")
}
