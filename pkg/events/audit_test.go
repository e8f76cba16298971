package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbtest "github.com/butlerhq/butlerd/test/database"
)

func TestAuditStreamIsAppendOnly(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewTestClient(t)

	ev, err := Append(ctx, db.ApprovalEvent, Entry{
		Type:  EventRuleCreated,
		Actor: "owner",
	})
	require.NoError(t, err)

	t.Run("update rejected by trigger", func(t *testing.T) {
		_, err := db.DB().ExecContext(ctx,
			"UPDATE approval_events SET actor = 'tampered' WHERE event_id = $1", ev.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "append-only")
	})

	t.Run("delete rejected by trigger", func(t *testing.T) {
		_, err := db.DB().ExecContext(ctx,
			"DELETE FROM approval_events WHERE event_id = $1", ev.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "append-only")
	})

	t.Run("row still intact", func(t *testing.T) {
		got, err := db.ApprovalEvent.Get(ctx, ev.ID)
		require.NoError(t, err)
		assert.Equal(t, "owner", got.Actor)
	})
}
