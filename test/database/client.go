// Package database provides shared database helpers for DB-backed tests.
package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/butlerhq/butlerd/pkg/database"
	"github.com/butlerhq/butlerd/test/util"
)

// NewTestClient creates a test database client over a fresh schema.
// In CI (CI_DATABASE_URL set): connects to the external PostgreSQL service.
// In local dev: uses a shared testcontainer started once per package.
// Schema drop and connection close are registered on t.Cleanup.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	// Schema-level enforcement the Ent migration path cannot express:
	// the audit immutability trigger and the single-owner index.
	err := database.CreateConstraints(ctx, db)
	require.NoError(t, err)

	return database.NewClientFromEnt(entClient, db)
}
