package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
)

// constraintStatements is the schema-level enforcement the Ent schema cannot
// express. Production gets these from the embedded migrations; tests that
// build schemas with ent's Schema.Create apply them through
// CreateConstraints. Statements are idempotent.
var constraintStatements = []string{
	// At most one contact may carry the 'owner' role across the database.
	`CREATE UNIQUE INDEX IF NOT EXISTS contacts_single_owner
	    ON contacts ((1))
	    WHERE roles @> '["owner"]'::jsonb`,

	// The audit stream is append-only at the schema level.
	`CREATE OR REPLACE FUNCTION approval_events_immutable() RETURNS trigger AS $$
	BEGIN
	    RAISE EXCEPTION 'approval_events is append-only: % not permitted', TG_OP;
	END;
	$$ LANGUAGE plpgsql`,

	`DROP TRIGGER IF EXISTS approval_events_no_update ON approval_events`,

	`CREATE TRIGGER approval_events_no_update
	    BEFORE UPDATE OR DELETE ON approval_events
	    FOR EACH ROW EXECUTE FUNCTION approval_events_immutable()`,
}

// CreateConstraints installs the single-owner index and the audit
// immutability trigger on an existing schema.
func CreateConstraints(ctx context.Context, db *stdsql.DB) error {
	for _, stmt := range constraintStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to install schema constraint: %w", err)
		}
	}
	return nil
}
