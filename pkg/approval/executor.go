package approval

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/butlerhq/butlerd/ent"
	"github.com/butlerhq/butlerd/ent/approvalrule"
	"github.com/butlerhq/butlerd/ent/pendingaction"
	"github.com/butlerhq/butlerd/pkg/events"
	"github.com/butlerhq/butlerd/pkg/masking"
	"github.com/butlerhq/butlerd/pkg/models"
)

// Executor runs approved actions exactly once. The approved→executed
// transition, the execution result, the rule use counter, and the execution
// audit event commit in one transaction; the handler itself runs outside it.
type Executor struct {
	client  *ent.Client
	invoker Invoker
	masker  *masking.Service
}

func NewExecutor(client *ent.Client, invoker Invoker, masker *masking.Service) *Executor {
	return &Executor{client: client, invoker: invoker, masker: masker}
}

// Run executes the handler for an already-approved action and persists the
// outcome. A handler error still moves the action to executed; the failure
// is recorded in execution_result and the audit stream, never retried.
func (e *Executor) Run(ctx context.Context, actionID, toolName string, args map[string]interface{}, ruleID string) (*models.ExecutionResult, error) {
	var (
		result  interface{}
		execErr error
	)
	if e.invoker != nil && e.invoker.HasHandler(toolName) {
		result, execErr = e.invoker.Invoke(ctx, toolName, args)
	} else {
		// No registered handler: the approval itself is the outcome. Seen
		// with tools approved manually after their module was unloaded.
		slog.Warn("No handler registered for approved action, recording null result",
			"action_id", actionID, "tool_name", toolName)
	}

	outcome := &models.ExecutionResult{
		Success:    execErr == nil,
		ExecutedAt: time.Now().UTC(),
	}
	if execErr != nil {
		outcome.Error = e.masker.MaskError(execErr)
	} else {
		outcome.Result = result
	}

	if err := e.persist(ctx, actionID, ruleID, outcome); err != nil {
		return nil, err
	}
	return outcome, nil
}

// RunPersisted executes a claimed action from its stored (redacted) args.
// Used by the queue pool for actions approved after parking.
func (e *Executor) RunPersisted(ctx context.Context, action *ent.PendingAction) (*models.ExecutionResult, error) {
	ruleID := ""
	if action.RuleID != nil {
		ruleID = *action.RuleID
	}
	return e.Run(ctx, action.ID, action.ToolName, action.ToolArgs, ruleID)
}

func (e *Executor) persist(ctx context.Context, actionID, ruleID string, outcome *models.ExecutionResult) error {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := tx.PendingAction.Update().
		Where(
			pendingaction.IDEQ(actionID),
			pendingaction.StatusEQ(pendingaction.StatusApproved),
		).
		SetStatus(pendingaction.StatusExecuted).
		SetExecutionResult(outcome).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record execution for %s: %w", actionID, err)
	}
	if n == 0 {
		// Lost the race: the action left approved between execution and
		// persistence. The execution already happened; surface it loudly.
		return fmt.Errorf("action %s: %w (status changed during execution)", actionID, ErrInvalidTransition)
	}

	if ruleID != "" {
		if _, err := tx.ApprovalRule.Update().
			Where(approvalrule.IDEQ(ruleID)).
			AddUseCount(1).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to increment rule use count for %s: %w", ruleID, err)
		}
	}

	eventType := events.EventExecutionSucceeded
	entry := events.Entry{
		Type:     eventType,
		ActionID: actionID,
		RuleID:   ruleID,
		Actor:    "executor",
	}
	if !outcome.Success {
		entry.Type = events.EventExecutionFailed
		entry.Reason = outcome.Error
	}
	if _, err := events.Append(ctx, tx.ApprovalEvent, entry); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit execution record: %w", err)
	}
	return nil
}
