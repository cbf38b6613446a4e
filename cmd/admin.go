package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"krearsip/internal/client"
	"krearsip/internal/core"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Review queues and lifecycle actions",
}

var queuesCmd = &cobra.Command{
	Use:   "queues",
	Short: "Fetch and show the three review queues",
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, _, err := buildOrchestrator(cmd.Context())
		if err != nil {
			return err
		}

		return printJSON(orch.Queues())
	},
}

var approveCmd = &cobra.Command{
	Use:   "approve <work-id>",
	Short: "Approve a draft work for on-chain registration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdminAction(cmd.Context(), func(ctx context.Context, orch *core.Krearsip) (client.AdminWorkItem, error) {
			return orch.Approve(ctx, args[0])
		})
	},
}

var rejectCmd = &cobra.Command{
	Use:   "reject <work-id>",
	Short: "Reject a draft work",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reason, err := cmd.Flags().GetString("reason")
		if err != nil {
			return err
		}

		return runAdminAction(cmd.Context(), func(ctx context.Context, orch *core.Krearsip) (client.AdminWorkItem, error) {
			return orch.Reject(ctx, args[0], reason)
		})
	},
}

var deployWorkCmd = &cobra.Command{
	Use:   "deploy <work-id>",
	Short: "Ask the backend to anchor an approved work on chain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdminAction(cmd.Context(), func(ctx context.Context, orch *core.Krearsip) (client.AdminWorkItem, error) {
			return orch.Deploy(ctx, args[0])
		})
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify <work-id>",
	Short: "Mark an anchored work as verified",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdminAction(cmd.Context(), func(ctx context.Context, orch *core.Krearsip) (client.AdminWorkItem, error) {
			return orch.Verify(ctx, args[0])
		})
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync <work-id>",
	Short: "Reconcile a work's submitted transaction with the chain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, deps, err := buildOrchestrator(cmd.Context())
		if err != nil {
			return err
		}

		result, err := orch.Sync(cmd.Context(), args[0])
		if err != nil {
			if deps.store.InvalidateIfRejected(err) {
				return fmt.Errorf("session rejected, log in again: %w", err)
			}
			return err
		}

		return printJSON(result)
	},
}

// buildOrchestrator wires the admin orchestrator and primes its queue
// snapshots; actions decide locally on the fetched state.
func buildOrchestrator(ctx context.Context) (*core.Krearsip, *appDeps, error) {
	deps, err := buildApp()
	if err != nil {
		return nil, nil, err
	}

	sess, err := deps.currentSession()
	if err != nil {
		return nil, nil, err
	}

	orch := core.NewKrearsip(logs, deps.api, sess)
	if err := orch.RefreshAll(ctx); err != nil {
		if deps.store.InvalidateIfRejected(err) {
			return nil, nil, fmt.Errorf("session rejected, log in again: %w", err)
		}
		return nil, nil, err
	}

	return orch, deps, nil
}

func runAdminAction(ctx context.Context, action func(context.Context, *core.Krearsip) (client.AdminWorkItem, error)) error {
	orch, deps, err := buildOrchestrator(ctx)
	if err != nil {
		return err
	}

	updated, err := action(ctx, orch)
	if err != nil {
		if deps.store.InvalidateIfRejected(err) {
			return fmt.Errorf("session rejected, log in again: %w", err)
		}
		return err
	}

	return printJSON(updated)
}

func init() {
	rejectCmd.Flags().String("reason", "", "reason shown to the creator")

	adminCmd.AddCommand(queuesCmd, approveCmd, rejectCmd, deployWorkCmd, verifyCmd, syncCmd)
	rootCmd.AddCommand(adminCmd)
}
