package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"krearsip/internal/client"
	"krearsip/pkg/fingerprint"
)

var submitCmd = &cobra.Command{
	Use:   "submit <file>",
	Short: "Register a creative work from a local file",
	Long: `Hashes the file with SHA-256 and submits the digest together with the
title as a new draft work. The file itself never leaves this machine.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, err := cmd.Flags().GetString("title")
		if err != nil {
			return err
		}

		deps, err := buildApp()
		if err != nil {
			return err
		}

		sess, err := deps.currentSession()
		if err != nil {
			return err
		}

		hash, err := fingerprint.File(args[0])
		if err != nil {
			return fmt.Errorf("fingerprint %q: %w", args[0], err)
		}

		work, err := deps.api.CreateWork(cmd.Context(), sess, client.CreateWorkRequest{
			Judul:      title,
			HashBerkas: hash,
		})
		if err != nil {
			if deps.store.InvalidateIfRejected(err) {
				return fmt.Errorf("session rejected, log in again: %w", err)
			}
			return err
		}

		return printJSON(work)
	},
}

var worksCmd = &cobra.Command{
	Use:   "works",
	Short: "List your own works",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildApp()
		if err != nil {
			return err
		}

		sess, err := deps.currentSession()
		if err != nil {
			return err
		}

		list, err := deps.api.MyWorks(cmd.Context(), sess)
		if err != nil {
			if deps.store.InvalidateIfRejected(err) {
				return fmt.Errorf("session rejected, log in again: %w", err)
			}
			return err
		}

		return printJSON(list)
	},
}

var publicCmd = &cobra.Command{
	Use:   "public",
	Short: "Browse the public registry, no login required",
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := cmd.Flags().GetString("search")
		if err != nil {
			return err
		}

		deps, err := buildApp()
		if err != nil {
			return err
		}

		list, err := deps.api.PublicWorks(cmd.Context(), query)
		if err != nil {
			return err
		}

		return printJSON(list)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <work-id>",
	Short: "Show the public proof record of one work",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildApp()
		if err != nil {
			return err
		}

		detail, err := deps.api.PublicWorkDetail(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return printJSON(detail)
	},
}

func init() {
	submitCmd.Flags().String("title", "", "title of the work")
	_ = submitCmd.MarkFlagRequired("title")
	publicCmd.Flags().StringP("search", "s", "", "filter by title")

	rootCmd.AddCommand(submitCmd, worksCmd, publicCmd, showCmd)
}
