package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Manage the frontend i18n dictionaries",
}

var mirrorSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Rewrite home and project keys in en.json and fr.json from the stored content",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, m, err := openStore()
		if err != nil {
			return err
		}
		if m == nil {
			return errors.New("I18N_DIR is not set")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := st.SyncMirror(ctx); err != nil {
			return fmt.Errorf("sync: %w", err)
		}
		fmt.Println("Dictionaries updated.")
		return nil
	},
}

func init() {
	mirrorCmd.AddCommand(mirrorSyncCmd)
	rootCmd.AddCommand(mirrorCmd)
}
