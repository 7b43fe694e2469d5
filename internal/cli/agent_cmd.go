package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/threeonelabs/storebuilder/internal/builder"
	"github.com/threeonelabs/storebuilder/internal/domain"
	"github.com/threeonelabs/storebuilder/internal/store"
)

func newAgentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Manage saved storefront agents",
	}

	cmd.AddCommand(newAgentListCmd())
	cmd.AddCommand(newAgentShowCmd())
	cmd.AddCommand(newAgentResetCmd())
	cmd.AddCommand(newAgentDeleteCmd())
	return cmd
}

func withAgentStore(fn func(agents store.AgentStore) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := paths.EnsureDirs(); err != nil {
		return err
	}
	agents, closeStore, err := openAgentStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(agents)
}

func newAgentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved agents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAgentStore(func(agents store.AgentStore) error {
				saved, err := agents.List()
				if err != nil {
					return err
				}
				if len(saved) == 0 {
					fmt.Println("no saved agents")
					return nil
				}
				for _, a := range saved {
					brand := a.Profile.BrandName
					if brand == "" {
						brand = "(in progress)"
					}
					fmt.Printf("  %-20s %-20s products=%d updated=%s\n",
						a.SessionKey, brand, len(a.Profile.Products),
						a.UpdatedAt.Format("2006-01-02 15:04"))
				}
				return nil
			})
		},
	}
}

func newAgentShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-key>",
		Short: "Print a saved agent profile as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAgentStore(func(agents store.AgentStore) error {
				saved, err := agents.Load(args[0])
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("agent not found: %s", args[0])
				}
				if err != nil {
					return err
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(saved.Profile)
			})
		},
	}
}

func newAgentResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <session-key>",
		Short: "Reset a saved agent back to a fresh build conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAgentStore(func(agents store.AgentStore) error {
				sess := builder.NewSession(domain.AgentProfile{}, nil, log)
				if err := agents.Save(args[0], sess.Profile(), sess.Transcript()); err != nil {
					return err
				}
				fmt.Printf("reset %s\n", args[0])
				return nil
			})
		},
	}
}

func newAgentDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session-key>",
		Short: "Delete a saved agent and its transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAgentStore(func(agents store.AgentStore) error {
				if err := agents.Delete(args[0]); err != nil {
					return err
				}
				fmt.Printf("deleted %s\n", args[0])
				return nil
			})
		},
	}
}
