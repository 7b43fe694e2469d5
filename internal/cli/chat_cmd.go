package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/threeonelabs/storebuilder/internal/builder"
	"github.com/threeonelabs/storebuilder/internal/domain"
	"github.com/threeonelabs/storebuilder/internal/enrich"
	"github.com/threeonelabs/storebuilder/internal/store"
)

func newChatCmd() *cobra.Command {
	var sessionKey string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Build a storefront agent interactively in the terminal",
		Long: "chat runs the guided intake conversation on stdin/stdout.\n" +
			"Type /reset to start over and /quit to leave. Progress is saved\n" +
			"after every turn, so quitting and returning resumes the agent.",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			enricher, timeout := buildEnricher(cfg)

			return runChat(cmd.Context(), sessionKey, agents, enricher, timeout)
		},
	}

	cmd.Flags().StringVar(&sessionKey, "session", "default", "session key to build under")

	return cmd
}

func runChat(ctx context.Context, key string, agents store.AgentStore, enricher enrich.Enricher, timeout time.Duration) error {
	var (
		profile    domain.AgentProfile
		transcript []domain.Turn
	)
	saved, err := agents.Load(key)
	switch {
	case err == nil:
		profile = saved.Profile
		transcript = saved.Transcript
	case errors.Is(err, store.ErrNotFound):
		// fresh session
	default:
		return err
	}

	sess := builder.NewSession(profile, transcript, log)
	persist := func() {
		if err := agents.Save(key, sess.Profile(), sess.Transcript()); err != nil {
			log.Error().Err(err).Str("session", key).Msg("failed to save session")
		}
	}
	persist()

	if turns := sess.Transcript(); len(turns) > 0 {
		last := turns[len(turns)-1]
		if last.Role == domain.RoleAssistant {
			fmt.Println(last.Content)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		text := strings.TrimSpace(scanner.Text())

		switch {
		case text == "":
			continue
		case text == "/quit", text == "/exit":
			return nil
		case text == "/reset":
			sess.Reset(domain.AgentProfile{})
			persist()
			if turns := sess.Transcript(); len(turns) > 0 {
				fmt.Println("\n" + turns[len(turns)-1].Content)
			}
			continue
		}

		result := sess.SubmitTurn(text)
		reply, _ := enrich.Decorate(ctx, enricher, timeout, result.Reply, result.Profile, log)
		persist()

		fmt.Println("\n" + reply)
	}
}
