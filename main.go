package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pocketpet/internal/pet"
	"pocketpet/internal/store"
	"pocketpet/internal/ui"
)

var (
	dataDir    string
	configPath string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:   "pocketpet",
		Short: "🐾 A virtual pet that lives in your terminal",
		Long: `pocketpet: adopt a pet, keep it fed, happy, rested, and healthy,
and balance the budget that pays for all of it. State persists between runs.`,
		RunE: runGame,
	}
)

func init() {
	home, _ := os.UserHomeDir()
	defaultDir := filepath.Join(home, ".config", "pocketpet")

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", defaultDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "policy file (default: <data>/policy.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(resetCmd())
	rootCmd.AddCommand(ledgerCmd())
	rootCmd.AddCommand(statsCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openSession wires up logging, policy, store, and the persisted session.
func openSession(ctx context.Context) (*pet.Session, *store.SQLiteStore, error) {
	setupLogging()

	if configPath == "" {
		configPath = filepath.Join(dataDir, "policy.yaml")
	}
	policy, err := pet.LoadPolicy(configPath)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.OpenSQLite(filepath.Join(dataDir, "pocketpet.db"))
	if err != nil {
		return nil, nil, err
	}

	session, err := pet.NewSession(ctx, policy, st)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return session, st, nil
}

// setupLogging sends slog to a file so the TUI keeps the terminal.
func setupLogging() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		level = slog.LevelInfo
	}

	if err := os.MkdirAll(dataDir, 0o755); err == nil {
		f, err := os.OpenFile(filepath.Join(dataDir, "pocketpet.log"),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
			return
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func runGame(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	session, st, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer st.Close()
	defer func() {
		if err := session.Flush(); err != nil {
			slog.Warn("final save failed", "error", err)
		}
	}()

	program := tea.NewProgram(ui.NewModel(session))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Say goodbye: erase the current pet and its expense log",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			session, st, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if !session.HasPet() {
				fmt.Println("No pet to reset.")
				return nil
			}
			if !yes {
				fmt.Printf("This erases %s forever. Pass --yes to confirm.\n", session.Engine.Profile().Name)
				return nil
			}
			if err := session.Reset(ctx); err != nil {
				return err
			}
			fmt.Println("Pet reset. Run pocketpet to adopt a new one.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip confirmation")
	return cmd
}

func ledgerCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Print recent expense log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			session, st, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if !session.HasPet() {
				fmt.Println("No pet yet. Run pocketpet to adopt one.")
				return nil
			}
			entries := session.Engine.Ledger().Recent(n)
			if len(entries) == 0 {
				fmt.Println("Nothing spent yet.")
				return nil
			}
			for _, e := range entries {
				if e.Cost < 0 {
					fmt.Printf("%s  %-18s +$%d\n", e.Time, e.Item, -e.Cost)
				} else {
					fmt.Printf("%s  %-18s -$%d\n", e.Time, e.Item, e.Cost)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 10, "entries to show")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the pet's current stats without opening the game",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			session, st, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if !session.HasPet() {
				fmt.Println("No pet yet. Run pocketpet to adopt one.")
				return nil
			}
			p := session.Engine.Profile()
			fmt.Printf("%s the %s (%s)\n", p.Name, p.Species, p.Personality)
			fmt.Printf("  Hunger: %3.0f%%  Happy: %3.0f%%  Energy: %3.0f%%  Health: %3.0f%%\n",
				p.Stats.Hunger, p.Stats.Happy, p.Stats.Energy, p.Stats.Health)
			fmt.Printf("  Money: $%d  Expenses: $%d  Savings: $%d / $%d\n",
				p.Stats.Money, p.TotalExpenses, p.SavingsCurrent(), p.SavingsGoal)
			return nil
		},
	}
}
