/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Seednode/compliments/pairing"
	"github.com/spf13/cobra"
)

const lastSeedFile = "last_seed"

func newRevealCmd(cfg *Config) *cobra.Command {
	var name, seed, stateDir string

	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Show your partner, role and behavior case for a seed.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine(cfg)
			if err != nil {
				return err
			}

			r, err := e.Reveal(name, seed)
			if err != nil {
				return err
			}

			if !r.Synchronized {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", r.Warning)
			} else {
				saveLastSeed(cfg, stateDir, r.Seed)
			}

			printAssignment(cmd.OutOrStdout(), r.Assignment)

			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&name, "name", "n", "", "your full name")
	fs.StringVarP(&seed, "seed", "s", "", "seed shared by the instructor")
	fs.StringVar(&stateDir, "state-dir", "", "where to remember the last seed used (default: user config dir)")

	return cmd
}

func newTableCmd(cfg *Config) *cobra.Command {
	var seed string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print every group for a seed.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine(cfg)
			if err != nil {
				return err
			}

			if strings.TrimSpace(seed) == "" {
				seed = pairing.FallbackSeed
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: no seed given, using %q\n", seed)
			}

			table := e.Assignments(seed)
			w := cmd.OutOrStdout()

			for i, group := range e.Groups(seed) {
				fmt.Fprintf(w, "Group %d\n", i+1)
				for _, member := range group {
					a := table[member]
					fmt.Fprintf(w, "  %-40s %s\n", a.Name, a.Label)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&seed, "seed", "s", "", "seed shared with the class")

	return cmd
}

func newSeedCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Generate a fresh seed to share with the class.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := pairing.NewSeed(time.Now())
			if err != nil {
				return err
			}

			logf(cfg, "SEED: Generated %s", seed)

			fmt.Fprintln(cmd.OutOrStdout(), seed)

			return nil
		},
	}
}

func printAssignment(w io.Writer, a pairing.Assignment) {
	fmt.Fprintf(w, "%s\n", a.Name)
	fmt.Fprintf(w, "Role:     %s\n", a.Label)

	if len(a.Partners) == 0 {
		fmt.Fprintln(w, "Partners: (none)")
	} else {
		fmt.Fprintf(w, "Partners: %s\n", strings.Join(a.Partners, ", "))
	}

	fmt.Fprintf(w, "Do:       %s\n", a.Case.Positive)
	fmt.Fprintf(w, "Avoid:    %s\n", a.Case.Negative)
}

// saveLastSeed remembers the seed for the user's reference. Failures are
// only logged.
func saveLastSeed(cfg *Config, dir, seed string) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			logf(cfg, "ERROR: %v", err)
			return
		}
		dir = filepath.Join(base, "compliments")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		logf(cfg, "ERROR: %v", err)
		return
	}

	if err := os.WriteFile(filepath.Join(dir, lastSeedFile), []byte(seed+"\n"), 0o644); err != nil {
		logf(cfg, "ERROR: %v", err)
	}
}
