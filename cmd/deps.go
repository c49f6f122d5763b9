package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/jobprep/internal/llm"
	"github.com/abhisek/jobprep/internal/resilient"
	"github.com/abhisek/jobprep/internal/store"
)

// openDeps wires the store, LLM provider, and resilient executor for a
// command run. The caller owns closing the returned store.
func openDeps(cmd *cobra.Command) (*store.Store, llm.Provider, *resilient.Executor, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		st.Close()
		return nil, nil, nil, fmt.Errorf("LLM provider not configured: %w", err)
	}

	return st, provider, resilient.New(resilient.Config{}), nil
}
