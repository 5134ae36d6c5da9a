package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/jp-mud/internal/world"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Normalize a world payload and report connection problems",
	Long: `Inspect reads a generated world payload (JSON, "-" for standard input), prints
the normalized world as YAML and lists connections without a way back and
characters or items that are named but never defined.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read world payload: %w", err)
	}

	w := world.Normalize(json.RawMessage(data))

	out := cmd.OutOrStdout()
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(w); err != nil {
		return fmt.Errorf("failed to encode world: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode world: %w", err)
	}

	problems := world.ValidateConnections(w)
	if len(problems) == 0 {
		fmt.Fprintln(out, "# all connections lead back")
	}
	for _, e := range problems {
		fmt.Fprintf(out, "# %s --%s--> %s: %s\n", e.From, e.Direction, e.To, e.Problem)
	}

	for _, ref := range world.MissingReferences(w) {
		fmt.Fprintf(out, "# %s %s names unknown %s %s\n",
			ref.Owner.GetType(), ref.Owner.GetID(), ref.Type, ref.ID)
	}
	return nil
}
