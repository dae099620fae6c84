package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rcliao/token-studio/internal/model"
	"github.com/rcliao/token-studio/internal/store"
	"github.com/rcliao/token-studio/internal/validate"
)

func init() {
	cmd := &cobra.Command{
		Use:   "update <id|name>",
		Short: "Edit a token",
		Args:  cobra.ExactArgs(1),
		Run:   runUpdate,
	}

	cmd.Flags().StringP("name", "n", "", "New name")
	cmd.Flags().String("value", "", "New value")
	cmd.Flags().StringP("type", "t", "", "New type")
	cmd.Flags().String("category", "", "New category")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().StringSlice("state", nil, "Set an interactive state color, e.g. hover=#3730A3 (repeatable)")
	cmd.Flags().String("usage", "", "Replace the usage note")

	RootCmd.AddCommand(cmd)
}

func runUpdate(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()
	stateSpecs, _ := flags.GetStringSlice("state")
	usage, _ := flags.GetString("usage")

	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	cur, err := resolveToken(s, args[0])
	if err != nil {
		exitErr("update", err)
	}

	next := cur.Clone()
	var patch store.TokenPatch
	if flags.Changed("name") {
		next.Name, _ = flags.GetString("name")
		patch.Name = &next.Name
	}
	if flags.Changed("value") {
		next.Value, _ = flags.GetString("value")
		patch.Value = &next.Value
	}
	if flags.Changed("type") {
		raw, _ := flags.GetString("type")
		if next.Type, err = parseType(raw); err != nil {
			exitErr("update", err)
		}
		patch.Type = &next.Type
	}
	if flags.Changed("category") {
		raw, _ := flags.GetString("category")
		if next.Category, err = parseCategory(raw); err != nil {
			exitErr("update", err)
		}
		patch.Category = &next.Category
	}
	if flags.Changed("description") {
		next.Description, _ = flags.GetString("description")
		patch.Description = &next.Description
	}

	if r := validate.Token(next); !r.Valid {
		exitInvalid(r)
	}
	if err := s.EnsureUniqueName(next.Name, cur.ID); err != nil {
		exitErr("update", err)
	}

	states, err := parseStates(stateSpecs)
	if err != nil {
		exitErr("update", err)
	}
	if next.Type != model.TypeColor && (len(states) > 0 || usage != "") {
		exitErr("update", errors.New("--state and --usage only apply to color tokens"))
	}

	reshaped := patch.Value != nil || patch.Type != nil
	if reshaped {
		patch.Attrs = validate.Derive(next.Type, next.Value)
	}
	if next.Type == model.TypeColor {
		base := next.Attrs
		if reshaped {
			derived, _ := patch.Attrs.(*model.ColorAttrs)
			if derived == nil {
				derived = &model.ColorAttrs{}
			}
			if old, ok := next.Color(); ok {
				derived.InteractiveStates, derived.Usage = old.InteractiveStates, old.Usage
			}
			base = derived
			patch.Attrs = derived
		}
		if len(states) > 0 || usage != "" {
			patch.Attrs = colorAttrs(base, states, usage)
		}
	}

	if _, err := s.Update(cmd.Context(), cur.ID, patch); err != nil {
		exitErr("update", err)
	}

	if jsonOutput() {
		updated, _ := s.Token(cur.ID)
		printJSON(updated)
		return
	}
	notify.Success("Token %q updated successfully", next.Name)
}
