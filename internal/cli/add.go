package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rcliao/token-studio/internal/model"
	"github.com/rcliao/token-studio/internal/naming"
	"github.com/rcliao/token-studio/internal/store"
	"github.com/rcliao/token-studio/internal/validate"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add <value>",
		Short: "Create a token",
		Long:  "Create a token. Without --name a name is generated from category, type and value.",
		Args:  cobra.ExactArgs(1),
		Run:   runAdd,
	}

	cmd.Flags().StringP("name", "n", "", "Token name (letters, digits, /, _ and -)")
	cmd.Flags().StringP("type", "t", string(model.TypeColor), "Token type: "+joinTypes())
	cmd.Flags().String("category", string(model.CategoryOther), "Token category")
	cmd.Flags().String("description", "", "Description")
	cmd.Flags().StringSlice("state", nil, "Interactive state color, e.g. hover=#3730A3 (color tokens, repeatable)")
	cmd.Flags().String("usage", "", "Usage note (color tokens)")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	typStr, _ := cmd.Flags().GetString("type")
	catStr, _ := cmd.Flags().GetString("category")
	desc, _ := cmd.Flags().GetString("description")
	stateSpecs, _ := cmd.Flags().GetStringSlice("state")
	usage, _ := cmd.Flags().GetString("usage")
	value := args[0]

	typ, err := parseType(typStr)
	if err != nil {
		exitErr("add", err)
	}
	cat, err := parseCategory(catStr)
	if err != nil {
		exitErr("add", err)
	}
	states, err := parseStates(stateSpecs)
	if err != nil {
		exitErr("add", err)
	}
	if typ != model.TypeColor && (len(states) > 0 || usage != "") {
		exitErr("add", errors.New("--state and --usage only apply to color tokens"))
	}

	if name == "" {
		name = naming.Generate(cat, typ, value)
	}
	if r := validate.Token(model.Token{Name: name, Value: value, Type: typ}); !r.Valid {
		exitInvalid(r)
	}

	attrs := validate.Derive(typ, value)
	if typ == model.TypeColor && (len(states) > 0 || usage != "") {
		attrs = colorAttrs(attrs, states, usage)
	}

	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.EnsureUniqueName(name, ""); err != nil {
		exitErr("add", err)
	}

	tok, err := s.Add(cmd.Context(), store.AddParams{
		Name:        name,
		Value:       value,
		Type:        typ,
		Category:    cat,
		Description: desc,
		Attrs:       attrs,
	})
	if err != nil {
		exitErr("add", err)
	}

	if jsonOutput() {
		printJSON(tok)
		return
	}
	notify.Success("Token %q created successfully", tok.Name)
}
