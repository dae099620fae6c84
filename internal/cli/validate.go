package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/token-studio/internal/validate"
)

func init() {
	cmd := &cobra.Command{
		Use:   "validate [type value]",
		Short: "Check a value, or every stored token",
		Long:  "With a type and value, check the value against that type's format. With no arguments, check every stored token.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return errors.New("want a type and a value, or no arguments")
			}
			return cobra.MaximumNArgs(2)(cmd, args)
		},
		Run: runValidate,
	}

	RootCmd.AddCommand(cmd)
}

type validation struct {
	Name   string   `json:"name"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) {
	if len(args) == 2 {
		validateValue(args[0], args[1])
		return
	}
	validateStored(cmd)
}

func validateValue(typStr, value string) {
	typ, err := parseType(typStr)
	if err != nil {
		exitErr("validate", err)
	}
	r := validate.Value(typ, value)
	if jsonOutput() {
		printJSON(r)
	} else if r.Valid {
		notify.Success("%s is a valid %s value", value, typ)
	} else {
		notify.Error("%s", r.Error)
	}
	if !r.Valid {
		os.Exit(1)
	}
}

func validateStored(cmd *cobra.Command) {
	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	var results []validation
	invalid := 0
	for _, t := range s.Tokens() {
		r := validate.Token(t)
		if !r.Valid {
			invalid++
		}
		results = append(results, validation{Name: t.Name, Valid: r.Valid, Errors: r.Errors})
	}

	if jsonOutput() {
		if results == nil {
			results = []validation{}
		}
		printJSON(results)
	} else {
		for _, v := range results {
			if v.Valid {
				continue
			}
			notify.Error("%s", v.Name)
			for _, e := range v.Errors {
				notify.Detail("%s", e)
			}
		}
		if invalid == 0 {
			notify.Success("All %d tokens are valid", len(results))
		}
	}
	if invalid > 0 {
		s.Close()
		os.Exit(1)
	}
}
