package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rcliao/token-studio/internal/model"
	"github.com/rcliao/token-studio/internal/validate"
)

func parseType(s string) (model.Type, error) {
	t, ok := model.ParseType(s)
	if !ok {
		return "", fmt.Errorf("unknown type %q (want one of %s)", s, joinTypes())
	}
	return t, nil
}

func parseCategory(s string) (model.Category, error) {
	c, ok := model.ParseCategory(s)
	if !ok {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

func joinTypes() string {
	names := make([]string, len(model.Types))
	for i, t := range model.Types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// parseStates reads "state=color" pairs such as "hover=#3730A3".
func parseStates(pairs []string) (map[model.InteractiveState]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := map[model.InteractiveState]string{}
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("state %q: want state=color", pair)
		}
		state := model.InteractiveState(strings.ToLower(strings.TrimSpace(name)))
		known := false
		for _, s := range model.InteractiveStates {
			if s == state {
				known = true
			}
		}
		if !known {
			return nil, fmt.Errorf("state %q: unknown interactive state", name)
		}
		value = strings.TrimSpace(value)
		if r := validate.Color(value); !r.Valid {
			return nil, fmt.Errorf("state %q: %s", name, r.Error)
		}
		out[state] = value
	}
	return out, nil
}

// colorAttrs merges states and usage into base, which may be nil.
func colorAttrs(base model.Attrs, states map[model.InteractiveState]string, usage string) *model.ColorAttrs {
	ca, _ := base.(*model.ColorAttrs)
	if ca == nil {
		ca = &model.ColorAttrs{}
	}
	if len(states) > 0 && ca.InteractiveStates == nil {
		ca.InteractiveStates = map[model.InteractiveState]string{}
	}
	for k, v := range states {
		ca.InteractiveStates[k] = v
	}
	if usage != "" {
		ca.Usage = usage
	}
	return ca
}

// exitInvalid prints every validation message and exits.
func exitInvalid(r validate.Report) {
	if jsonOutput() {
		printJSON(r)
		os.Exit(1)
	}
	notify.Error("Please fix the validation errors")
	for _, e := range r.Errors {
		notify.Detail("%s", e)
	}
	os.Exit(1)
}
