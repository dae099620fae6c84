package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/token-studio/internal/model"
	"github.com/rcliao/token-studio/internal/store"
	"github.com/rcliao/token-studio/internal/ui"
)

func init() {
	groupCmd := &cobra.Command{
		Use:   "group",
		Short: "Manage token groups",
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a group",
		Args:  cobra.ExactArgs(1),
		Run:   runGroupAdd,
	}
	addCmd.Flags().String("category", string(model.CategoryOther), "Group category")

	updateCmd := &cobra.Command{
		Use:   "update <id|name>",
		Short: "Rename, recategorize or collapse a group",
		Args:  cobra.ExactArgs(1),
		Run:   runGroupUpdate,
	}
	updateCmd.Flags().StringP("name", "n", "", "New name")
	updateCmd.Flags().String("category", "", "New category")
	updateCmd.Flags().Bool("collapsed", false, "Collapsed state")

	toggleCmd := &cobra.Command{
		Use:   "toggle <id|name>",
		Short: "Flip a group's collapsed state",
		Args:  cobra.ExactArgs(1),
		Run:   runGroupToggle,
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id|name>",
		Short: "Delete a group (its tokens become ungrouped)",
		Args:  cobra.ExactArgs(1),
		Run:   runGroupRm,
	}

	moveCmd := &cobra.Command{
		Use:   "move <token> [group]",
		Short: "Move a token into a group, or out of all groups",
		Args:  cobra.RangeArgs(1, 2),
		Run:   runGroupMove,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List groups",
		Run:   runGroupList,
	}

	groupCmd.AddCommand(addCmd, updateCmd, toggleCmd, rmCmd, moveCmd, listCmd)
	RootCmd.AddCommand(groupCmd)
}

func runGroupAdd(cmd *cobra.Command, args []string) {
	catStr, _ := cmd.Flags().GetString("category")
	cat, err := parseCategory(catStr)
	if err != nil {
		exitErr("group add", err)
	}

	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	g, err := s.AddGroup(cmd.Context(), args[0], cat)
	if err != nil {
		exitErr("group add", err)
	}

	if jsonOutput() {
		printJSON(g)
		return
	}
	notify.Success("Group %q created", g.Name)
}

func runGroupUpdate(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()
	var patch store.GroupPatch
	if flags.Changed("name") {
		name, _ := flags.GetString("name")
		patch.Name = &name
	}
	if flags.Changed("category") {
		raw, _ := flags.GetString("category")
		cat, err := parseCategory(raw)
		if err != nil {
			exitErr("group update", err)
		}
		patch.Category = &cat
	}
	if flags.Changed("collapsed") {
		collapsed, _ := flags.GetBool("collapsed")
		patch.Collapsed = &collapsed
	}

	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	g, err := resolveGroup(s, args[0])
	if err != nil {
		exitErr("group update", err)
	}
	if _, err := s.UpdateGroup(cmd.Context(), g.ID, patch); err != nil {
		exitErr("group update", err)
	}
	notify.Success("Group %q updated", g.Name)
}

func runGroupToggle(cmd *cobra.Command, args []string) {
	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	g, err := resolveGroup(s, args[0])
	if err != nil {
		exitErr("group toggle", err)
	}
	collapsed := !g.Collapsed
	if _, err := s.UpdateGroup(cmd.Context(), g.ID, store.GroupPatch{Collapsed: &collapsed}); err != nil {
		exitErr("group toggle", err)
	}

	state := "expanded"
	if collapsed {
		state = "collapsed"
	}
	notify.Success("Group %q %s", g.Name, state)
}

func runGroupRm(cmd *cobra.Command, args []string) {
	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	g, err := resolveGroup(s, args[0])
	if err != nil {
		exitErr("group rm", err)
	}
	if err := s.DeleteGroup(cmd.Context(), g.ID); err != nil {
		exitErr("group rm", err)
	}
	notify.Success("Group %q deleted", g.Name)
}

func runGroupMove(cmd *cobra.Command, args []string) {
	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	tok, err := resolveToken(s, args[0])
	if err != nil {
		exitErr("group move", err)
	}

	// No group argument ungroups the token.
	var groupID, groupName string
	if len(args) == 2 {
		g, err := resolveGroup(s, args[1])
		if err != nil {
			exitErr("group move", err)
		}
		groupID, groupName = g.ID, g.Name
	}

	if err := s.MoveTokenToGroup(cmd.Context(), tok.ID, groupID); err != nil {
		exitErr("group move", err)
	}

	if groupID == "" {
		notify.Success("Token %q ungrouped", tok.Name)
		return
	}
	notify.Success("Token %q moved to %q", tok.Name, groupName)
}

func runGroupList(cmd *cobra.Command, args []string) {
	s, err := openStore(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	groups := s.Groups()
	if jsonOutput() {
		printJSON(groups)
		return
	}
	if len(groups) == 0 {
		notify.Info("No groups")
		return
	}
	fmt.Println(ui.GroupTable(groups))
	for _, g := range groups {
		if g.Collapsed || len(g.Tokens) == 0 {
			continue
		}
		fmt.Printf("\n%s\n", g.Name)
		fmt.Println(ui.TokenTable(g.Tokens))
	}
}
