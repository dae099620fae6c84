package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/token-studio/internal/colors"
)

func init() {
	cmd := &cobra.Command{
		Use:   "contrast <color> [background]",
		Short: "Pick readable text for a color, or rate two colors",
		Long: "With one color, print the text color (black or white) that reads best on it.\n" +
			"With two, print the WCAG contrast ratio of the first on the second.",
		Args: cobra.RangeArgs(1, 2),
		Run:  runContrast,
	}

	RootCmd.AddCommand(cmd)
}

func runContrast(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		text := colors.ContrastColor(args[0])
		if jsonOutput() {
			printJSON(map[string]string{"background": args[0], "text": text})
			return
		}
		fmt.Println(text)
		return
	}

	fg, ok := colors.Parse(args[0])
	if !ok {
		exitErr("contrast", fmt.Errorf("not a color: %q", args[0]))
	}
	bg, ok := colors.Parse(args[1])
	if !ok {
		exitErr("contrast", fmt.Errorf("not a color: %q", args[1]))
	}
	check := colors.Contrast(fg, bg)

	if jsonOutput() {
		printJSON(check)
		return
	}
	fmt.Printf("%.2f:1\n", check.Ratio)
	notify.Detail("AA  %s", pass(check.AA))
	notify.Detail("AAA %s", pass(check.AAA))
}

func pass(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
