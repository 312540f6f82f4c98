package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsfactor/buildprep-cli/lib"
)

var rewriteRoot string
var rewriteFrom string
var rewriteTo string

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite Unix-style paths in generated Makefiles",
	Long: `
Rewrite walks the checkout and replaces a path segment in every file named Makefile. Generated Makefiles reference the virtualenv bin directory, which Windows names Scripts; this is the same rewrite the bootstrap sequence performs before handing off to make.

Example:
  $ buildprep rewrite
      > Replace /bin with /Scripts in every Makefile under the checkout

  $ buildprep rewrite --root /path/to/tree --from /bin --to /Scripts
	`,

	Run: func(cmd *cobra.Command, args []string) {
		root := rewriteRoot
		if root == "" {
			root = lib.CheckoutDir()
		}

		rewritten, err := lib.RewriteMakefiles(root, rewriteFrom, rewriteTo)
		if err != nil {
			fatal(err.Error(), 1)
		}

		for _, path := range rewritten {
			printSuccessText("Rewrote " + path)
		}

		if len(rewritten) == 0 {
			printWarningText("No Makefiles needed rewriting")
		} else {
			printSuccessText(fmt.Sprintf("✔ Rewrote %d Makefile(s)", len(rewritten)))
		}
	},
}

func init() {
	RootCmd.AddCommand(rewriteCmd)
	rewriteCmd.Flags().StringVar(&rewriteRoot, "root", rewriteRoot, "Tree to rewrite (default: the build checkout)")
	rewriteCmd.Flags().StringVar(&rewriteFrom, "from", "/bin", "Path segment to replace")
	rewriteCmd.Flags().StringVar(&rewriteTo, "to", "/Scripts", "Replacement path segment")
}
