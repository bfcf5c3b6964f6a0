package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/bgraf/figcap/markdown/blocks"
	"github.com/bgraf/figcap/markdown/figure"
	"github.com/spf13/cobra"
)

// blocksCmd represents the blocks command
var blocksCmd = &cobra.Command{
	Use:   "blocks [FILE]",
	Short: "Run a file through the plain block processor",
	Long: `Blocks splits the input into blank line separated blocks and runs
them through the figure, list and paragraph rules. Image markup is kept as
text. Reads stdin if FILE is missing or "-".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBlocks,
}

func init() {
	rootCmd.AddCommand(blocksCmd)
}

func runBlocks(cmd *cobra.Command, args []string) error {
	var source []byte
	var err error

	if len(args) == 0 || args[0] == "-" {
		source, err = ioutil.ReadAll(cmd.InOrStdin())
	} else {
		source, err = ioutil.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("could not read input: %w", err)
	}

	registry := blocks.NewDefaultRegistry()
	if err := figure.Register(registry, figureOptions()...); err != nil {
		return err
	}

	root, err := blocks.NewParser(registry).Parse(string(source))
	if err != nil {
		return fmt.Errorf("process blocks: %w", err)
	}

	w := cmd.OutOrStdout()
	if err := blocks.Render(w, root); err != nil {
		return err
	}

	_, err = fmt.Fprintln(w)
	return err
}
