package cmd

import (
	"fmt"

	"github.com/bgraf/figcap/config"
	"github.com/bgraf/figcap/document"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

// figuresCmd represents the figures command
var figuresCmd = &cobra.Command{
	Use:   "figures [FILE...]",
	Short: "List the figures of documents",
	Long: `Figures prints one line per figure: path, caption and image source,
separated by tabs. Without arguments all documents in the document
directory are listed.`,
	RunE: runFigures,
}

func init() {
	rootCmd.AddCommand(figuresCmd)
}

func runFigures(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		if !config.HasDirectory() {
			return fmt.Errorf("no files given and no document directory configured")
		}

		var err error
		paths, err = document.FindDocuments(config.Directory())
		if err != nil {
			return err
		}
	}

	converter := newConverter()
	w := cmd.OutOrStdout()

	var errs *multierror.Error
	for _, path := range paths {
		doc, err := converter.Load(path)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}

		for _, f := range doc.Figures() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", path, f.Caption, f.Src)
		}
	}

	return errs.ErrorOrNil()
}
