package cmd

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/bgraf/figcap/document"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render FILE...",
	Short: "Render markdown files to HTML",
	Long: `Render converts each markdown file to HTML. Without --output the
result is written to stdout, otherwise to <output>/<name>.html.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("output", "O", "", "Output directory")
}

func runRender(cmd *cobra.Command, args []string) error {
	outputDir, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	converter := newConverter()

	var errs *multierror.Error
	for _, path := range args {
		if err := renderFile(converter, path, outputDir, cmd.OutOrStdout()); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
		}
	}

	return errs.ErrorOrNil()
}

func renderFile(converter *document.Converter, path string, outputDir string, stdout io.Writer) error {
	source, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read source file: %w", err)
	}

	out, err := converter.Render(source)
	if err != nil {
		return err
	}

	if outputDir == "" {
		_, err = stdout.Write(out)
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	base := filepath.Base(path)
	target := filepath.Join(outputDir, strings.TrimSuffix(base, filepath.Ext(base))+".html")

	klog.Infof("%s -> %s", path, target)

	return ioutil.WriteFile(target, out, 0o644)
}
