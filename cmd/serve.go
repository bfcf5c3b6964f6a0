package cmd

import (
	"fmt"

	"github.com/bgraf/figcap/cmd/serve"
	"github.com/bgraf/figcap/config"
	"github.com/bgraf/figcap/document"
	"github.com/goodsign/monday"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a live preview of all documents in the document directory",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", config.DefaultServeAddress(), "Address to listen on")
	serveCmd.Flags().Bool("live", config.DefaultServeLive(), "Re-read documents from disk on every request")
	serveCmd.Flags().String("locale", config.DefaultServeLocale(), "Locale for displayed dates")
}

func serveOptions() serve.Options {
	return serve.Options{
		Live:   config.ServeLive(),
		Locale: monday.Locale(config.ServeLocale()),
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	if !config.HasDirectory() {
		return fmt.Errorf("no document directory configured")
	}

	store, err := document.NewStore(config.Directory(), newConverter())
	if err != nil {
		if store == nil {
			return err
		}

		klog.Warningf("some documents could not be loaded: %s", err)
	}

	klog.Infof("serving %d documents from %s on %s", len(store.Documents), config.Directory(), config.ServeAddress())

	return serve.Run(store, config.ServeAddress(), serveOptions())
}
