package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bgraf/figcap/config"
	"github.com/bgraf/figcap/document"
	"github.com/bgraf/figcap/markdown/figure"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "figcap",
	Short: "Render standalone markdown images as captioned figures",
	Long: `figcap renders markdown documents. Every block consisting only of
images, one per line, becomes a group of figures captioned with the alt text.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	klogFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(klogFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.figcap.yaml)")
	rootCmd.PersistentFlags().StringP("directory", "d", "", "Document root directory")
	rootCmd.PersistentFlags().Bool("gfm", config.DefaultMarkdownGFM(), "Enable GitHub Flavored Markdown")
	rootCmd.PersistentFlags().String("wrapper-class", config.DefaultFigureWrapperClass(), "Class of the element wrapping a figure group")
}

// bindFlags binds the configuration keys to the flags overriding them.
func bindFlags() error {
	bindings := []struct {
		cmd        *cobra.Command
		persistent bool
		flags      map[string]string
	}{
		{rootCmd, true, map[string]string{
			config.KeyDirectory:          "directory",
			config.KeyMarkdownGFM:        "gfm",
			config.KeyFigureWrapperClass: "wrapper-class",
		}},
		{serveCmd, false, map[string]string{
			config.KeyServeAddress: "address",
			config.KeyServeLive:    "live",
			config.KeyServeLocale:  "locale",
		}},
	}

	for _, b := range bindings {
		flags := b.cmd.Flags()
		if b.persistent {
			flags = b.cmd.PersistentFlags()
		}

		for key, name := range b.flags {
			if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	return nil
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults()

	if err := bindFlags(); err != nil {
		klog.Fatal(err)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			klog.Fatal(err)
		}

		// Search config in home directory with name ".figcap" (without extension).
		if dir, err := os.Getwd(); err == nil {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".figcap")
	}

	viper.SetEnvPrefix("figcap")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		klog.V(2).Infof("Using config file: %s", viper.ConfigFileUsed())
	}
}

func figureOptions() []figure.Option {
	return []figure.Option{
		figure.WithWrapperClass(config.FigureWrapperClass()),
		figure.WithConfig(config.FigureSettings()),
	}
}

func newConverter() *document.Converter {
	return document.NewConverter(document.ConverterOptions{
		GFM:    config.MarkdownGFM(),
		Unsafe: config.MarkdownUnsafe(),
		Figure: figureOptions(),
	})
}
