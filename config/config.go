package config

import "github.com/spf13/viper"

var (
	KeyDirectory          = "directory"
	KeyMarkdownGFM        = "markdown.gfm"
	KeyMarkdownUnsafe     = "markdown.unsafe"
	KeyFigureWrapperClass = "figure.wrapper_class"
	KeyServeAddress       = "serve.address"
	KeyServeLive          = "serve.live"
	KeyServeLocale        = "serve.locale"
)

// SetDefaults registers the default values with viper.
func SetDefaults() {
	viper.SetDefault(KeyMarkdownGFM, DefaultMarkdownGFM())
	viper.SetDefault(KeyMarkdownUnsafe, DefaultMarkdownUnsafe())
	viper.SetDefault(KeyFigureWrapperClass, DefaultFigureWrapperClass())
	viper.SetDefault(KeyServeAddress, DefaultServeAddress())
	viper.SetDefault(KeyServeLive, DefaultServeLive())
	viper.SetDefault(KeyServeLocale, DefaultServeLocale())
}

func HasDirectory() bool {
	return viper.IsSet(KeyDirectory) && viper.GetString(KeyDirectory) != ""
}

func Directory() string {
	return viper.GetString(KeyDirectory)
}

func MarkdownGFM() bool {
	return viper.GetBool(KeyMarkdownGFM)
}

func MarkdownUnsafe() bool {
	return viper.GetBool(KeyMarkdownUnsafe)
}

func FigureWrapperClass() string {
	return viper.GetString(KeyFigureWrapperClass)
}

// FigureSettings returns the free-form settings below the figure key.
func FigureSettings() map[string]interface{} {
	return viper.GetStringMap("figure")
}

func ServeAddress() string {
	return viper.GetString(KeyServeAddress)
}

// ServeLive reports whether the preview server re-reads documents on each request.
func ServeLive() bool {
	return viper.GetBool(KeyServeLive)
}

// ServeLocale is the monday locale used for dates, e.g. "en_US" or "de_DE".
func ServeLocale() string {
	return viper.GetString(KeyServeLocale)
}

func DefaultMarkdownGFM() bool {
	return true
}

func DefaultMarkdownUnsafe() bool {
	return true
}

func DefaultFigureWrapperClass() string {
	return ""
}

func DefaultServeAddress() string {
	return ":8000"
}

func DefaultServeLive() bool {
	return true
}

func DefaultServeLocale() string {
	return "en_US"
}
