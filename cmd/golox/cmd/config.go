package cmd

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// config holds the optional settings read from a .golox.yaml file in
// the current directory. Its absence is not an error; every field
// simply keeps its zero value (trace off).
type config struct {
	Trace bool `yaml:"trace"`
}

// loadConfig reads .golox.yaml from the working directory, if
// present, and applies it to the persistent flags that haven't
// already been set explicitly on the command line.
func loadConfig() {
	data, err := os.ReadFile(".golox.yaml")
	if err != nil {
		return
	}
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Debugf("ignoring .golox.yaml: %v", err)
		return
	}
	if cfg.Trace && !rootCmd.PersistentFlags().Changed("trace") {
		trace = true
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
}
