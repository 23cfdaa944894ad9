package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ArrangeConfig holds the options of the arrange command. Every field can be
// set from a flag, the .jarrange.yaml file or a JARRANGE_ environment
// variable, in that order of precedence.
type ArrangeConfig struct {
	Write          bool     `yaml:"write"`
	Verbose        bool     `yaml:"verbose"`
	Diff           bool     `yaml:"diff"`
	Check          bool     `yaml:"check"`
	Jobs           int      `yaml:"jobs"`
	LineEnding     string   `yaml:"line-ending"`
	KeepBlankLines bool     `yaml:"keep-blank-lines"`
	Skip           bool     `yaml:"skip"`
	SourceDirs     []string `yaml:"source-dirs"`
}

func initializeViper(c *cobra.Command) error {
	v := viper.New()
	v.SetConfigName(".jarrange")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	v.SetEnvPrefix("JARRANGE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return bindFlags(c, v)
}

// bindFlags sets the flags that were not given on the command line from v.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var errs error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		name := f.Name
		if f.Changed || !v.IsSet(name) {
			return
		}
		// ensure that the value is with the correct type
		var err error
		switch f.Value.Type() {
		case "stringSlice":
			err = f.Value.Set(strings.Join(v.GetStringSlice(name), ","))
		default:
			err = cmd.Flags().Set(name, fmt.Sprintf("%v", v.GetString(name)))
		}
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("invalid value for %q: %w", name, err))
		}
	})
	return errs
}

func printConfigFile(config *ArrangeConfig, output ...io.Writer) error {
	var out io.Writer = os.Stdout
	if len(output) > 0 {
		out = output[0]
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(config); err != nil {
		return err
	}
	return enc.Close()
}
