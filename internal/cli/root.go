// Package cli implements the torosphere command line tool.
package cli

import (
	goflag "flag"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read by every subcommand.
const EnvPrefix = "TOROSPHERE"

// NewRoot returns the root command with all subcommands attached.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "torosphere",
		Short: "Torospherical pressure vessel head geometry",
		Long: `
torosphere validates the five parameters of a torospherical (flanged and dished)
head, derives its closed-form geometry and exports the revolved shell as
figures, images and STL meshes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addHeadFlags(root.PersistentFlags())
	// glog flags: -v, -logtostderr and friends.
	root.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	subcommands := []*SubCommand{
		newInfo(), newProfile(), newView(), newSTL(), newSolid(), newVersion(),
	}
	for _, sc := range subcommands {
		root.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		sc.Conf.BindPFlags(sc.Cmd.Flags())
		sc.Conf.BindPFlags(root.PersistentFlags())
		sc.Conf.AutomaticEnv()
		sc.Conf.SetEnvPrefix(sc.EnvPrefix)
	}
	return root
}

// Execute runs the command line tool with os.Args.
func Execute() error {
	// glog flags are set through cobra, mark the Go flag set as parsed.
	goflag.CommandLine.Parse(nil)
	return NewRoot().Execute()
}

func newSubCommand(cmd *cobra.Command) *SubCommand {
	return &SubCommand{Cmd: cmd, EnvPrefix: EnvPrefix}
}

// config reads the configuration file when one was given and resolves
// the head configuration.
func (s *SubCommand) config() (Config, error) {
	if cfg := s.Conf.GetString(keyConfig); cfg != "" {
		s.Conf.SetConfigFile(cfg)
		if err := s.Conf.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config %s", cfg)
		}
	}
	return configFrom(s.Conf)
}
