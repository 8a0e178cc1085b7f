package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// SubCommand pairs a cobra command with the viper configuration its flags,
// environment and config file resolve into.
type SubCommand struct {
	Cmd  *cobra.Command
	Conf *viper.Viper

	EnvPrefix string
}

// GetStringP returns the string option name, falling back to def when it
// was set nowhere.
func (s SubCommand) GetStringP(name, def string) string {
	if ok := s.Conf.IsSet(name); ok {
		return s.Conf.GetString(name)
	}
	return def
}

// GetIntP returns the int option name, falling back to def when it was set
// nowhere.
func (s SubCommand) GetIntP(name string, def int) int {
	if ok := s.Conf.IsSet(name); ok {
		return s.Conf.GetInt(name)
	}
	return def
}
