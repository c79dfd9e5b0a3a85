package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grafana/grafana-sub060/internal/cli"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and change the TOML configuration file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file in use",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show every setting with its effective value",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Long:  `Print the effective value of a dotted key such as logging.level.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Validate and write a new value for a dotted key. Invalid values leave the
file unchanged.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	fmt.Println(a.ConfigManager.GetConfigFile())
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if a.JSONOutput() {
		return cli.WriteJSON(os.Stdout, a.Config)
	}
	keys := a.ConfigManager.Keys()
	values := make(map[string]string, len(keys))
	for _, k := range keys {
		v, _ := a.ConfigManager.Value(k)
		values[k] = fmt.Sprint(v)
	}
	fmt.Println(a.Theme.Info("%s", a.ConfigManager.GetConfigFile()))
	fmt.Println(a.Theme.KeyValues(keys, values))
	return nil
}

func runConfigGet(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	v, ok := a.ConfigManager.Value(args[0])
	if !ok {
		return fmt.Errorf("unknown config key %q", args[0])
	}
	fmt.Println(v)
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := a.ConfigManager.Set(args[0], args[1]); err != nil {
		return err
	}
	fmt.Println(a.Theme.Success("%s = %s", args[0], args[1]))
	return nil
}
