package cmd

import (
	"fmt"

	"srcstruct/pkg/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd builds the srcstruct command tree. Each call gets its own
// viper instance so commands can be executed independently.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "srcstruct [ROOT...]",
		Short: "srcstruct writes the files of directory trees into one text file",
		Long: `srcstruct walks each root directory and writes every file's absolute path
and content into a single plain-text snapshot, e.g. for pasting a project's
source into another tool. Roots that do not exist and files that cannot be
read are noted inline and do not stop the export.

Without arguments the roots "src" and "prisma" under the base directory are
exported to "src_structure.txt" in the base directory.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, v, cfgFile, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./srcstruct.* or $HOME/.config/srcstruct/srcstruct.*)")
	rootCmd.Flags().StringP(config.KeyBase, "b", config.DefaultBase, "base directory that relative roots and output are resolved against")
	rootCmd.Flags().StringP(config.KeyOutput, "o", config.DefaultOutput, "destination file")
	rootCmd.Flags().Bool(config.KeyDebug, false, "enable debug logging")
	for _, key := range []string{config.KeyBase, config.KeyOutput, config.KeyDebug} {
		if err := v.BindPFlag(key, rootCmd.Flags().Lookup(key)); err != nil {
			panic(fmt.Sprintf("binding flag %q: %v", key, err))
		}
	}

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}
