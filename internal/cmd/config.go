package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/aqbifzl/rscheck/internal/utils"
	"github.com/aqbifzl/rscheck/pkg/config"
	"github.com/aqbifzl/rscheck/pkg/report"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newConfigCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the rscheck config file",
	}
	cmd.AddCommand(newConfigInitCommand(root))
	cmd.AddCommand(newConfigPathCommand(root))
	return cmd
}

func newConfigInitCommand(root *rootOptions) *cobra.Command {
	var (
		force  bool
		minLen int
		maxLen int
		format string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Long: `Write a config file with default values to --config, or to the
platform config dir when --config is not given. An existing file is loaded
and kept unless --force is set. --min, --max and --format are saved into
the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := initConfigPath(root.configPath, force)
			if err != nil {
				return err
			}
			cfg, err := config.InitConfig(path)
			if err != nil {
				return err
			}

			var minPtr, maxPtr *int
			var formatPtr *string
			if cmd.Flags().Changed("min") {
				minPtr = &minLen
			}
			if cmd.Flags().Changed("max") {
				maxPtr = &maxLen
			}
			if cmd.Flags().Changed("format") {
				parsed, err := report.ParseFormat(format)
				if err != nil {
					return err
				}
				name := string(parsed)
				formatPtr = &name
			}
			if minPtr != nil || maxPtr != nil || formatPtr != nil {
				if err := cfg.Update(path, minPtr, maxPtr, formatPtr, nil); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), config.GetActiveConfigPath(path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.Flags().IntVar(&minLen, "min", 0, "Store this minimum word length")
	cmd.Flags().IntVar(&maxLen, "max", 0, "Store this maximum word length")
	cmd.Flags().StringVar(&format, "format", "", "Store this output format")
	return cmd
}

// initConfigPath returns where config init writes, rewriting the file with
// defaults first when force is set.
func initConfigPath(customPath string, force bool) (string, error) {
	if customPath == "" {
		if force {
			return config.RebuildConfigFile()
		}
		return config.GetDefaultConfigPath()
	}
	if force {
		if err := utils.EnsureDir(filepath.Dir(customPath)); err != nil {
			return "", err
		}
		if err := config.SaveConfig(config.DefaultConfig(), customPath); err != nil {
			return "", err
		}
		log.Debugf("Rebuilt config file at %s", customPath)
	}
	return customPath, nil
}

func newConfigPathCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the path of the config file in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, path, err := config.LoadConfigWithPriority(root.configPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), config.GetActiveConfigPath(path))
			return nil
		},
	}
}
