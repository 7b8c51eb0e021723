package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kazuma-desu/lf/pkg/config"
	"github.com/kazuma-desu/lf/pkg/models"
)

const errFailedToLoadConfiguration = "failed to load configuration: %w"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage lf configuration",
	Long:  `Manage profiles and settings.`,
}

var getProfilesCmd = &cobra.Command{
	Use:   "get-profiles",
	Short: "List all available profiles",
	RunE:  runGetProfiles,
}

var currentProfileCmd = &cobra.Command{
	Use:   "current-profile",
	Short: "Display current active profile",
	RunE:  runCurrentProfile,
}

var useProfileCmd = &cobra.Command{
	Use:   "use-profile <profile-name>",
	Short: "Switch to a different profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runUseProfile,
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete-profile <profile-name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteProfile,
}

var viewConfigCmd = &cobra.Command{
	Use:   "view",
	Short: "View current configuration",
	RunE:  runViewConfig,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(getProfilesCmd, currentProfileCmd, useProfileCmd,
		deleteProfileCmd, viewConfigCmd, configPathCmd)
}

func runGetProfiles(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf(errFailedToLoadConfiguration, err)
	}

	out := newOutputContext()
	rows := make([]models.Record, 0, len(cfg.Profiles))
	for name, profile := range cfg.Profiles {
		rows = append(rows, models.Record{
			"name":    name,
			"host":    profile.Host,
			"current": name == cfg.CurrentProfile,
		})
	}
	return out.RenderTable(rows, []string{"name", "host", "current"})
}

func runCurrentProfile(_ *cobra.Command, _ []string) error {
	profile, name, err := config.GetCurrentProfile()
	if err != nil {
		return fmt.Errorf(errFailedToLoadConfiguration, err)
	}
	if profile == nil {
		return fmt.Errorf("no current profile set - run 'lf login' or 'lf config use-profile <name>'")
	}

	out := newOutputContext()
	return out.RenderDetail(models.Record{"name": name, "host": profile.Host}, []models.Field{
		{Label: "Profile", Path: "name"},
		{Label: "Host", Path: "host"},
	})
}

func runUseProfile(_ *cobra.Command, args []string) error {
	if err := config.UseProfile(args[0]); err != nil {
		return err
	}
	newOutputContext().Success(fmt.Sprintf("Switched to profile %q.", args[0]))
	return nil
}

func runDeleteProfile(_ *cobra.Command, args []string) error {
	if err := config.DeleteProfile(args[0]); err != nil {
		return err
	}
	config.DeleteKeyringSecret(args[0] + "/secret-key")
	newOutputContext().Success(fmt.Sprintf("Profile %q deleted.", args[0]))
	return nil
}

func runViewConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf(errFailedToLoadConfiguration, err)
	}

	// Never echo stored secrets.
	for _, profile := range cfg.Profiles {
		if profile.SecretKey != "" {
			profile.SecretKey = "********"
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	cmd.Print(string(data))
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	cmd.Println(path)
	return nil
}
