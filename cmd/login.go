package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kazuma-desu/lf/pkg/api"
	"github.com/kazuma-desu/lf/pkg/config"
)

var loginCmd = &cobra.Command{
	Use:   "login [profile-name]",
	Short: "Save Langfuse connection configuration",
	Long: `Save a Langfuse host and API key pair for convenient reuse.

Profiles let you keep multiple projects (e.g. dev, staging, production) and
switch between them with 'lf config use-profile'.

Examples:
  # Interactive login into the default profile
  lf login

  # Non-interactive login into a named profile
  lf login prod --host https://cloud.langfuse.com \
      --public-key pk-lf-... --secret-key sk-lf-...

Security Note:
  The secret key is stored in the system keyring when one is available.
  With --no-keyring (or when no keyring exists) it is written to
  ~/.config/lf/config.yaml with 0600 permissions instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

var loginOpts struct {
	host      string
	publicKey string
	secretKey string
	noKeyring bool
	noTest    bool
}

func init() {
	rootCmd.AddCommand(loginCmd)

	f := loginCmd.Flags()
	f.StringVar(&loginOpts.host, "host", "", "Langfuse host URL")
	f.StringVar(&loginOpts.publicKey, "public-key", "", "Langfuse public key (pk-lf-...)")
	f.StringVar(&loginOpts.secretKey, "secret-key", "", "Langfuse secret key (sk-lf-...)")
	f.BoolVar(&loginOpts.noKeyring, "no-keyring", false, "store the secret key in the config file instead of the keyring")
	f.BoolVar(&loginOpts.noTest, "no-test", false, "skip the connection test")
}

func runLogin(_ *cobra.Command, args []string) error {
	profileName := "default"
	if len(args) == 1 {
		profileName = args[0]
	}

	host := loginOpts.host
	publicKey := loginOpts.publicKey
	secretKey := loginOpts.secretKey

	if publicKey == "" || secretKey == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Langfuse host").
				Placeholder(config.DefaultHost).
				Value(&host),
			huh.NewInput().
				Title("Public key").
				Value(&publicKey),
			huh.NewInput().
				Title("Secret key").
				EchoMode(huh.EchoModePassword).
				Value(&secretKey),
		))
		if err := form.Run(); err != nil {
			return fmt.Errorf("login cancelled: %w", err)
		}
	}
	if host == "" {
		host = config.DefaultHost
	}
	if publicKey == "" || secretKey == "" {
		return fmt.Errorf("both a public key and a secret key are required")
	}

	out := newOutputContext()

	if !loginOpts.noTest {
		ctx, cancel := getOperationContext()
		defer cancel()

		client := api.NewClient(api.Config{Host: host, PublicKey: publicKey, SecretKey: secretKey})
		err := withSpinner(out, "Testing connection...", func() error {
			return client.CheckAccess(ctx)
		})
		if err != nil {
			return fmt.Errorf("connection test failed: %w", err)
		}
	}

	profile := &config.Profile{Host: host, PublicKey: publicKey}
	if loginOpts.noKeyring {
		profile.SecretKey = secretKey
	} else if err := config.SetKeyringSecret(profileName+"/secret-key", secretKey); err != nil {
		log.Warn("Keyring unavailable; storing secret key in config file", "error", err)
		profile.SecretKey = secretKey
	}

	if err := config.SetProfile(profileName, profile, true); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	out.Success(fmt.Sprintf("Profile %q saved and set as current.", profileName))
	return nil
}
