package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/session"
	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/upload"
)

var (
	serverURL string
	username  string
	password  string
)

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the reporting server and store the session",
		Args:  cobra.NoArgs,
		RunE:  runLogin,
	}

	cmd.Flags().StringVar(&serverURL, "server", "", "Server URL (default from config)")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username or phone number")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (or DAILYREPORT_LOGIN_PASSWORD)")
	return cmd
}

func runLogin(cmd *cobra.Command, _ []string) error {
	server := firstNonEmpty(serverURL, cfg.Server.URL)
	user := firstNonEmpty(username, cfg.Login.Username)
	pass := firstNonEmpty(password, cfg.Login.Password)
	if user == "" || pass == "" {
		return errors.New("username and password are required")
	}

	store, err := sessionStore()
	if err != nil {
		return err
	}

	sess, err := upload.NewClient(cfg.Login.Timeout).Login(cmd.Context(), server, user, pass)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if err := store.Save(sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s as %s\n", sess.ServerURL, sess.Username)
	return nil
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := sessionStore()
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
			zerolog.Ctx(cmd.Context()).Info().Str("path", store.Path).Msg("session cleared")
			return nil
		},
	}
}

// loadSession returns the stored session, or ErrNotLoggedIn when it is
// missing or expired.
func loadSession() (*session.Session, error) {
	store, err := sessionStore()
	if err != nil {
		return nil, err
	}
	sess, err := store.Load()
	if errors.Is(err, session.ErrNoSession) {
		return nil, upload.ErrNotLoggedIn
	}
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
