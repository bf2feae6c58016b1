package client

import (
	"fmt"

	"github.com/MKhiriev/pass-the-pages/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func (a *App) newRegisterCommand() *cobra.Command {
	var request models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account with a university e-mail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := a.password(request.Password)
			if err != nil {
				return err
			}
			request.Password = password

			response, err := a.adapter.Register(cmd.Context(), request)
			if err != nil {
				return err
			}
			if err = a.saveToken(); err != nil {
				return err
			}

			printTitle(a.out, response.Message)
			if response.User != nil {
				printUser(a.out, *response.User)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&request.Username, "username", "u", "", "display name")
	flags.StringVarP(&request.Email, "email", "e", "", "university e-mail")
	flags.StringVarP(&request.Password, "password", "p", "", "password, prompted when omitted")
	flags.StringVar(&request.FirstName, "first-name", "", "first name")
	flags.StringVar(&request.LastName, "last-name", "", "last name")
	requireFlags(cmd, "username", "email")

	return cmd
}

func (a *App) newLoginCommand() *cobra.Command {
	var (
		request   models.LoginRequest
		copyToken bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and save the bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := a.password(request.Password)
			if err != nil {
				return err
			}
			request.Password = password

			response, err := a.adapter.Login(cmd.Context(), request)
			if err != nil {
				return err
			}
			if err = a.saveToken(); err != nil {
				return err
			}

			printTitle(a.out, response.Message)

			if copyToken {
				if err = clipboard.WriteAll(response.Token); err != nil {
					a.logger.Warn().Err(err).Msg("failed to copy token to clipboard")
					printHint(a.out, "could not copy the token to the clipboard")
					return nil
				}
				printHint(a.out, "token copied to the clipboard")
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&request.Email, "email", "e", "", "university e-mail")
	flags.StringVarP(&request.Password, "password", "p", "", "password, prompted when omitted")
	flags.BoolVar(&copyToken, "copy-token", false, "copy the issued token to the clipboard")
	requireFlags(cmd, "email")

	return cmd
}

func (a *App) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.tokens.Clear(); err != nil {
				return err
			}
			printHint(a.out, "logged out")
			return nil
		},
	}
}

func (a *App) newProfileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			user, err := a.adapter.Profile(cmd.Context())
			if err != nil {
				return err
			}

			printUser(a.out, user)
			return nil
		},
	}
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			version, err := a.adapter.Version(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, version)
			return nil
		},
	}
}
