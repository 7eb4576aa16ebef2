package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const loginAttempts = 3

// checkLogin matches the operator's credentials against the configured pair.
// This is a convenience gate for the interactive surface, not a security
// boundary: no token, no hashing, no session expiry.
func checkLogin(username, password string) bool {
	return username == viper.GetString("admin-user") &&
		password == viper.GetString("admin-pass")
}

// login prompts for credentials until they match or attempts run out.
func login(r *bufio.Reader, w io.Writer) bool {
	for i := 0; i < loginAttempts; i++ {
		fmt.Fprint(w, "username: ")
		user, err := r.ReadString('\n')
		if err != nil {
			return false
		}
		fmt.Fprint(w, "password: ")
		pass, err := r.ReadString('\n')
		if err != nil {
			return false
		}
		if checkLogin(strings.TrimSpace(user), strings.TrimSpace(pass)) {
			return true
		}
		fmt.Fprintln(w, "Invalid username or password")
	}
	return false
}

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode (requires login)",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			if !login(r, out) {
				return fmt.Errorf("login failed")
			}
			fmt.Fprintln(out, "logged in; type a command, or exit to quit")

			for {
				fmt.Fprint(out, "shopledger> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" || line == "logout" {
					return nil
				}
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
				rootCmd.SetArgs(nil)
			}
		},
	}
}
