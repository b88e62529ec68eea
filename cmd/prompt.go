package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// stdinIsTerminal is a test seam for term.IsTerminal on stdin.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var errPasswordMismatch = errors.New("passwords do not match")

// promptPassword reads a password without echo. flagName is named in the
// error when no terminal is available.
func promptPassword(cmd *cobra.Command, prompt string, flagName string) (string, error) {
	if !stdinIsTerminal() {
		return "", fmt.Errorf("--%s is required when stdin is not a terminal", flagName)
	}

	w := cmd.ErrOrStderr()
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	password, err := readPassword(int(os.Stdin.Fd()))
	_, _ = fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	value := strings.TrimRight(string(password), "\r\n")
	if value == "" {
		return "", errors.New("password must not be empty")
	}
	return value, nil
}

// promptNewPassword asks twice and fails when the entries differ.
func promptNewPassword(cmd *cobra.Command, prompt string, flagName string) (string, error) {
	first, err := promptPassword(cmd, prompt, flagName)
	if err != nil {
		return "", err
	}
	second, err := promptPassword(cmd, "Confirm password: ", flagName)
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errPasswordMismatch
	}

	return first, nil
}
