package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// ExtensionPrefix prefixes the name of external fin-<subcommand> binaries.
const ExtensionPrefix = "fin-"

// RunExtension attempts to find and execute an external fin-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// Global flags are passed to the extension as their environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := ExtensionPrefix + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the global flags as environment variables. Unset flags
// are left out so that the caller's environment still applies.
func extensionEnv() []string {
	env := []string{EnvVerbose + "=" + strconv.FormatBool(verbose())}
	for _, kv := range []struct{ key, value string }{
		{EnvConfig, *configFile},
		{EnvDB, *dbFile},
		{EnvEmail, *email},
		{EnvPassword, *password},
	} {
		if kv.value != "" {
			env = append(env, kv.key+"="+kv.value)
		}
	}
	return env
}
