package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// RunExtension attempts to find and execute an external vreg-<subcommand> binary.
//
// The global flags are passed as VREG_* environment variables. It returns
// (true, exitCode) if an extension was found and executed, and (false, 0)
// otherwise.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "vreg-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Printf("external command %q not found in PATH: %v", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(),
		EnvData+"="+*dataFile,
		EnvJSONRecords+"="+*jsonRecords,
		EnvFormat+"="+*outputFormat,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error: executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
