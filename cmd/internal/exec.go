package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/segmentio/aws-cognito/cmd/internal/analytics"
)

var execFlags loginOpts

// execCmd represents the exec command
var execCmd = &cobra.Command{
	Use:   "exec <profile> -- <command>",
	Short: "exec will run the command specified with aws credentials set in the environment",
	RunE:  execRun,
}

func init() {
	RootCmd.AddCommand(execCmd)
	addLoginFlags(execCmd, &execFlags)
}

const AnalyticsCommandNameExec = "exec"

// ErrCommandExit carries the exit status of the command run by exec.
type ErrCommandExit struct {
	Status int
}

func (e *ErrCommandExit) Error() string {
	return fmt.Sprintf("command exited with status %d", e.Status)
}

func (e *ErrCommandExit) ExitCode() int {
	return e.Status
}

func execRun(cmd *cobra.Command, args []string) error {
	dashIx := cmd.ArgsLenAtDash()
	if dashIx == -1 || dashIx == len(args) {
		return fmt.Errorf("missing command")
	}

	args, commandPart := args[:dashIx], args[dashIx:]
	if len(args) != 1 {
		return &ErrBadArgCount{
			Actual:   len(args),
			Expected: 1,
		}
	}
	profileName := args[0]
	Analytics.TrackRanCommand(AnalyticsCommandNameExec, [2]string{analytics.PropertyProfileName, profileName})

	env := kvEnv{}
	env.LoadFromEnviron(os.Environ()...)
	if err := loginEnv(cmd, profileName, execFlags, env); err != nil {
		return err
	}

	command := commandPart[0]

	var commandArgs []string
	if len(commandPart) > 1 {
		commandArgs = commandPart[1:]
	}
	ecmd := exec.Command(command, commandArgs...)
	ecmd.Stdin = os.Stdin
	ecmd.Stdout = os.Stdout
	ecmd.Stderr = os.Stderr
	ecmd.Env = env.Environ()

	// Forward SIGINT, SIGTERM to the child command
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, os.Interrupt)
	defer signal.Stop(sigChan)

	go func() {
		sig, ok := <-sigChan
		if ok && ecmd.Process != nil {
			ecmd.Process.Signal(sig)
		}
	}()

	if err := ecmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return &ErrCommandExit{Status: exitError.ExitCode()}
		}
		return err
	}
	return nil
}

// loginEnv logs in and adds the credentials and profile info to env.
func loginEnv(cmd *cobra.Command, profileName string, opts loginOpts, env kvEnv) error {
	res, err := loginProfile(cmd.Context(), profileName, opts)
	if err != nil {
		return err
	}
	creds, _ := res.Outcome.Credentials()
	region := res.Config.Region
	if region == "" {
		region = res.Config.IdentityRegion()
	}
	env.AddCreds(creds)
	env.AddInfo(infoEnvs{
		ProfileName: profileName,
		Region:      region,
		IdentityID:  creds.IdentityID,
		RoleARN:     creds.RoleARN,
		ExpiresAt:   creds.ExpiresAt,
	})
	return nil
}
