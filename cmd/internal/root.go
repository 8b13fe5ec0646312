package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/99designs/keyring"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/segmentio/aws-cognito/cmd/internal/analytics"
	"github.com/segmentio/aws-cognito/cmd/internal/configload"
	"github.com/segmentio/aws-cognito/cmd/internal/logging"
	"github.com/segmentio/aws-cognito/lib/metrics"
	"github.com/segmentio/aws-cognito/lib/transport"
)

var (
	FlagKeyringBackend  string
	FlagDebug           bool
	FlagLogFile         string
	FlagMetricsTextfile string
)

var (
	Analytics analytics.Client
	Metrics   = metrics.NewRecorder()
	Version   string
)

var RootCmd = &cobra.Command{
	Use:               "aws-cognito",
	Short:             "aws-cognito allows you to authenticate with AWS using your Cognito user pool login",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prerun,
	PersistentPostRun: postrun,
}

type ErrBadArgCount struct {
	Actual   int
	Expected int
}

func (e *ErrBadArgCount) Error() string {
	return fmt.Sprintf("wrong number of arguments; expected %d, got %d", e.Expected, e.Actual)
}

// exitCoder errors set the process exit status.
type exitCoder interface {
	ExitCode() int
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(version string, writeKey string) {
	Version = version
	transport.Version = version
	if writeKey != "" {
		Analytics = analytics.New(writeKey)
		Analytics.UserId = os.Getenv("USER")
		Analytics.Version = Version
	}
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		var badArgs *ErrBadArgCount
		if errors.As(err, &badArgs) {
			RootCmd.Usage()
		}
		code := 1
		var ec exitCoder
		if errors.As(err, &ec) {
			code = ec.ExitCode()
		}
		// postrun does not run after an error
		writeMetrics()
		Analytics.Close()
		logging.Close()
		os.Exit(code)
	}
}

func prerun(cmd *cobra.Command, args []string) error {
	if err := configload.LoadDotEnv(); err != nil {
		return err
	}

	// Load backend from env var if not set as a flag
	if !cmd.Flags().Lookup("backend").Changed {
		backendFromEnv, ok := os.LookupEnv("AWS_COGNITO_BACKEND")
		if ok {
			FlagKeyringBackend = backendFromEnv
		}
	}
	if !cmd.Flags().Lookup("debug").Changed {
		if v, ok := os.LookupEnv("AWS_COGNITO_DEBUG"); ok {
			FlagDebug, _ = strconv.ParseBool(v)
		}
	}

	if err := logging.Configure(logging.Opts{
		Debug: FlagDebug,
		File:  FlagLogFile,
	}); err != nil {
		return err
	}

	Analytics.KeyringBackend = FlagKeyringBackend
	Analytics.Identify()
	return nil
}

func postrun(cmd *cobra.Command, args []string) {
	writeMetrics()
	Analytics.Close()
	logging.Close()
}

func writeMetrics() {
	if FlagMetricsTextfile == "" {
		return
	}
	if err := Metrics.WriteTextfile(FlagMetricsTextfile); err != nil {
		log.Warnf("failed to write metrics: %s", err)
	}
}

func init() {
	backendsAvailable := []string{}
	for _, backendType := range keyring.AvailableBackends() {
		backendsAvailable = append(backendsAvailable, string(backendType))
	}

	RootCmd.PersistentFlags().StringVarP(&FlagKeyringBackend, "backend", "b", "", fmt.Sprintf("Secret backend to use %s", backendsAvailable))
	RootCmd.PersistentFlags().BoolVarP(&FlagDebug, "debug", "d", false, "Enable debug logging")
	RootCmd.PersistentFlags().StringVarP(&FlagLogFile, "log-file", "", "", "Write logs to this file (rotated) instead of stderr")
	RootCmd.PersistentFlags().StringVarP(&FlagMetricsTextfile, "metrics-textfile", "", "", "Write login metrics in prometheus text format to this file")
}
