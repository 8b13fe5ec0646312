// builds the network transport the Cognito clients send requests with
package transport

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"runtime"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/pkg/errors"
	"golang.org/x/net/publicsuffix"
)

const (
	Timeout = time.Duration(60 * time.Second)

	appName = "aws-cognito"
)

// Version is reported in the user agent; set by the CLI.
var Version = "dev"

type Options struct {
	// user supplied http client. If passed in this will replace the default
	HTTPClient *http.Client
	// http client timeout. default 60s
	HTTPClientTimeout *time.Duration
}

// NewHTTPClient returns opts.HTTPClient if set, otherwise a client that
// honours proxy environment variables and keeps cookies per public suffix.
func NewHTTPClient(opts *Options) (*http.Client, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.HTTPClient != nil {
		return opts.HTTPClient, nil
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	timeout := Timeout
	if opts.HTTPClientTimeout != nil {
		timeout = *opts.HTTPClientTimeout
	}

	transCfg := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		TLSHandshakeTimeout: timeout,
	}

	return &http.Client{
		Transport: transCfg,
		Timeout:   timeout,
		Jar:       jar,
	}, nil
}

// NewAWSSession returns an anonymous session for region that sends through
// client and never retries.
func NewAWSSession(region string, client *http.Client) (*session.Session, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		HTTPClient:  client,
		Credentials: credentials.AnonymousCredentials,
		MaxRetries:  aws.Int(0),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "creating aws session for %s", region)
	}
	sess.Handlers.Build.PushBack(request.MakeAddToUserAgentHandler(appName, Version))
	return sess, nil
}

// UserAgent is the user agent the session's clients send.
func UserAgent() string {
	return fmt.Sprintf("%s/%s (%s; %s; %s) %s/%s",
		aws.SDKName, aws.SDKVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH, appName, Version)
}
