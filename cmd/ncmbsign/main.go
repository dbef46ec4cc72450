// ncmbsign prints the X-NCMB-Signature of a request, which helps when
// calling the REST API from curl or debugging a rejected signature.
//
//	ncmbsign --method GET \
//	  --url 'https://mbaas.api.nifcloud.com/2013-09-01/classes/TestClass?where=%7B%7D' \
//	  --timestamp 2013-12-02T02:44:35.452Z
//
// The keys default to NCMB_APPLICATION_KEY and NCMB_CLIENT_KEY.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	ncmb "github.com/ncmb/ncmb.go"
	"github.com/ncmb/ncmb.go/pkg/constants"
	"github.com/ncmb/ncmb.go/pkg/models"
	"github.com/ncmb/ncmb.go/pkg/signature"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, time.Now); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, now func() time.Time) error {
	var method, rawURL, timestamp, appKey, clientKey string
	var verbose bool

	flagSet := pflag.NewFlagSet("ncmbsign", pflag.ContinueOnError)
	flagSet.SetOutput(out)
	flagSet.StringVarP(&method, "method", "X", "GET", "HTTP method")
	flagSet.StringVarP(&rawURL, "url", "u", "", "full request URL including the encoded query")
	flagSet.StringVarP(&timestamp, "timestamp", "t", "", "request time as 2006-01-02T15:04:05.000Z (default: now)")
	flagSet.StringVar(&appKey, "app-key", ncmb.GetEnvOrDefault(constants.EnvApplicationKey, ""), "application key")
	flagSet.StringVar(&clientKey, "client-key", ncmb.GetEnvOrDefault(constants.EnvClientKey, ""), "client key")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "also print the signed plaintext and headers")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if rawURL == "" {
		return fmt.Errorf("--url is required")
	}

	ts := now()
	if timestamp != "" {
		d, err := models.ParseDate(timestamp)
		if err != nil {
			return err
		}
		ts = d.Time
	}

	calc := signature.New(appKey, clientKey)
	sig, err := calc.Signature(method, rawURL, ts)
	if err != nil {
		return err
	}

	if !verbose {
		fmt.Fprintln(out, sig)
		return nil
	}

	plaintext, err := calc.Plaintext(method, rawURL, ts)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "--- plaintext ---\n%s\n--- headers ---\n", plaintext)
	fmt.Fprintf(out, "%s: %s\n", constants.HeaderApplicationKey, appKey)
	fmt.Fprintf(out, "%s: %s\n", constants.HeaderTimestamp, signature.FormatTimestamp(ts))
	fmt.Fprintf(out, "%s: %s\n", constants.HeaderSignature, sig)
	return nil
}
