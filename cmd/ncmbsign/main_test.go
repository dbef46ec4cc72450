package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncmb/ncmb.go/pkg/constants"
)

const (
	testAppKey    = "6145f91061916580c742f806bab67649d10f45920246ff459404c46f00ff3e56"
	testClientKey = "1343d198b510a0315db1c03f3aa0e32418b7a743f8e4b47cbff670601345cf75"
	testURL       = "https://mbaas.api.nifcloud.com/2013-09-01/classes/TestClass?where=%7B%22testKey%22%3A%22testValue%22%7D"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{
		"--url", testURL,
		"--timestamp", "2013-12-02T02:44:35.452Z",
		"--app-key", testAppKey,
		"--client-key", testClientKey,
	}, &out, time.Now)
	require.NoError(t, err)
	assert.Equal(t, "AltGkQgXurEV7u0qMd+87ud7BKuueldoCjaMgVc9Bes=\n", out.String())
}

func TestRun_envKeysAndClock(t *testing.T) {
	t.Setenv(constants.EnvApplicationKey, testAppKey)
	t.Setenv(constants.EnvClientKey, testClientKey)
	clock := func() time.Time { return time.Date(2013, 12, 2, 2, 44, 35, 452000000, time.UTC) }

	var out bytes.Buffer
	require.NoError(t, run([]string{"-X", "POST", "-u", testURL, "-v"}, &out, clock))

	assert.Contains(t, out.String(), "POST\nmbaas.api.nifcloud.com\n/2013-09-01/classes/TestClass\n")
	assert.Contains(t, out.String(), "X-NCMB-Signature: C9VyDhtcFDKrMidT0wVmMJ3fKYXBRcIm8y1XtNMnGvI=\n")
}

func TestRun_errors(t *testing.T) {
	t.Setenv(constants.EnvClientKey, "")

	var out bytes.Buffer
	assert.ErrorContains(t, run([]string{"--app-key", "a", "--client-key", "c"}, &out, time.Now), "--url")
	assert.ErrorIs(t, run([]string{"-u", testURL, "--app-key", "a"}, &out, time.Now), constants.ErrEmptyClientKey)
	assert.Error(t, run([]string{"-u", testURL, "--app-key", "a", "--client-key", "c", "-t", "yesterday"}, &out, time.Now))
}
