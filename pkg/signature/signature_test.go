package signature

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncmb/ncmb.go/pkg/constants"
)

const (
	testAppKey    = "6145f91061916580c742f806bab67649d10f45920246ff459404c46f00ff3e56"
	testClientKey = "1343d198b510a0315db1c03f3aa0e32418b7a743f8e4b47cbff670601345cf75"
	testBaseURL   = "https://mbaas.api.nifcloud.com/2013-09-01/classes/TestClass"
	testQuery     = "where=%7B%22testKey%22%3A%22testValue%22%7D"
)

var testTimestamp = time.Date(2013, 12, 2, 2, 44, 35, 452000000, time.UTC)

func TestSignature_goldenVectors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		url    string
		want   string
	}{
		{
			name:   "get with query",
			method: "GET",
			url:    testBaseURL + "?" + testQuery,
			want:   "AltGkQgXurEV7u0qMd+87ud7BKuueldoCjaMgVc9Bes=",
		},
		{
			name:   "get without query",
			method: "GET",
			url:    testBaseURL,
			want:   "c3RMZWtwsk/QlAZn0cq1jrg7SMquGXlPSYUxOqqsY6U=",
		},
		{
			name:   "post ignores query",
			method: "POST",
			url:    testBaseURL + "?" + testQuery,
			want:   "C9VyDhtcFDKrMidT0wVmMJ3fKYXBRcIm8y1XtNMnGvI=",
		},
		{
			name:   "lowercase method",
			method: "get",
			url:    testBaseURL + "?" + testQuery,
			want:   "AltGkQgXurEV7u0qMd+87ud7BKuueldoCjaMgVc9Bes=",
		},
	}

	c := New(testAppKey, testClientKey)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Signature(tt.method, tt.url, testTimestamp)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlaintext(t *testing.T) {
	c := New(testAppKey, testClientKey)

	got, err := c.Plaintext("GET", testBaseURL+"?"+testQuery, testTimestamp)
	require.NoError(t, err)
	assert.Equal(t, "GET\n"+
		"mbaas.api.nifcloud.com\n"+
		"/2013-09-01/classes/TestClass\n"+
		"SignatureMethod=HmacSHA256&SignatureVersion=2&"+
		"X-NCMB-Application-Key="+testAppKey+"&"+
		"X-NCMB-Timestamp=2013-12-02T02:44:35.452Z&"+
		testQuery, got)

	got, err = c.Plaintext("PUT", testBaseURL+"/obj1?"+testQuery, testTimestamp)
	require.NoError(t, err)
	assert.NotContains(t, got, "where=")
	assert.Contains(t, got, "\n/2013-09-01/classes/TestClass/obj1\n")
}

func TestPlaintext_hostWithoutPortAndDecodedPath(t *testing.T) {
	c := New(testAppKey, testClientKey)

	got, err := c.Plaintext("GET", "http://localhost:8080/2013-09-01/classes/My%20Class", testTimestamp)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "GET\nlocalhost\n/2013-09-01/classes/My Class\n"), got)

	withPort, err := c.Signature("GET", "https://mbaas.api.nifcloud.com:443/2013-09-01/classes/TestClass?"+testQuery, testTimestamp)
	require.NoError(t, err)
	assert.Equal(t, "AltGkQgXurEV7u0qMd+87ud7BKuueldoCjaMgVc9Bes=", withPort)
}

func TestPlaintext_sortsWholeStrings(t *testing.T) {
	c := New(testAppKey, testClientKey)

	// "Signature..." < "X-NCMB..." < "limit..." in byte order
	got, err := c.Plaintext("GET", testBaseURL+"?limit=1", testTimestamp)
	require.NoError(t, err)
	assert.Contains(t, got, "X-NCMB-Timestamp=2013-12-02T02:44:35.452Z&limit=1")

	got, err = c.Plaintext("GET", testBaseURL+"?Aa=1", testTimestamp)
	require.NoError(t, err)
	assert.Contains(t, got, "\nAa=1&SignatureMethod=HmacSHA256")
}

func TestSignature_timestampInUTC(t *testing.T) {
	c := New(testAppKey, testClientKey)
	tokyo := time.FixedZone("JST", 9*60*60)

	got, err := c.Signature("GET", testBaseURL+"?"+testQuery, testTimestamp.In(tokyo).Add(300*time.Microsecond))
	require.NoError(t, err)
	assert.Equal(t, "AltGkQgXurEV7u0qMd+87ud7BKuueldoCjaMgVc9Bes=", got)
}

func TestSignature_errors(t *testing.T) {
	tests := []struct {
		name      string
		appKey    string
		clientKey string
		url       string
		wantErr   error
	}{
		{"empty application key", "", testClientKey, testBaseURL, constants.ErrEmptyApplicationKey},
		{"empty client key", testAppKey, "", testBaseURL, constants.ErrEmptyClientKey},
		{"no host", testAppKey, testClientKey, "/2013-09-01/classes/TestClass", constants.ErrInvalidDomainURL},
		{"unparseable url", testAppKey, testClientKey, "http://[::1", constants.ErrInvalidDomainURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.appKey, tt.clientKey).Signature("GET", tt.url, testTimestamp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "2013-12-02T02:44:35.452Z", FormatTimestamp(testTimestamp))
	assert.Equal(t, "2013-12-02T02:44:35.000Z", FormatTimestamp(testTimestamp.Truncate(time.Second)))
}
