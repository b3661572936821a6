package codespeed

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
	"github.com/sethgrid/pester"

	"github.com/shikhar413/openmc-performance/pkg/benchmark"
)

// UploadError is a non-2xx response from the publish endpoint; the artifact
// must not be moved when it occurs.
type UploadError struct {
	StatusCode int
	Body       string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload rejected with status %v: %v", e.StatusCode, e.Body)
}

// Client is the interface towards the result publish endpoint
//go:generate mockgen -package=codespeed -destination ./mock.go -source=client.go
type Client interface {
	UploadResults(ctx context.Context, records []benchmark.Record) (body string, err error)
}

// NewClient returns a client for the given base url, authenticating with
// the configured "user:password" credential string.
func NewClient(baseURL, authentication string) Client {
	return &client{
		baseURL:        baseURL,
		authentication: authentication,
	}
}

type client struct {
	baseURL        string
	authentication string
}

// UploadResults posts the records as a single json-encoded form field and
// returns the server's response body on a 2xx response.
func (c *client) UploadResults(ctx context.Context, records []benchmark.Record) (string, error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "UploadResults")
	defer span.Finish()

	uploadURL := c.baseURL
	if !strings.HasSuffix(uploadURL, "/") {
		uploadURL += "/"
	}
	uploadURL += "result/add/json/"

	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("json", string(data))

	log.Info().Msgf("Upload %v benchmarks to %v", len(records), uploadURL)

	httpClient := pester.NewExtendedClient(&http.Client{Transport: &nethttp.Transport{}})
	httpClient.MaxRetries = 3
	httpClient.Backoff = pester.ExponentialBackoff
	httpClient.KeepLog = true
	httpClient.Timeout = time.Second * 60

	request, err := http.NewRequest("POST", uploadURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	request = request.WithContext(opentracing.ContextWithSpan(request.Context(), span))
	request, ht := nethttp.TraceRequest(span.Tracer(), request)
	defer ht.Finish()

	credentials := base64.StdEncoding.EncodeToString([]byte(c.authentication))
	request.Header.Add("Authorization", fmt.Sprintf("Basic %v", credentials))
	request.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	response, err := httpClient.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	body, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return "", err
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return "", &UploadError{StatusCode: response.StatusCode, Body: string(body)}
	}

	return string(body), nil
}
