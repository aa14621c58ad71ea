package resource

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/lerenn/kws/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=client.go -destination=mocks/client.gen.go -package=mocks

// RequestIDHeader carries a unique id for each request sent to the API server.
const RequestIDHeader = "X-Request-Id"

// Client talks to the API server about resources.
type Client interface {
	// Delete deletes the resource selected by opts. It issues exactly one request.
	Delete(ctx context.Context, opts DeleteOptions) error
	// List returns the sorted names of all resources of the model.
	List(ctx context.Context, model Model) ([]string, error)
}

// NewClientParams contains parameters for creating a new Client.
type NewClientParams struct {
	Server                string
	Token                 string
	InsecureSkipTLSVerify bool
	Timeout               time.Duration
	Logger                logger.Logger
}

type realClient struct {
	http   *resty.Client
	logger logger.Logger
}

// objectList is the subset of a Kubernetes list response that is needed.
type objectList struct {
	Items []struct {
		Metadata struct {
			Name string `json:"name"`
		} `json:"metadata"`
	} `json:"items"`
}

// NewClient creates a new Client for the given server.
func NewClient(params NewClientParams) (Client, error) {
	server, err := validateServer(params.Server)
	if err != nil {
		return nil, err
	}

	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}

	httpClient := resty.New().
		SetBaseURL(server).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	if params.Token != "" {
		httpClient.SetAuthToken(params.Token)
	}
	if params.Timeout > 0 {
		httpClient.SetTimeout(params.Timeout)
	}
	if params.InsecureSkipTLSVerify {
		httpClient.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // opt-in from config
	}

	return &realClient{http: httpClient, logger: l}, nil
}

// validateServer checks the server URL and strips its trailing slash.
func validateServer(server string) (string, error) {
	if server == "" {
		return "", ErrServerRequired
	}

	parsed, err := url.Parse(server)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidServer, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidServer, parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%w: missing host in %q", ErrInvalidServer, server)
	}

	return strings.TrimRight(server, "/"), nil
}

// Delete deletes the resource selected by opts.
func (c *realClient) Delete(ctx context.Context, opts DeleteOptions) error {
	if opts.QueryOptions.Name == "" && strings.Trim(opts.QueryOptions.Path, "/") == "" {
		return ErrEmptyName
	}
	if err := opts.QueryOptions.Validate(); err != nil {
		return err
	}

	requestID := uuid.NewString()
	target := opts.Model.URLPath(opts.QueryOptions)
	c.logger.Debug("sending delete request", "path", target, "request_id", requestID)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID).
		SetError(&StatusError{}).
		Delete(target)
	if err != nil {
		return fmt.Errorf("%w: DELETE %s: %w", ErrRequestFailed, target, err)
	}

	if resp.IsError() {
		statusErr := toStatusError(resp)
		c.logger.Debug("delete request rejected",
			"path", target, "request_id", requestID, "status", statusErr.Code)
		return statusErr
	}

	c.logger.Debug("delete request accepted", "path", target, "request_id", requestID, "status", resp.StatusCode())
	return nil
}

// List returns the sorted names of all resources of the model.
func (c *realClient) List(ctx context.Context, model Model) ([]string, error) {
	target := model.URLPath(QueryOptions{})

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, uuid.NewString()).
		SetResult(&objectList{}).
		SetError(&StatusError{}).
		Get(target)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrRequestFailed, target, err)
	}
	if resp.IsError() {
		return nil, toStatusError(resp)
	}

	list, ok := resp.Result().(*objectList)
	if !ok || list == nil {
		return nil, fmt.Errorf("%w: unexpected list response from %s", ErrRequestFailed, target)
	}

	names := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		names = append(names, item.Metadata.Name)
	}
	sort.Strings(names)

	return names, nil
}

// toStatusError builds a StatusError from an error response, falling back to
// the raw body when the server did not answer with a Status object.
func toStatusError(resp *resty.Response) *StatusError {
	statusErr, ok := resp.Error().(*StatusError)
	if !ok || statusErr == nil {
		statusErr = &StatusError{}
	}
	if statusErr.Code == 0 {
		statusErr.Code = resp.StatusCode()
	}
	if statusErr.Message == "" {
		statusErr.Message = strings.TrimSpace(resp.String())
	}
	return statusErr
}

// DeleteFunc binds client and model into a function deleting resources by name.
func DeleteFunc(client Client, model Model) func(ctx context.Context, name string) error {
	return func(ctx context.Context, name string) error {
		if name == "" {
			return ErrEmptyName
		}
		// name addresses a single resource, never a sub path
		if err := validateSegment(name); err != nil {
			return err
		}
		return client.Delete(ctx, DeleteOptions{
			Model:        model,
			QueryOptions: QueryOptions{Path: name},
		})
	}
}
