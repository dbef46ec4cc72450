package ncmb

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/ncmb/ncmb.go/pkg/connection"
	"github.com/ncmb/ncmb.go/pkg/constants"
	"github.com/ncmb/ncmb.go/pkg/fields"
	"github.com/ncmb/ncmb.go/pkg/logger"
	"github.com/ncmb/ncmb.go/pkg/query"
	"github.com/ncmb/ncmb.go/pkg/request"
	"github.com/ncmb/ncmb.go/pkg/response"
)

// UserClassName is the class of the objects returned by Login.
const UserClassName = "user"

// Client talks to one application. It is safe for concurrent use; the
// stores it returns are not.
type Client struct {
	builder *request.Builder
	con     connection.Connection
	logger  logger.Logger

	variables sync.Map
}

func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, constants.ErrEmptyApplicationKey
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop{}
	}

	return &Client{
		builder: request.NewBuilder(cfg.credentials()),
		con: connection.NewHTTPConnection(connection.NewConnectionParams{
			HTTPClient: cfg.HTTPClient,
			Timeout:    cfg.Timeout,
			Logger:     log,
		}),
		logger: log,
	}, nil
}

// SessionToken returns the token of the logged-in user, or "".
func (c *Client) SessionToken() string {
	if token, ok := c.variables.Load(constants.SessionTokenKey); ok {
		return token.(string)
	}
	return ""
}

// SetSessionToken sets the token sent with every request. An empty token
// clears it.
func (c *Client) SetSessionToken(token string) {
	if token == "" {
		c.variables.Delete(constants.SessionTokenKey)
		return
	}
	c.variables.Store(constants.SessionTokenKey, token)
}

// Send signs spec and executes it once.
func (c *Client) Send(ctx context.Context, spec request.Spec) (map[string]any, error) {
	req, err := c.builder.Build(ctx, spec, c.SessionToken())
	if err != nil {
		return nil, err
	}
	return c.con.Send(ctx, req)
}

// SendAsync is Send in the background. The channel yields exactly one
// result, including when the request cannot be built.
func (c *Client) SendAsync(ctx context.Context, spec request.Spec) <-chan connection.Result {
	req, err := c.builder.Build(ctx, spec, c.SessionToken())
	if err != nil {
		ch := make(chan connection.Result, 1)
		ch <- connection.Result{Err: err}
		close(ch)
		return ch
	}
	return c.con.SendAsync(ctx, req)
}

// FetchObject loads one object.
func (c *Client) FetchObject(ctx context.Context, className, objectID string) (*fields.Store, error) {
	spec, err := request.ObjectSpec(http.MethodGet, className, objectID, nil)
	if err != nil {
		return nil, err
	}
	body, err := c.Send(ctx, spec)
	if err != nil {
		return nil, err
	}
	return fields.FromResponse(className, body), nil
}

// SaveObject creates obj when it has no objectId and otherwise sends its
// changed fields. The response is merged into obj, which clears its dirty
// state. Saving an existing object without changes is a no-op.
func (c *Client) SaveObject(ctx context.Context, obj *fields.Store) error {
	method := http.MethodPost
	var body []byte
	var err error
	if obj.ObjectID() == "" {
		body, err = obj.ToCreateJSON()
	} else {
		if !obj.HasChanges() {
			return nil
		}
		method = http.MethodPut
		body, err = obj.ToPatchJSON()
	}
	if err != nil {
		return err
	}

	spec, err := request.ObjectSpec(method, obj.ClassName(), obj.ObjectID(), body)
	if err != nil {
		return err
	}
	resp, err := c.Send(ctx, spec)
	if err != nil {
		return err
	}
	obj.MergeResponse(resp)
	return nil
}

// DeleteObject deletes obj on the server.
func (c *Client) DeleteObject(ctx context.Context, obj *fields.Store) error {
	spec, err := request.ObjectSpec(http.MethodDelete, obj.ClassName(), obj.ObjectID(), nil)
	if err != nil {
		return err
	}
	_, err = c.Send(ctx, spec)
	return err
}

// FindObjects runs q and returns the matching objects.
func (c *Client) FindObjects(ctx context.Context, q *query.Query) ([]*fields.Store, error) {
	spec, err := request.SearchSpec(q)
	if err != nil {
		return nil, err
	}
	body, err := c.Send(ctx, spec)
	if err != nil {
		return nil, err
	}

	results := response.Results(body)
	objects := make([]*fields.Store, 0, len(results))
	for _, r := range results {
		objects = append(objects, fields.FromResponse(q.ClassName(), r))
	}
	return objects, nil
}

// CountObjects returns the number of objects matching q.
func (c *Client) CountObjects(ctx context.Context, q *query.Query) (int64, error) {
	spec, err := request.SearchSpec(q.CountQuery())
	if err != nil {
		return 0, err
	}
	body, err := c.Send(ctx, spec)
	if err != nil {
		return 0, err
	}

	n, ok := response.Count(body)
	if !ok {
		return 0, fmt.Errorf("%w: count missing", constants.ErrInvalidResponse)
	}
	return n, nil
}

// Login authenticates a user and keeps its session token for later
// requests.
func (c *Client) Login(ctx context.Context, userName, password string) (*fields.Store, error) {
	body, err := c.Send(ctx, request.Spec{
		Method:  http.MethodGet,
		APIType: constants.APITypeLogin,
		Queries: map[string]any{
			constants.QueryUserName: userName,
			constants.QueryPassword: password,
		},
	})
	if err != nil {
		return nil, err
	}

	token, _ := body[constants.FieldSessionToken].(string)
	if token == "" {
		return nil, fmt.Errorf("%w: no session token", constants.ErrInvalidResponse)
	}
	delete(body, constants.FieldSessionToken)
	c.SetSessionToken(token)
	c.logger.Debug("logged in", "user_name", userName)

	return fields.FromResponse(UserClassName, body), nil
}

// Logout invalidates the current session. The local token is dropped even
// when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.Send(ctx, request.Spec{
		Method:  http.MethodGet,
		APIType: constants.APITypeLogout,
	})
	c.SetSessionToken("")
	return err
}
