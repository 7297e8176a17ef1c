package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/logger"
)

// CallOption configures a single endpoint call.
type CallOption func(*httpclient.Request)

// WithHeader adds a header to the call.
func WithHeader(key, value string) CallOption {
	return func(r *httpclient.Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		r.Headers[key] = value
	}
}

// WithQueryParam adds a query parameter to the call.
func WithQueryParam(key, value string) CallOption {
	return func(r *httpclient.Request) {
		if r.Query == nil {
			r.Query = make(map[string]string)
		}
		r.Query[key] = value
	}
}

// WithCallAuth overrides authentication for the call.
func WithCallAuth(auth *httpclient.AuthConfig) CallOption {
	return func(r *httpclient.Request) {
		r.Auth = auth
	}
}

// Endpoint is a typed CRUD facade for one resource kind. It binds the DTO
// type T to a collection path and an item path template; resource-specific
// endpoints are Endpoint values, not subtypes.
//
// Endpoints carry no mutable state: every call is independent, so one
// instance may be shared across goroutines as long as the underlying client
// configuration is left alone after construction.
type Endpoint[T any] struct {
	client     *httpclient.Client
	collection Template
	item       Template
	log        *logger.Logger
}

// NewEndpoint creates an endpoint for the resource whose collection lives at
// collection (e.g. "/users") and whose items live at item (e.g.
// "/users/{userID}").
func NewEndpoint[T any](client *httpclient.Client, collection, item Template) *Endpoint[T] {
	resource := strings.Trim(string(collection), "/")
	return &Endpoint[T]{
		client:     client,
		collection: collection,
		item:       item,
		log: client.Logger().WithFields(map[string]interface{}{
			logger.FieldResource: resource,
		}),
	}
}

// Create POSTs v to the collection path, validates 201 Created, and returns
// the decoded resource.
func (e *Endpoint[T]) Create(ctx context.Context, v T, opts ...CallOption) (T, error) {
	return decodeOne[T](e.CreateExpect(ctx, v, StatusCreated, opts...))
}

// CreateExpect POSTs v to the collection path and validates the response
// against the given status.
func (e *Endpoint[T]) CreateExpect(ctx context.Context, v T, want Status, opts ...CallOption) (*ValidatedResponse, error) {
	path, err := e.collection.Expand()
	if err != nil {
		return nil, err
	}
	e.log.Info("create resource")
	return e.do(ctx, http.MethodPost, path, v, want, opts...)
}

// Update PUTs v to the item path for id, validates 200 OK, and returns the
// decoded resource.
func (e *Endpoint[T]) Update(ctx context.Context, id string, v T, opts ...CallOption) (T, error) {
	return decodeOne[T](e.UpdateExpect(ctx, id, v, StatusOK, opts...))
}

// UpdateExpect PUTs v to the item path for id and validates the response
// against the given status.
func (e *Endpoint[T]) UpdateExpect(ctx context.Context, id string, v T, want Status, opts ...CallOption) (*ValidatedResponse, error) {
	path, err := e.item.Expand(id)
	if err != nil {
		return nil, err
	}
	e.log.Info("update resource", logger.Fields("id", id))
	return e.do(ctx, http.MethodPut, path, v, want, opts...)
}

// GetByID GETs the item path for id, validates 200 OK, and returns the
// decoded resource.
func (e *Endpoint[T]) GetByID(ctx context.Context, id string, opts ...CallOption) (T, error) {
	return decodeOne[T](e.GetByIDExpect(ctx, id, StatusOK, opts...))
}

// GetByIDExpect GETs the item path for id and validates the response against
// the given status.
func (e *Endpoint[T]) GetByIDExpect(ctx context.Context, id string, want Status, opts ...CallOption) (*ValidatedResponse, error) {
	path, err := e.item.Expand(id)
	if err != nil {
		return nil, err
	}
	e.log.Info("get resource", logger.Fields("id", id))
	return e.do(ctx, http.MethodGet, path, nil, want, opts...)
}

// GetAll GETs the collection path, validates 200 OK, and returns the decoded
// resource sequence.
func (e *Endpoint[T]) GetAll(ctx context.Context, opts ...CallOption) ([]T, error) {
	vr, err := e.GetAllExpect(ctx, StatusOK, opts...)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := vr.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAllExpect GETs the collection path and validates the response against
// the given status.
func (e *Endpoint[T]) GetAllExpect(ctx context.Context, want Status, opts ...CallOption) (*ValidatedResponse, error) {
	path, err := e.collection.Expand()
	if err != nil {
		return nil, err
	}
	e.log.Info("list resources")
	return e.do(ctx, http.MethodGet, path, nil, want, opts...)
}

// Delete DELETEs the item path for id and validates 200 OK.
func (e *Endpoint[T]) Delete(ctx context.Context, id string, opts ...CallOption) error {
	_, err := e.DeleteExpect(ctx, id, StatusOK, opts...)
	return err
}

// DeleteExpect DELETEs the item path for id and validates the response
// against the given status.
func (e *Endpoint[T]) DeleteExpect(ctx context.Context, id string, want Status, opts ...CallOption) (*ValidatedResponse, error) {
	path, err := e.item.Expand(id)
	if err != nil {
		return nil, err
	}
	e.log.Info("delete resource", logger.Fields("id", id))
	return e.do(ctx, http.MethodDelete, path, nil, want, opts...)
}

// do issues a single request through the transport and validates its status.
func (e *Endpoint[T]) do(ctx context.Context, method, path string, body any, want Status, opts ...CallOption) (*ValidatedResponse, error) {
	req := httpclient.Request{
		Method: method,
		Path:   path,
		Body:   body,
	}
	for _, opt := range opts {
		opt(&req)
	}

	resp, err := e.client.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return validate(resp, want)
}

// decodeOne collapses the Expect-then-Decode idiom of the convenience
// operations.
func decodeOne[T any](vr *ValidatedResponse, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if err := vr.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}
