// Package httpclient provides the transport layer for restkit: a configurable
// HTTP client with base URL resolution, default headers, authentication, and
// TLS settings.
//
// The client deliberately does not judge response status codes. A 4xx or 5xx
// comes back as an ordinary *Response; only transport-level failures
// (connection, timeout, body encoding) produce an error. Status expectations
// belong to the rest package, where test code asserts them explicitly.
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://jsonplaceholder.typicode.com",
//	    Timeout: 30 * time.Second,
//	    Auth:    httpclient.BearerAuth("my-token"),
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/users/1",
//	})
package httpclient
