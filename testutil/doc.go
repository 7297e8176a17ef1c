// Package testutil provides an in-memory stand-in for the placeholder API so
// client tests run self-contained, without a network dependency on the real
// service.
//
//	srv := testutil.NewServer()
//	defer srv.Close()
//
//	client, _ := httpclient.New(httpclient.Config{BaseURL: srv.URL()})
//
// The fake implements the CRUD surface the endpoints exercise: POST assigns
// ids and answers 201, PUT/GET answer 200 or 404, GET on the collection
// returns the full list, DELETE answers 200. Reset clears all stores between
// test cases.
package testutil
