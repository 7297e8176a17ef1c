// Package rest provides a generic, typed CRUD client for exercising a REST
// API from test code.
//
// An Endpoint binds a DTO type to a collection path and an item path template
// and exposes the usual verb surface — Create, Update, GetByID, GetAll,
// Delete — in two flavors per operation: a convenience form that validates the
// default status and decodes the typed payload, and an Expect form that
// validates against a caller-supplied status and hands back the validated
// response for further inspection.
//
//	client, _ := httpclient.New(httpclient.Config{BaseURL: baseURL})
//	users := rest.NewEndpoint[User](client, "/users", "/users/{userID}")
//
//	created, err := users.Create(ctx, User{Name: "Leanne"})
//	vr, err := users.GetByIDExpect(ctx, "999", rest.Status(http.StatusNotFound))
//
// Status mismatches surface as *StatusError carrying both codes, which is the
// assertion test code observes. Endpoints hold no mutable state; one instance
// may serve any number of concurrent calls.
package rest
