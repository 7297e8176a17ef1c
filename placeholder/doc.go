// Package placeholder provides ready-made endpoint bindings for the
// JSONPlaceholder-style demo API used by the test suites: users and comments
// with their standard wire shapes.
//
//	client, _ := httpclient.New(httpclient.Config{BaseURL: baseURL})
//	users := placeholder.NewUserEndpoint(client)
//	created, err := users.Create(ctx, placeholder.User{Name: "Leanne Graham"})
//
// The bindings are configuration, not code: each constructor is a
// rest.NewEndpoint call with the resource's two path templates.
package placeholder
