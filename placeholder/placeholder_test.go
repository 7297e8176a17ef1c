package placeholder

import (
	"context"
	"strconv"
	"testing"

	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/rest"
	"github.com/kbukum/restkit/testutil"
	"github.com/kbukum/restkit/validation"
)

func newClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()
	client, err := httpclient.New(httpclient.Config{BaseURL: baseURL})
	if err != nil {
		t.Fatal(err)
	}
	return client
}

func TestCommentLifecycle(t *testing.T) {
	srv := testutil.NewServer()
	defer srv.Close()
	comments := NewCommentEndpoint(newClient(t, srv.URL()))
	ctx := context.Background()

	created, err := comments.Create(ctx, Comment{Body: "Hello"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected a non-empty id")
	}
	id := strconv.Itoa(created.ID)

	got, err := comments.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("getById: %v", err)
	}
	if got.Body != "Hello" {
		t.Errorf("expected Hello, got %q", got.Body)
	}

	if _, err := comments.Update(ctx, id, Comment{Body: "Updated"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err = comments.GetByID(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Body != "Updated" {
		t.Errorf("expected Updated, got %q", got.Body)
	}

	all, err := comments.GetAll(ctx)
	if err != nil {
		t.Fatalf("getAll: %v", err)
	}
	found := false
	for _, c := range all {
		if c.Body == "Updated" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected updated comment in listing, got %+v", all)
	}
}

func TestUserRoundTrip(t *testing.T) {
	srv := testutil.NewServer()
	defer srv.Close()
	users := NewUserEndpoint(newClient(t, srv.URL()))
	ctx := context.Background()

	in := User{
		Name:     "Leanne Graham",
		Username: "Bret",
		Email:    "leanne@april.biz",
		Address: &Address{
			Street: "Kulas Light",
			City:   "Gwenborough",
			Geo:    &Geo{Lat: "-37.3159", Lng: "81.1496"},
		},
		Company: &Company{Name: "Romaguera-Crona"},
	}

	created, err := users.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := users.GetByID(ctx, strconv.Itoa(created.ID))
	if err != nil {
		t.Fatalf("getById: %v", err)
	}
	if got.Name != in.Name || got.Email != in.Email {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Address == nil || got.Address.Geo == nil || got.Address.Geo.Lat != "-37.3159" {
		t.Errorf("nested fields lost in round trip: %+v", got.Address)
	}
}

func TestUserExpectStatusVariants(t *testing.T) {
	srv := testutil.NewServer()
	defer srv.Close()
	users := NewUserEndpoint(newClient(t, srv.URL()))
	ctx := context.Background()

	vr, err := users.CreateExpect(ctx, User{Name: "Ervin"}, rest.StatusCreated)
	if err != nil {
		t.Fatalf("createExpect: %v", err)
	}
	var created User
	if err := vr.Decode(&created); err != nil {
		t.Fatal(err)
	}

	// A wrong expectation surfaces as a StatusError, not a silent pass.
	_, err = users.GetByIDExpect(ctx, "999", rest.StatusOK)
	if !rest.IsUnexpectedStatus(err) {
		t.Fatalf("expected status error, got %v", err)
	}

	if _, err := users.GetByIDExpect(ctx, "999", rest.StatusNotFound); err != nil {
		t.Errorf("matching expectation must pass, got %v", err)
	}
}

func TestDTOValidationTags(t *testing.T) {
	if err := validation.Validate(User{Name: "Leanne", Email: "leanne@april.biz"}); err != nil {
		t.Errorf("valid user rejected: %v", err)
	}
	if err := validation.Validate(User{}); err == nil {
		t.Error("expected error for missing name")
	}
	if err := validation.Validate(Comment{Body: "Hi", Email: "not-an-email"}); err == nil {
		t.Error("expected error for malformed email")
	}
}
