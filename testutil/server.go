package testutil

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
)

// DefaultResources are the collections the fake API serves unless the caller
// names its own.
var DefaultResources = []string{"users", "comments"}

// Server is an in-memory fake of a JSONPlaceholder-style REST API.
type Server struct {
	srv    *httptest.Server
	stores map[string]*resourceStore
}

// resourceStore holds one resource collection. Ids are assigned sequentially
// on create, the way the real service does.
type resourceStore struct {
	mu    sync.Mutex
	next  int
	items map[int]map[string]any
}

func newResourceStore() *resourceStore {
	return &resourceStore{next: 1, items: make(map[int]map[string]any)}
}

// NewServer starts a fake API serving the given resource collections
// (DefaultResources when none are given). Close must be called when done.
func NewServer(resources ...string) *Server {
	if len(resources) == 0 {
		resources = DefaultResources
	}

	gin.SetMode(gin.TestMode)
	engine := gin.New()

	s := &Server{stores: make(map[string]*resourceStore, len(resources))}
	for _, name := range resources {
		store := newResourceStore()
		s.stores[name] = store

		engine.POST("/"+name, store.create)
		engine.GET("/"+name, store.list)
		engine.GET("/"+name+"/:id", store.get)
		engine.PUT("/"+name+"/:id", store.update)
		engine.DELETE("/"+name+"/:id", store.remove)
	}

	s.srv = httptest.NewServer(engine)
	return s
}

// URL returns the base URL of the fake API.
func (s *Server) URL() string {
	return s.srv.URL
}

// Close shuts the fake API down.
func (s *Server) Close() {
	s.srv.Close()
}

// Reset clears every resource store and restarts id assignment.
func (s *Server) Reset() {
	for _, store := range s.stores {
		store.mu.Lock()
		store.next = 1
		store.items = make(map[int]map[string]any)
		store.mu.Unlock()
	}
}

// Count returns the number of items currently stored for a resource.
func (s *Server) Count(resource string) int {
	store, ok := s.stores[resource]
	if !ok {
		return 0
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.items)
}

func (r *resourceStore) create(c *gin.Context) {
	var item map[string]any
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.next
	r.next++
	item["id"] = id
	r.items[id] = item

	c.JSON(http.StatusCreated, item)
}

func (r *resourceStore) list(c *gin.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	all := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		all = append(all, r.items[id])
	}
	c.JSON(http.StatusOK, all)
}

func (r *resourceStore) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (r *resourceStore) update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var item map[string]any
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}
	item["id"] = id
	r.items[id] = item

	c.JSON(http.StatusOK, item)
}

func (r *resourceStore) remove(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}
	delete(r.items, id)

	c.JSON(http.StatusOK, gin.H{})
}
