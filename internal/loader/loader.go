// Package loader reads the todo list from the remote endpoint.
package loader

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Makepad-fr/todosearch/internal/model"
)

// Endpoint is the only resource the program ever reads.
const Endpoint = "https://jsonplaceholder.typicode.com/todos"

// MaxBodySize caps how much of the response is read.
const MaxBodySize = 4 << 20

// FetchFailedMessage is the one user-visible text for any load failure.
const FetchFailedMessage = "Error fetching data"

// ErrFetchFailed matches every error returned by FetchTodos.
var ErrFetchFailed = errors.New("fetch failed")

// FetchError keeps the cause of a failed load for logs.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrFetchFailed, e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetchFailed }

//go:embed todos.schema.json
var schemaDoc string

const schemaURL = "todos.schema.json"

var todoSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaDoc)); err != nil {
		panic(fmt.Sprintf("loader: add schema: %v", err))
	}
	return compiler.MustCompile(schemaURL)
}

// Client fetches the todo list.
type Client struct {
	http *http.Client
}

// New creates a Client. A zero timeout means the request never times out.
func New(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// NewWithHTTPClient creates a Client with a custom http.Client (for testing).
func NewWithHTTPClient(c *http.Client) *Client {
	return &Client{http: c}
}

// FetchTodos performs one GET of Endpoint and decodes the list.
// Every failure is a *FetchError matching ErrFetchFailed.
func (c *Client) FetchTodos(ctx context.Context) ([]model.TodoItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, Endpoint, nil)
	if err != nil {
		return nil, &FetchError{Op: "creating request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Op: "requesting todos", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Op: "requesting todos", Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, &FetchError{Op: "reading response", Err: err}
	}
	if len(body) > MaxBodySize {
		return nil, &FetchError{Op: "reading response", Err: fmt.Errorf("body exceeds %d bytes", MaxBodySize)}
	}

	return Decode(body)
}

// Decode validates a todos payload against the schema and decodes it.
func Decode(data []byte) ([]model.TodoItem, error) {
	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, &FetchError{Op: "parsing response", Err: err}
	}

	if err := todoSchema.Validate(doc); err != nil {
		return nil, &FetchError{Op: "validating response", Err: schemaCause(err)}
	}

	var items []model.TodoItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &FetchError{Op: "decoding todos", Err: err}
	}
	if items == nil {
		items = []model.TodoItem{}
	}
	return items, nil
}

// schemaCause reduces a schema error to its first leaf, which names the
// offending instance location.
func schemaCause(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	loc := ve.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return fmt.Errorf("%s: %s", loc, ve.Message)
}
