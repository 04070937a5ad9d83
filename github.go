package equipage

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

const githubTokenEnv = "GITHUB_TOKEN"

var githubTokenFlag = flag.String("github-token", "", "GitHub token to use for pushing reports.\n If missing it will read from the environment variable \""+githubTokenEnv+"\".")

// GitHubToken resolves the sync credential, flag first then environment.
func GitHubToken() string {
	if *githubTokenFlag == "" {
		*githubTokenFlag = os.Getenv(githubTokenEnv)
	}
	return *githubTokenFlag
}

// SyncResult identifies the remote text blob a sync produced.
type SyncResult struct {
	URL string
	ID  string
}

// GitHubClient is a narrow client for the two ways this tool pushes
// content to GitHub: gists and repository files. The calculation core
// never touches it.
type GitHubClient struct {
	token  string
	base   string
	client *http.Client
}

// NewGitHubClient returns a client authenticated with the given bearer
// token. Calls time out after 30 seconds; there are no retries, a
// failed call surfaces immediately.
func NewGitHubClient(token string) *GitHubClient {
	return &GitHubClient{
		token:  token,
		base:   "https://api.github.com",
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// do performs one API call and decodes the JSON response. Non-2xx
// responses become errors carrying the server-provided body.
func (c *GitHubClient) do(method, endpoint string, payload any) (any, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("could not encode %s %s payload: %w", method, endpoint, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.base+endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s %s response: %w", method, endpoint, err)
	}
	log.Printf("%s %s %s", method, endpoint, resp.Status)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &apiError{Method: method, Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var jobj any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &jobj); err != nil {
			return nil, fmt.Errorf("cannot decode %s %s response: %w", method, endpoint, err)
		}
	}
	return jobj, nil
}

// apiError is a remote failure with the server's own explanation.
type apiError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.Endpoint, e.StatusCode, e.Body)
}

// jstring extracts a string value from a loosely-shaped JSON response.
func jstring(jobj any, path string) string {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return ""
	}
	// jsonpath may hand back a list of one answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, _ := jval.(string)
	return s
}

// User returns the login of the token's owner, to verify the credential
// before syncing.
func (c *GitHubClient) User() (string, error) {
	jobj, err := c.do(http.MethodGet, "/user", nil)
	if err != nil {
		return "", err
	}
	return jstring(jobj, "$.login"), nil
}

type gistPayload struct {
	Description string                  `json:"description,omitempty"`
	Public      *bool                   `json:"public,omitempty"`
	Files       map[string]gistFileBody `json:"files"`
}

type gistFileBody struct {
	Content string `json:"content"`
}

// CreateGist creates a gist holding a single file.
func (c *GitHubClient) CreateGist(filename, content, description string, public bool) (SyncResult, error) {
	payload := gistPayload{
		Description: description,
		Public:      &public,
		Files:       map[string]gistFileBody{filename: {Content: content}},
	}
	jobj, err := c.do(http.MethodPost, "/gists", payload)
	if err != nil {
		return SyncResult{}, err
	}
	return SyncResult{URL: jstring(jobj, "$.html_url"), ID: jstring(jobj, "$.id")}, nil
}

// UpdateGist replaces the named file in an existing gist.
func (c *GitHubClient) UpdateGist(gistID, filename, content string) (SyncResult, error) {
	payload := gistPayload{
		Files: map[string]gistFileBody{filename: {Content: content}},
	}
	jobj, err := c.do(http.MethodPatch, "/gists/"+gistID, payload)
	if err != nil {
		return SyncResult{}, err
	}
	return SyncResult{URL: jstring(jobj, "$.html_url"), ID: jstring(jobj, "$.id")}, nil
}

// SyncToRepo creates or updates a file in a repository using the
// contents API read-modify-write: fetch the current blob SHA if the
// file exists, then PUT the new content keyed by that SHA.
func (c *GitHubClient) SyncToRepo(owner, repo, path, content, message string) (SyncResult, error) {
	endpoint := fmt.Sprintf("/repos/%s/%s/contents/%s", owner, repo, path)

	var sha string
	jobj, err := c.do(http.MethodGet, endpoint, nil)
	switch {
	case err == nil:
		sha = jstring(jobj, "$.sha")
	case isNotFound(err):
		// first sync, the file does not exist yet
	default:
		return SyncResult{}, err
	}

	payload := map[string]string{
		"message": message,
		"content": base64.StdEncoding.EncodeToString([]byte(content)),
	}
	if sha != "" {
		payload["sha"] = sha
	}

	jobj, err = c.do(http.MethodPut, endpoint, payload)
	if err != nil {
		return SyncResult{}, err
	}
	return SyncResult{URL: jstring(jobj, "$.content.html_url"), ID: jstring(jobj, "$.content.sha")}, nil
}

func isNotFound(err error) bool {
	apiErr, ok := err.(*apiError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}
