package wordsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cenkalti/backoff/v5"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
)

// maxSODABody caps how much of a collection listing is read.
const maxSODABody = 4 << 20

// SODA reads the word document from an ORDS SODA REST collection.
type SODA struct {
	baseURL    string
	collection string
	user       string
	password   string
	client     *http.Client
}

// sodaList is the body of GET {collection}.
type sodaList struct {
	Items []struct {
		ID    string          `json:"id"`
		Value json.RawMessage `json:"value"`
	} `json:"items"`
	HasMore bool `json:"hasMore"`
	Count   int  `json:"count"`
}

func NewSODA(cfg config.SODA, client *http.Client) *SODA {
	if client == nil {
		client = http.DefaultClient
	}
	return &SODA{
		baseURL:    cfg.BaseURL,
		collection: cfg.Collection,
		user:       cfg.User,
		password:   cfg.Password,
		client:     client,
	}
}

func (s *SODA) Name() string { return "soda" }

// FetchCandidateWords lists the first document of the collection and
// decodes its content as a JSON array of word records.
func (s *SODA) FetchCandidateWords(ctx context.Context) ([]string, error) {
	u, err := url.JoinPath(s.baseURL, s.collection)
	if err != nil {
		return nil, backoff.Permanent(unavailable(s.Name(), fmt.Errorf("collection url: %w", err)))
	}
	q := url.Values{"limit": {"1"}, "fields": {"all"}}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u+"?"+q.Encode(), nil)
	if err != nil {
		return nil, backoff.Permanent(unavailable(s.Name(), err))
	}
	req.Header.Set("Accept", "application/json")
	if s.user != "" {
		req.SetBasicAuth(s.user, s.password)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, unavailable(s.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := unavailable(s.Name(), fmt.Errorf("GET %s: %s", s.collection, resp.Status))
		if permanentStatus(resp.StatusCode) {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	var list sodaList
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxSODABody)).Decode(&list); err != nil {
		return nil, backoff.Permanent(unavailable(s.Name(), fmt.Errorf("decode listing: %w", err)))
	}
	if len(list.Items) == 0 {
		return nil, fmt.Errorf("%w: soda collection %s is empty", ErrNoDocuments, s.collection)
	}

	var records []Record
	if err := json.Unmarshal(list.Items[0].Value, &records); err != nil {
		return nil, backoff.Permanent(unavailable(s.Name(), fmt.Errorf("decode document %s: %w", list.Items[0].ID, err)))
	}
	return wordsOf(s.Name(), records)
}

// permanentStatus reports client errors a retry cannot fix.
func permanentStatus(code int) bool {
	return code >= 400 && code < 500 &&
		code != http.StatusRequestTimeout && code != http.StatusTooManyRequests
}
