package wordsource

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
)

// Mongo reads the first document of a MongoDB collection. The document keeps
// its records under `words`: {"words": [{"word": "apple"}, ...]}.
type Mongo struct {
	uri        string
	database   string
	collection string
}

type wordDocument struct {
	Words []Record `bson:"words"`
}

func NewMongo(cfg config.Mongo) *Mongo {
	return &Mongo{uri: cfg.URI, database: cfg.Database, collection: cfg.Collection}
}

func (m *Mongo) Name() string { return "mongo" }

// FetchCandidateWords opens a session, reads one document and closes the
// session again; the client is not kept between fetches.
func (m *Mongo) FetchCandidateWords(ctx context.Context) ([]string, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.uri))
	if err != nil {
		return nil, unavailable(m.Name(), fmt.Errorf("connect: %w", err))
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	return m.fetchFrom(ctx, client)
}

// fetchFrom reads the lowest-_id document through an open client.
func (m *Mongo) fetchFrom(ctx context.Context, client *mongo.Client) ([]string, error) {
	coll := client.Database(m.database).Collection(m.collection)
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})

	var doc wordDocument
	if err := coll.FindOne(ctx, bson.D{}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: mongo collection %s.%s is empty", ErrNoDocuments, m.database, m.collection)
		}
		return nil, unavailable(m.Name(), fmt.Errorf("find: %w", err))
	}
	return wordsOf(m.Name(), doc.Words)
}
