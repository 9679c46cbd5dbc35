// Package mongo implements domain.FlightStore on MongoDB.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skytrack/flight-tracker/internal/domain"
)

const (
	flightsCollection  = "flights"
	countersCollection = "counters"
	flightsCounterID   = "flights"
)

// Store persists flights in a collection with integer ids from a counters collection.
type Store struct {
	flights  *driver.Collection
	counters *driver.Collection
}

// NewClient connects and pings MongoDB.
func NewClient(ctx context.Context, uri string, timeout time.Duration) (*driver.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := driver.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// NewStore creates the store and its indexes.
func NewStore(ctx context.Context, db *driver.Database) (*Store, error) {
	s := &Store{
		flights:  db.Collection(flightsCollection),
		counters: db.Collection(countersCollection),
	}

	indexes := []driver.IndexModel{
		{Keys: bson.D{{Key: "departKey", Value: 1}, {Key: "callSign", Value: 1}}},
		{Keys: bson.D{{Key: "departAt", Value: 1}}},
	}
	if _, err := s.flights.Indexes().CreateMany(ctx, indexes); err != nil {
		return nil, fmt.Errorf("create flight indexes: %w", err)
	}
	return s, nil
}

// nextID increments and returns the flights sequence.
func (s *Store) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": flightsCounterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next flight id: %w", err)
	}
	return counter.Seq, nil
}

// Insert implements domain.FlightStore.
func (s *Store) Insert(ctx context.Context, record *domain.FlightRecord) error {
	id, err := s.nextID(ctx)
	if err != nil {
		return err
	}

	doc := toDocument(record)
	doc.ID = id
	if _, err := s.flights.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert flight: %w", err)
	}
	record.ID = id
	return nil
}

// Update implements domain.FlightStore.
func (s *Store) Update(ctx context.Context, record *domain.FlightRecord) error {
	res, err := s.flights.ReplaceOne(ctx, bson.M{"_id": record.ID}, toDocument(record))
	if err != nil {
		return fmt.Errorf("update flight %d: %w", record.ID, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// Delete implements domain.FlightStore.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.flights.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete flight %d: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// Get implements domain.FlightStore.
func (s *Store) Get(ctx context.Context, id int64) (*domain.FlightRecord, error) {
	var doc flightDocument
	err := s.flights.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("get flight %d: %w", id, err)
	}
	return doc.toRecord()
}

// GetAll implements domain.FlightStore.
func (s *Store) GetAll(ctx context.Context) ([]domain.FlightRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "departAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.flights.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find flights: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []flightDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode flights: %w", err)
	}

	records := make([]domain.FlightRecord, 0, len(docs))
	for _, doc := range docs {
		r, err := doc.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, *r)
	}
	return records, nil
}

// CountExisting implements domain.FlightStore.
func (s *Store) CountExisting(ctx context.Context, departDate time.Time, callSign string) (int64, error) {
	n, err := s.flights.CountDocuments(ctx, bson.M{
		"departKey": departDate.Format(domain.LocalDateTimeLayout),
		"callSign":  callSign,
	})
	if err != nil {
		return 0, fmt.Errorf("count flights: %w", err)
	}
	return n, nil
}

var _ domain.FlightStore = (*Store)(nil)
