package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freelancedash/profit-engine/internal/core/domain"
)

const (
	timeCollection     = "time_logs"
	incomeCollection   = "income_logs"
	countersCollection = "counters"
)

// fieldColumns maps client-facing update field names to stored columns.
// The service layer has already rejected anything outside the whitelist;
// this map is the only place names are translated, never interpolated.
var fieldColumns = map[string]string{
	"Client": "client",
	"Hours":  "hours",
	"Type":   "category",
	"Amount": "amount",
}

// EntryRepository persists time and income logs. Entries carry a numeric
// seq allocated from a counters document, so ascending seq reproduces
// insertion order across the collection.
type EntryRepository struct {
	times    *mongo.Collection
	incomes  *mongo.Collection
	counters *mongo.Collection
}

func NewEntryRepository(db *mongo.Database) *EntryRepository {
	return &EntryRepository{
		times:    db.Collection(timeCollection),
		incomes:  db.Collection(incomeCollection),
		counters: db.Collection(countersCollection),
	}
}

// nextSeq atomically increments and returns the named counter.
func (r *EntryRepository) nextSeq(ctx context.Context, name string) (int64, error) {
	var doc struct {
		Value int64 `bson:"value"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next seq %s: %w", name, err)
	}
	return doc.Value, nil
}

func (r *EntryRepository) InsertTime(ctx context.Context, e *domain.TimeEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	seq, err := r.nextSeq(ctx, timeCollection)
	if err != nil {
		return mapStoreErr(err)
	}
	e.ID = seq

	if _, err := r.times.InsertOne(ctx, e); err != nil {
		return mapStoreErr(fmt.Errorf("insert time entry: %w", err))
	}
	return nil
}

func (r *EntryRepository) InsertIncome(ctx context.Context, e *domain.IncomeEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	seq, err := r.nextSeq(ctx, incomeCollection)
	if err != nil {
		return mapStoreErr(err)
	}
	e.ID = seq

	if _, err := r.incomes.InsertOne(ctx, e); err != nil {
		return mapStoreErr(fmt.Errorf("insert income entry: %w", err))
	}
	return nil
}

func (r *EntryRepository) ListTimeByOwner(ctx context.Context, userID string) ([]domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.times.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, mapStoreErr(fmt.Errorf("list time entries: %w", err))
	}

	var rows []domain.TimeEntry
	if err := cur.All(ctx, &rows); err != nil {
		return nil, mapStoreErr(fmt.Errorf("decode time entries: %w", err))
	}
	return rows, nil
}

func (r *EntryRepository) ListIncomeByOwner(ctx context.Context, userID string) ([]domain.IncomeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.incomes.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, mapStoreErr(fmt.Errorf("list income entries: %w", err))
	}

	var rows []domain.IncomeEntry
	if err := cur.All(ctx, &rows); err != nil {
		return nil, mapStoreErr(fmt.Errorf("decode income entries: %w", err))
	}
	return rows, nil
}

func (r *EntryRepository) TimeHistory(ctx context.Context, userID, client string) ([]domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.times.Find(ctx, bson.M{"user_id": userID, "client": client},
		options.Find().SetSort(bson.D{{Key: "seq", Value: -1}}))
	if err != nil {
		return nil, mapStoreErr(fmt.Errorf("time history: %w", err))
	}

	var rows []domain.TimeEntry
	if err := cur.All(ctx, &rows); err != nil {
		return nil, mapStoreErr(fmt.Errorf("decode time history: %w", err))
	}
	return rows, nil
}

func (r *EntryRepository) IncomeHistory(ctx context.Context, userID, client string) ([]domain.IncomeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.incomes.Find(ctx, bson.M{"user_id": userID, "client": client},
		options.Find().SetSort(bson.D{{Key: "seq", Value: -1}}))
	if err != nil {
		return nil, mapStoreErr(fmt.Errorf("income history: %w", err))
	}

	var rows []domain.IncomeEntry
	if err := cur.All(ctx, &rows); err != nil {
		return nil, mapStoreErr(fmt.Errorf("decode income history: %w", err))
	}
	return rows, nil
}

func (r *EntryRepository) UpdateTimeField(ctx context.Context, userID string, id int64, field string, value any) error {
	return r.updateField(ctx, r.times, userID, id, field, value)
}

func (r *EntryRepository) UpdateIncomeField(ctx context.Context, userID string, id int64, field string, value any) error {
	return r.updateField(ctx, r.incomes, userID, id, field, value)
}

// updateField sets one column on the row matching both seq and owner. The
// single filter makes "not found" and "not yours" the same outcome.
func (r *EntryRepository) updateField(ctx context.Context, coll *mongo.Collection, userID string, id int64, field string, value any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	column, ok := fieldColumns[field]
	if !ok {
		return domain.ErrInvalidUpdate
	}

	res, err := coll.UpdateOne(ctx,
		bson.M{"seq": id, "user_id": userID},
		bson.M{"$set": bson.M{column: value}})
	if err != nil {
		return mapStoreErr(fmt.Errorf("update entry: %w", err))
	}
	if res.MatchedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// EnsureIndexes creates owner and owner+client indexes on both log
// collections.
func (r *EntryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "seq", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "client", Value: 1}}},
	}

	if _, err := r.times.Indexes().CreateMany(ctx, indexes); err != nil {
		return err
	}
	_, err := r.incomes.Indexes().CreateMany(ctx, indexes)
	return err
}
