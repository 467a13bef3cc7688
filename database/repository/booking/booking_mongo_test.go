// File: database/repository/booking/booking_mongo_test.go
//
// These tests run against a real MongoDB replica set (transactions are
// unavailable on standalone servers). Set MONGO_URI to enable them.
package bookingRepo

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotbook/models"
)

func integrationDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set; skipping mongo integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database("slotbook_test")
	require.NoError(t, db.Collection("bookings").Drop(ctx))
	require.NoError(t, db.Collection("provider_locks").Drop(ctx))
	return db
}

func slotAt(h, m int) time.Time {
	return time.Date(2026, 3, 14, h, m, 0, 0, time.UTC)
}

func TestCreateClaimsProviderAnchor(t *testing.T) {
	db := integrationDB(t)
	repo := NewMongoBookingRepo(db)
	ctx := context.Background()

	_, err := repo.CreateWithOverlapCheck(ctx, &models.Booking{
		ClientUID:  "client-1",
		ProviderID: "prov-anchor",
		SlotStart:  slotAt(10, 0),
		SlotEnd:    slotAt(10, 30),
	})
	require.NoError(t, err)

	// The create transaction must write the provider's anchor document;
	// dropping that write would reopen the two-snapshots-both-commit
	// hole, so its presence is pinned here.
	n, err := db.Collection("provider_locks").CountDocuments(ctx, bson.M{"provider_id": "prov-anchor"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	// A second, non-overlapping booking reuses the same anchor.
	_, err = repo.CreateWithOverlapCheck(ctx, &models.Booking{
		ClientUID:  "client-2",
		ProviderID: "prov-anchor",
		SlotStart:  slotAt(10, 30),
		SlotEnd:    slotAt(11, 0),
	})
	require.NoError(t, err)
	n, err = db.Collection("provider_locks").CountDocuments(ctx, bson.M{"provider_id": "prov-anchor"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestCreateRaceOnStore(t *testing.T) {
	db := integrationDB(t)
	repo := NewMongoBookingRepo(db)
	ctx := context.Background()

	const workers = 2
	var wg sync.WaitGroup
	results := make([]error, workers)
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, results[i] = repo.CreateWithOverlapCheck(ctx, &models.Booking{
				ClientUID:  "client",
				ProviderID: "prov-race",
				SlotStart:  slotAt(10, 0),
				SlotEnd:    slotAt(10, 30),
			})
		}(i)
	}
	close(start)
	wg.Wait()

	var successes int
	for _, err := range results {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrSlotTaken)
		}
	}
	assert.Equal(t, 1, successes, "exactly one overlapping creation may commit")

	n, err := db.Collection("bookings").CountDocuments(ctx, bson.M{"provider_id": "prov-race"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n, "no overlapping bookings may persist")
}

func TestCreateDistinctProvidersDoNotSerialize(t *testing.T) {
	db := integrationDB(t)
	repo := NewMongoBookingRepo(db)
	ctx := context.Background()

	// Same interval, different providers: anchors are per provider, so
	// both creates commit.
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, prov := range []string{"prov-a", "prov-b"} {
		wg.Add(1)
		go func(i int, prov string) {
			defer wg.Done()
			_, results[i] = repo.CreateWithOverlapCheck(ctx, &models.Booking{
				ClientUID:  "client",
				ProviderID: prov,
				SlotStart:  slotAt(10, 0),
				SlotEnd:    slotAt(10, 30),
			})
		}(i, prov)
	}
	wg.Wait()

	require.NoError(t, results[0])
	require.NoError(t, results[1])
}
