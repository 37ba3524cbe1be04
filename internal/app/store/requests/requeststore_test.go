package requeststore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	requeststore "assetverse/internal/app/store/requests"
	"assetverse/internal/testutil"
)

func TestStore_Patch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requeststore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id := fixtures.CreateRequest(ctx, "emp@example.com", "Laptop", "pending")

	res, err := store.Patch(ctx, id, bson.M{"status": "approved", "approvalDate": "2026-08-29"})
	if err != nil {
		t.Fatalf("Patch failed: %v", err)
	}
	if res.MatchedCount != 1 || res.ModifiedCount != 1 {
		t.Errorf("counts: got matched=%d modified=%d, want 1/1", res.MatchedCount, res.ModifiedCount)
	}

	var doc bson.M
	if err := db.Collection("requests").FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		t.Fatalf("lookup request: %v", err)
	}
	if doc["status"] != "approved" {
		t.Errorf("status: got %v, want %q", doc["status"], "approved")
	}
	// Untouched fields survive the merge.
	if doc["assetName"] != "Laptop" {
		t.Errorf("assetName: got %v, want %q", doc["assetName"], "Laptop")
	}
}

func TestStore_Patch_MissingID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requeststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	res, err := store.Patch(ctx, primitive.NewObjectID(), bson.M{"status": "approved"})
	if err != nil {
		t.Fatalf("Patch failed: %v", err)
	}
	if res.MatchedCount != 0 {
		t.Errorf("matched count: got %d, want 0", res.MatchedCount)
	}
}

func TestStore_CreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := requeststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, bson.M{"email": "emp@example.com", "assetName": "Chair", "status": "pending"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	docs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("list length: got %d, want 1", len(docs))
	}
}
