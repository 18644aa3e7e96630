package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkusuma/travelcatalog/internal/domain"
	"github.com/nkusuma/travelcatalog/internal/repo"
	"github.com/nkusuma/travelcatalog/testutil"
)

// newTestRepo opens a transaction against the test database and returns a
// DestinationRepo backed by that transaction. The transaction is automatically
// rolled back when the test finishes, giving free per-test isolation.
//
// Requires TEST_DATABASE_URL to be set and all migrations to be applied
// (TestMain in this package applies them).
func newTestRepo(t *testing.T) repo.DestinationRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test — no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})

	return repo.NewDestinationRepo(tx)
}

// destinationFixture returns a domain.Destination with sensible defaults.
// Callers can override individual fields after calling this function.
func destinationFixture() domain.Destination {
	rating := 4
	notes := "Go in the dry season"
	budget := "$1500"
	return domain.Destination{
		Name:        "Bali Trip",
		Country:     "Indonesia",
		City:        "Denpasar",
		Description: "Beaches and temples",
		Visited:     true,
		Rating:      &rating,
		Notes:       &notes,
		Budget:      &budget,
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestDestinationRepo_Create(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := destinationFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.Positive(t, got.ID, "ID should be DB-generated")
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Country, got.Country)
	assert.Equal(t, input.City, got.City)
	assert.Equal(t, input.Description, got.Description)
	assert.True(t, got.Visited)
	require.NotNil(t, got.Rating)
	assert.Equal(t, *input.Rating, *got.Rating)
	require.NotNil(t, got.Notes)
	assert.Equal(t, *input.Notes, *got.Notes)
	require.NotNil(t, got.Budget)
	assert.Equal(t, *input.Budget, *got.Budget)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by DB")
}

func TestDestinationRepo_Create_NilOptionals(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := destinationFixture()
	input.Visited = false
	input.Rating = nil
	input.Notes = nil
	input.Budget = nil

	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.False(t, got.Visited)
	assert.Nil(t, got.Rating, "Rating should be NULL when not provided")
	assert.Nil(t, got.Notes, "Notes should be NULL when not provided")
	assert.Nil(t, got.Budget, "Budget should be NULL when not provided")
}

func TestDestinationRepo_Create_DistinctIDs(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	first, err := r.Create(ctx, destinationFixture())
	require.NoError(t, err)
	second, err := r.Create(ctx, destinationFixture())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestDestinationRepo_GetByID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, destinationFixture())
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 4, *got.Rating)
}

func TestDestinationRepo_GetByID_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetByID(context.Background(), 999999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDestinationRepo_List_NewestFirst(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		d := destinationFixture()
		d.Name = name
		_, err := r.Create(ctx, d)
		require.NoError(t, err)
	}

	got, err := r.List(ctx)

	require.NoError(t, err)
	require.Len(t, got, 3)
	// Rows created within the same created_at instant fall back to id order,
	// so the insert order is reversed either way.
	assert.Equal(t, "Third", got[0].Name)
	assert.Equal(t, "Second", got[1].Name)
	assert.Equal(t, "First", got[2].Name)
}

func TestDestinationRepo_Update_ReplacesFields(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, destinationFixture())
	require.NoError(t, err)

	upd := domain.DestinationUpdate{
		Name:        "Kyoto Trip",
		Country:     "Japan",
		City:        "Kyoto",
		Description: "Temples and gardens",
		Visited:     boolPtr(false),
		Rating:      intPtr(5),
		Notes:       nil, // cleared
		Budget:      strPtr("$2000"),
	}

	got, err := r.Update(ctx, created.ID, upd)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Kyoto Trip", got.Name)
	assert.Equal(t, "Japan", got.Country)
	assert.False(t, got.Visited)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 5, *got.Rating)
	assert.Nil(t, got.Notes, "omitted notes should be cleared to NULL")
	require.NotNil(t, got.Budget)
	assert.Equal(t, "$2000", *got.Budget)
	assert.Equal(t, created.CreatedAt, got.CreatedAt, "CreatedAt is immutable")
}

func TestDestinationRepo_Update_NilVisitedKeepsStoredValue(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := destinationFixture()
	input.Visited = true
	created, err := r.Create(ctx, input)
	require.NoError(t, err)

	upd := domain.DestinationUpdate{
		Name:        created.Name,
		Country:     created.Country,
		City:        created.City,
		Description: created.Description,
		Visited:     nil, // omitted on the wire
	}

	got, err := r.Update(ctx, created.ID, upd)

	require.NoError(t, err)
	assert.True(t, got.Visited, "omitted visited should keep the stored value")
}

func TestDestinationRepo_Update_NotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.Update(context.Background(), 999999, domain.DestinationUpdate{
		Name: "Ghost", Country: "Nowhere", City: "Nil", Description: "missing",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDestinationRepo_Delete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, destinationFixture())
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	list, err := r.List(ctx)
	require.NoError(t, err)
	for _, d := range list {
		assert.NotEqual(t, created.ID, d.ID, "deleted record must not appear in the listing")
	}
}

func TestDestinationRepo_Delete_NotFound(t *testing.T) {
	r := newTestRepo(t)

	err := r.Delete(context.Background(), 999999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
