package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srourslaw/bh-worldwide-dashboard/internal/domain"
)

func TestCaseStoreStatusOverride(t *testing.T) {
	store := NewCaseStore()
	ctx := context.Background()

	store.Load([]*domain.AOGCase{
		{CaseID: "AOG-2026-0847", Airline: "Emirates", Status: "active"},
		{CaseID: "AOG-2026-0851", Airline: "British Airways"},
	})

	require.NoError(t, store.SetStatus(ctx, "AOG-2026-0847", domain.CaseStatusQuoted))

	c, err := store.FindByCaseID(ctx, "AOG-2026-0847")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, domain.CaseStatusQuoted, c.Status)

	// Missing status in the fixture defaults to active
	c, err = store.FindByCaseID(ctx, "AOG-2026-0851")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, domain.CaseStatusActive, c.Status)

	missing, err := store.FindByCaseID(ctx, "AOG-2026-9999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCaseStoreStatusDoesNotMutateFixture(t *testing.T) {
	store := NewCaseStore()
	ctx := context.Background()

	original := &domain.AOGCase{CaseID: "AOG-2026-0853", Status: "active"}
	store.Load([]*domain.AOGCase{original})

	require.NoError(t, store.SetStatus(ctx, "AOG-2026-0853", domain.CaseStatusQuoted))
	assert.Equal(t, "active", original.Status)
}

func TestCaseStoreSetStatusForUnknownCase(t *testing.T) {
	store := NewCaseStore()
	ctx := context.Background()

	// Quotes may reference case ids the fixtures never listed
	assert.NoError(t, store.SetStatus(ctx, "AOG-2026-9999", domain.CaseStatusQuoted))
}

func TestCaseStoreCountByStatus(t *testing.T) {
	store := NewCaseStore()
	ctx := context.Background()

	store.Load([]*domain.AOGCase{
		{CaseID: "C1", Status: "active"},
		{CaseID: "C2", Status: "active"},
		{CaseID: "C3", Status: "closed"},
	})
	require.NoError(t, store.SetStatus(ctx, "C2", domain.CaseStatusQuoted))

	counts, err := store.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"active": 1, "quoted": 1, "closed": 1}, counts)
}

func TestCaseStoreFindAllPreservesOrder(t *testing.T) {
	store := NewCaseStore()
	ctx := context.Background()

	store.Load([]*domain.AOGCase{
		{CaseID: "C3"},
		{CaseID: "C1"},
		{CaseID: "C2"},
		{CaseID: "C1"},
	})

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "C3", all[0].CaseID)
	assert.Equal(t, "C1", all[1].CaseID)
	assert.Equal(t, "C2", all[2].CaseID)
}
