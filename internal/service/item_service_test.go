package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/repository"
	"github.com/alexanderramin/atajados/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemService_CreateRejectsInvalid(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.items.Create(ctx, testutil.NewTestItem("Excavación", testutil.WithCost(-1, 10)))
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = env.items.Create(ctx, testutil.NewTestItem(""))
	assert.ErrorIs(t, err, domain.ErrValidation)

	list, err := env.items.List(ctx, repository.ItemFilter{})
	require.NoError(t, err)
	assert.Empty(t, list, "nothing is written when validation fails")
}

func TestItemService_SetProgressValidatesRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	it := testutil.NewTestItem("Cerco", testutil.WithActive(false))
	require.NoError(t, env.items.Create(ctx, it))

	assert.ErrorIs(t, env.items.SetProgress(ctx, it.ID, 120), domain.ErrValidation)
	require.NoError(t, env.items.SetProgress(ctx, it.ID, 60))
	assert.ErrorIs(t, env.items.SetProgress(ctx, 999, 60), repository.ErrNotFound)

	got, err := env.items.GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 60.0, got.Progress)
}

func TestItemService_SetActive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	it := testutil.NewTestItem("Cerco", testutil.WithActive(false))
	require.NoError(t, env.items.Create(ctx, it))
	require.NoError(t, env.items.SetActive(ctx, it.ID, true))

	active := true
	list, err := env.items.List(ctx, repository.ItemFilter{Active: &active})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, it.ID, list[0].ID)

	assert.ErrorIs(t, env.items.SetActive(ctx, 404, true), repository.ErrNotFound)
	assert.ErrorIs(t, env.items.Delete(ctx, 404), repository.ErrNotFound)
}

func TestUnitService_DefaultsStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u := &domain.Unit{Number: 4, BeneficiaryName: "Luis"}
	require.NoError(t, env.units.Create(ctx, u))
	got, err := env.units.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UnitPending, got.Status)

	got.Status = "demolished"
	assert.ErrorIs(t, env.units.Update(ctx, got), domain.ErrValidation)
}

func TestMilestoneService_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	assert.ErrorIs(t, env.milestones.Create(ctx, &domain.Milestone{Name: "Sin fecha"}), domain.ErrValidation)
	require.NoError(t, env.milestones.Create(ctx, testutil.NewTestMilestone("Inicio", testutil.Date("2024-01-01"))))
	assert.ErrorIs(t, env.milestones.Delete(ctx, 999), repository.ErrNotFound)
}
