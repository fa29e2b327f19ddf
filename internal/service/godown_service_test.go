package service

import (
	"context"
	"testing"

	"github.com/aashishdubey1/stock-inventory/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGodownCreateAndGet(t *testing.T) {
	repo := newStubGodownRepo()
	svc := NewGodownService(repo)

	created, err := svc.Create(context.Background(), dto.CreateGodownRequest{
		Name:          "Bhiwandi Warehouse",
		Location:      "Bhiwandi, Thane",
		ContactPerson: "Prakash",
		ContactNumber: "9800000000",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Bhiwandi Warehouse", got.Name)
	assert.Equal(t, "Prakash", got.ContactPerson)
}

func TestGodownUpdatePartial(t *testing.T) {
	repo := newStubGodownRepo()
	svc := NewGodownService(repo)
	g := repo.add("Old Name")

	newName := "New Name"
	updated, err := svc.Update(context.Background(), g.ID, dto.UpdateGodownRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
}

func TestGodownNotFound(t *testing.T) {
	svc := NewGodownService(newStubGodownRepo())

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrGodownNotFound)

	err = svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrGodownNotFound)
}
