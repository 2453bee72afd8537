package session

import (
	"errors"
	"testing"

	"surveylens/domain/core"
	"surveylens/domain/dataset"
)

func testDataset(name string) *dataset.Dataset {
	return &dataset.Dataset{ID: core.NewDatasetID(), Name: name, RowCount: 1}
}

func TestStore_PutAndCurrent(t *testing.T) {
	store := NewStore()

	if _, ok := store.Current(); ok {
		t.Fatal("empty store should have no current dataset")
	}

	ds := testDataset("first.csv")
	store.Put(ds)

	got, ok := store.Current()
	if !ok || got.Name != "first.csv" {
		t.Fatalf("expected first.csv, got %+v (ok=%v)", got, ok)
	}
}

func TestStore_PutReplaces(t *testing.T) {
	store := NewStore()
	store.Put(testDataset("old.csv"))

	replacement := testDataset("new.csv")
	store.Put(replacement)

	got, ok := store.Current()
	if !ok || got.ID != replacement.ID {
		t.Fatalf("expected replacement dataset, got %+v", got)
	}
}

func TestStore_GetByID(t *testing.T) {
	store := NewStore()
	ds := testDataset("survey.csv")
	store.Put(ds)

	got, err := store.Get(ds.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "survey.csv" {
		t.Errorf("expected survey.csv, got %q", got.Name)
	}

	_, err = store.Get(core.NewDatasetID())
	if !errors.Is(err, core.ErrDatasetNotFound) {
		t.Errorf("expected ErrDatasetNotFound for stale ID, got %v", err)
	}
}

func TestStore_Clear(t *testing.T) {
	store := NewStore()
	store.Put(testDataset("survey.csv"))
	store.Clear()

	if _, ok := store.Current(); ok {
		t.Error("store should be empty after Clear")
	}
}
