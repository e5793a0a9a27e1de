package store

import (
	"database/sql"
	"fmt"
	"os"
	"reflect"
	"slices"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vancomm/minesweeper-agent/internal/knowledge"
	"github.com/vancomm/minesweeper-agent/internal/player"
)

func setupTestStore() (*Store, func(), error) {
	f, err := os.CreateTemp("", "sqlite-storage-")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create temp file: %v", err)
	}

	db, err := sql.Open("sqlite3", f.Name())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect sqlite db: %v", err)
	}

	s, err := New(db, "teststore")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create new store: %v", err)
	}

	teardown := func() {
		db.Close()
		f.Close()
		os.Remove(f.Name())
	}

	return s, teardown, nil
}

func TestStoreBadName(t *testing.T) {
	if _, err := New(nil, "no spaces allowed"); err != ErrBadName {
		t.Fatalf("expected bad name error, received %v", err)
	}
	if _, err := New(nil, ""); err != ErrBadName {
		t.Fatalf("expected bad name error, received %v", err)
	}
}

func TestStoreReadEmpty(t *testing.T) {
	s, teardown, err := setupTestStore()
	if err != nil {
		t.Fatal(err)
	}
	defer teardown()

	var nothing struct{}
	if err = s.Get("some key", &nothing); err != ErrNotFound {
		t.Fatalf("expected not found error, received %v", err)
	}
}

func TestStoreWriteAndReadPrimitive(t *testing.T) {
	s, teardown, err := setupTestStore()
	if err != nil {
		t.Fatal(err)
	}
	defer teardown()

	key := "key"
	val := 1337
	if err = s.Set(key, val); err != nil {
		t.Fatalf("failed to set value: %v", err)
	}

	var rtVal int
	if err = s.Get(key, &rtVal); err != nil {
		t.Fatalf("failed to get value: %v", err)
	}

	if val != rtVal {
		t.Fatalf("expected: %v, actual: %v", val, rtVal)
	}
}

func TestStoreWriteAndReadResult(t *testing.T) {
	s, teardown, err := setupTestStore()
	if err != nil {
		t.Fatal(err)
	}
	defer teardown()

	key := "game-0"
	val := player.Result{
		Outcome: player.Won,
		Moves: []player.Move{
			{Cell: knowledge.Cell{Row: 0, Col: 0}, Clue: 1, Strategy: player.Blind},
			{Cell: knowledge.Cell{Row: 2, Col: 2}, Clue: 0, Strategy: player.Random},
		},
		MinesFound: 1,
	}
	if err = s.Set(key, val); err != nil {
		t.Fatalf("failed to set value: %v", err)
	}

	var rtVal player.Result
	if err = s.Get(key, &rtVal); err != nil {
		t.Fatalf("failed to get value: %v", err)
	}

	if !reflect.DeepEqual(val, rtVal) {
		t.Fatalf("expected: %v, actual: %v", val, rtVal)
	}
}

func TestStoreOverwrite(t *testing.T) {
	s, teardown, err := setupTestStore()
	if err != nil {
		t.Fatal(err)
	}
	defer teardown()

	if err = s.Set("key", 1); err != nil {
		t.Fatalf("failed to set value: %v", err)
	}
	if err = s.Set("key", 2); err != nil {
		t.Fatalf("failed to overwrite value: %v", err)
	}

	var val int
	if err = s.Get("key", &val); err != nil {
		t.Fatalf("failed to get value: %v", err)
	}
	if val != 2 {
		t.Fatalf("expected: 2, actual: %v", val)
	}
}

func TestStoreDelete(t *testing.T) {
	s, teardown, err := setupTestStore()
	if err != nil {
		t.Fatal(err)
	}
	defer teardown()

	if err = s.Set("key", 1); err != nil {
		t.Fatalf("failed to set value: %v", err)
	}
	if err = s.Delete("key"); err != nil {
		t.Fatalf("failed to delete value: %v", err)
	}
	if err = s.Get("key", nil); err != ErrNotFound {
		t.Fatalf("expected not found error, received %v", err)
	}
	// deleting a missing key is not an error
	if err = s.Delete("key"); err != nil {
		t.Fatalf("failed to delete missing key: %v", err)
	}
}

func TestStoreKeys(t *testing.T) {
	s, teardown, err := setupTestStore()
	if err != nil {
		t.Fatal(err)
	}
	defer teardown()

	want := []string{"a", "b", "c"}
	for _, key := range want {
		if err = s.Set(key, key); err != nil {
			t.Fatalf("failed to set value: %v", err)
		}
	}

	keys, err := s.Keys()
	if err != nil {
		t.Fatalf("failed to list keys: %v", err)
	}
	slices.Sort(keys)
	if !reflect.DeepEqual(want, keys) {
		t.Fatalf("expected: %v, actual: %v", want, keys)
	}
}
