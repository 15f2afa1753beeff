package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return db
}

func sampleWords() []Word {
	return []Word{
		{ID: "1", Word: "cat", Definitions: []string{"cat", "feline animal"}, Notes: ""},
		{ID: "2", Word: "dog", Definitions: []string{"dog", "canine animal"}, Notes: "loyal", ImgURL: "https://example.com/dog.png"},
		{ID: "3", Word: "", Definitions: []string{}},
	}
}

func TestNewWordRepo(t *testing.T) {
	db := newTestDB(t)

	tests := []struct {
		name     string
		slot     string
		wantSlot string
	}{
		{name: "default slot", slot: "", wantSlot: DefaultSlot},
		{name: "custom slot", slot: "deck-2", wantSlot: "deck-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewWordRepo(db, tt.slot)
			if repo == nil {
				t.Fatal("NewWordRepo() returned nil")
			}
			if repo.Slot() != tt.wantSlot {
				t.Errorf("Slot() = %q, want %q", repo.Slot(), tt.wantSlot)
			}
		})
	}
}

func TestWordRepo_LoadEmpty(t *testing.T) {
	repo := NewWordRepo(newTestDB(t), "")

	words, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if words == nil || len(words) != 0 {
		t.Errorf("Load() = %#v, want empty non-nil list", words)
	}
}

func TestWordRepo_SaveLoadRoundTrip(t *testing.T) {
	repo := NewWordRepo(newTestDB(t), "")
	ctx := context.Background()

	want := sampleWords()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %#v, want %#v", got, want)
	}
}

func TestWordRepo_SaveReplaces(t *testing.T) {
	repo := NewWordRepo(newTestDB(t), "")
	ctx := context.Background()

	if err := repo.Save(ctx, sampleWords()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	replacement := []Word{{ID: "9", Word: "elk", Definitions: []string{"elk", "large deer"}}}
	if err := repo.Save(ctx, replacement); err != nil {
		t.Fatalf("Save() second call error = %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, replacement) {
		t.Errorf("Load() = %#v, want %#v", got, replacement)
	}
}

func TestWordRepo_SlotsAreIndependent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first := NewWordRepo(db, "first")
	second := NewWordRepo(db, "second")

	if err := first.Save(ctx, sampleWords()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := second.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load() on other slot returned %d words, want 0", len(got))
	}
}

func TestWordRepo_LoadMalformed(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "not json", value: "{{{"},
		{name: "wrong shape", value: `{"word":"cat"}`},
		{name: "null", value: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			repo := NewWordRepo(db, "")

			if _, err := db.Exec("INSERT INTO slots (name, value) VALUES (?, ?)", DefaultSlot, tt.value); err != nil {
				t.Fatalf("insert slot: %v", err)
			}

			words, err := repo.Load(context.Background())
			if err != nil {
				t.Fatalf("Load() error = %v, want nil", err)
			}
			if words == nil || len(words) != 0 {
				t.Errorf("Load() = %#v, want empty list", words)
			}
		})
	}
}

func TestWordRepo_UpdateNotes(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		index   int
		notes   string
		wantErr error
	}{
		{name: "first entry", index: 0, notes: "irregular plural"},
		{name: "last entry", index: 2, notes: "placeholder row"},
		{name: "negative index", index: -1, notes: "x", wantErr: ErrIndexOutOfRange},
		{name: "past the end", index: 3, notes: "x", wantErr: ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewWordRepo(newTestDB(t), "")
			if err := repo.Save(ctx, sampleWords()); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			err := repo.UpdateNotes(ctx, tt.index, tt.notes)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UpdateNotes() error = %v, want %v", err, tt.wantErr)
				}
				got, _ := repo.Load(ctx)
				if !reflect.DeepEqual(got, sampleWords()) {
					t.Error("UpdateNotes() modified the slot on failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateNotes() error = %v", err)
			}

			got, err := repo.Load(ctx)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			want := sampleWords()
			want[tt.index].Notes = tt.notes
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Load() = %#v, want %#v", got, want)
			}
		})
	}
}

func TestWordRepo_UpdateNotesEmptySlot(t *testing.T) {
	repo := NewWordRepo(newTestDB(t), "")

	err := repo.UpdateNotes(context.Background(), 0, "notes")
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("UpdateNotes() error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestWordRepo_Ping(t *testing.T) {
	repo := NewWordRepo(newTestDB(t), "")
	if err := repo.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestReadError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &ReadError{Slot: "words", Err: cause}

	if got, want := err.Error(), `malformed slot "words": unexpected end of JSON input`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("ReadError should unwrap to its cause")
	}
}

func TestCloneWords(t *testing.T) {
	src := sampleWords()
	clone := CloneWords(src)

	if !reflect.DeepEqual(clone, src) {
		t.Fatalf("CloneWords() = %#v, want %#v", clone, src)
	}
	clone[0].Definitions[0] = "changed"
	if src[0].Definitions[0] != "cat" {
		t.Error("CloneWords() shares definition slices with the source")
	}
	if CloneWords(nil) != nil {
		t.Error("CloneWords(nil) should return nil")
	}
}
