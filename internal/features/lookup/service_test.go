package lookup

import (
	"context"
	"errors"
	"reflect"
	"testing"

	common_models "go-eventcrm/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type fakeLookupRepo struct {
	lookups map[string]*Lookup
}

func newFakeLookupRepo() *fakeLookupRepo {
	return &fakeLookupRepo{lookups: map[string]*Lookup{}}
}

func (f *fakeLookupRepo) Create(ctx context.Context, lookup *Lookup) error {
	lookup.ID = primitive.NewObjectID()
	if lookup.Values == nil {
		lookup.Values = []string{}
	}
	f.lookups[lookup.ID.Hex()] = lookup
	return nil
}

func (f *fakeLookupRepo) FindByID(ctx context.Context, id string) (*Lookup, error) {
	l, ok := f.lookups[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return l, nil
}

func (f *fakeLookupRepo) FindByKey(ctx context.Context, key string) (*Lookup, error) {
	for _, l := range f.lookups {
		if l.Key == key {
			return l, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeLookupRepo) List(ctx context.Context) ([]Lookup, error) {
	out := make([]Lookup, 0, len(f.lookups))
	for _, l := range f.lookups {
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeLookupRepo) Rename(ctx context.Context, id string, name string) error {
	l, ok := f.lookups[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	l.Name = name
	return nil
}

func (f *fakeLookupRepo) ReplaceValues(ctx context.Context, id string, values []string) error {
	l, ok := f.lookups[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	l.Values = values
	return nil
}

func (f *fakeLookupRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.lookups[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.lookups, id)
	return nil
}

type fakeCleaner struct {
	unsetKeys []string
	cleaned   int64
}

func (f *fakeCleaner) UnsetCustomField(ctx context.Context, key string) (int64, error) {
	f.unsetKeys = append(f.unsetKeys, key)
	return f.cleaned, nil
}

type noopAudit struct{}

func (noopAudit) LogChange(ctx context.Context, action common_models.AuditAction, module, recordID string, changes map[string]common_models.Change) error {
	return nil
}

func (noopAudit) ListEntries(ctx context.Context, module string, limit int64) ([]common_models.AuditLog, error) {
	return nil, nil
}

func newTestService(repo LookupRepository, cleaner CustomFieldCleaner, cascade bool) LookupService {
	return NewLookupService(repo, cleaner, noopAudit{}, zap.NewNop(), cascade)
}

func TestCreateLookupDerivesKey(t *testing.T) {
	svc := newTestService(newFakeLookupRepo(), &fakeCleaner{}, false)

	tests := []struct {
		name    string
		in      string
		wantKey string
	}{
		{"Simple", "Cuisine", "cuisine"},
		{"Spaces collapse", "Event  Type", "event_type"},
		{"Trims input", "  Facilities  ", "facilities"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := svc.CreateLookup(context.Background(), tt.in)
			if err != nil {
				t.Fatalf("CreateLookup(%q) error = %v", tt.in, err)
			}
			if l.Key != tt.wantKey {
				t.Errorf("key = %q, want %q", l.Key, tt.wantKey)
			}
			if l.ID.IsZero() {
				t.Error("expected an assigned id")
			}
		})
	}
}

func TestCreateLookupRejectsDuplicateKey(t *testing.T) {
	svc := newTestService(newFakeLookupRepo(), &fakeCleaner{}, false)

	if _, err := svc.CreateLookup(context.Background(), "Event Type"); err != nil {
		t.Fatalf("first CreateLookup() error = %v", err)
	}

	// Different casing and spacing, same derived key.
	if _, err := svc.CreateLookup(context.Background(), "event  type"); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("CreateLookup() error = %v, want ErrDuplicateKey", err)
	}
}

func TestCreateLookupRejectsEmptyName(t *testing.T) {
	svc := newTestService(newFakeLookupRepo(), &fakeCleaner{}, false)

	for _, in := range []string{"", "   ", "!!!"} {
		if _, err := svc.CreateLookup(context.Background(), in); !errors.Is(err, ErrEmptyName) {
			t.Errorf("CreateLookup(%q) error = %v, want ErrEmptyName", in, err)
		}
	}
}

func TestReplaceValues(t *testing.T) {
	repo := newFakeLookupRepo()
	svc := newTestService(repo, &fakeCleaner{}, false)

	l, err := svc.CreateLookup(context.Background(), "Cuisine")
	if err != nil {
		t.Fatalf("CreateLookup() error = %v", err)
	}

	got, err := svc.ReplaceValues(context.Background(), l.ID.Hex(), []string{" Italian ", "Georgian", "", "French"})
	if err != nil {
		t.Fatalf("ReplaceValues() error = %v", err)
	}

	want := []string{"Italian", "Georgian", "French"}
	if !reflect.DeepEqual(got.Values, want) {
		t.Errorf("values = %v, want %v", got.Values, want)
	}
}

func TestReplaceValuesRejectsCaseInsensitiveDuplicates(t *testing.T) {
	repo := newFakeLookupRepo()
	svc := newTestService(repo, &fakeCleaner{}, false)

	l, err := svc.CreateLookup(context.Background(), "Cuisine")
	if err != nil {
		t.Fatalf("CreateLookup() error = %v", err)
	}

	if _, err := svc.ReplaceValues(context.Background(), l.ID.Hex(), []string{"Italian", "italian"}); !errors.Is(err, ErrDuplicateValues) {
		t.Errorf("ReplaceValues() error = %v, want ErrDuplicateValues", err)
	}

	// Nothing written on rejection.
	stored, _ := repo.FindByID(context.Background(), l.ID.Hex())
	if len(stored.Values) != 0 {
		t.Errorf("values = %v, want unchanged empty list", stored.Values)
	}
}

func TestRenameKeepsKey(t *testing.T) {
	repo := newFakeLookupRepo()
	svc := newTestService(repo, &fakeCleaner{}, false)

	l, err := svc.CreateLookup(context.Background(), "Event Type")
	if err != nil {
		t.Fatalf("CreateLookup() error = %v", err)
	}

	if err := svc.RenameLookup(context.Background(), l.ID.Hex(), "Occasion"); err != nil {
		t.Fatalf("RenameLookup() error = %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), l.ID.Hex())
	if stored.Name != "Occasion" {
		t.Errorf("name = %q, want %q", stored.Name, "Occasion")
	}
	if stored.Key != "event_type" {
		t.Errorf("key = %q, want key untouched by rename", stored.Key)
	}
}

func TestDeleteLookupCascade(t *testing.T) {
	tests := []struct {
		name       string
		cascade    bool
		wantUnsets int
	}{
		{"Cascade disabled leaves venues alone", false, 0},
		{"Cascade enabled unsets the key", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeLookupRepo()
			cleaner := &fakeCleaner{cleaned: 3}
			svc := newTestService(repo, cleaner, tt.cascade)

			l, err := svc.CreateLookup(context.Background(), "Cuisine")
			if err != nil {
				t.Fatalf("CreateLookup() error = %v", err)
			}

			if err := svc.DeleteLookup(context.Background(), l.ID.Hex()); err != nil {
				t.Fatalf("DeleteLookup() error = %v", err)
			}

			if len(cleaner.unsetKeys) != tt.wantUnsets {
				t.Errorf("unset calls = %d, want %d", len(cleaner.unsetKeys), tt.wantUnsets)
			}
			if tt.cascade && cleaner.unsetKeys[0] != "cuisine" {
				t.Errorf("unset key = %q, want %q", cleaner.unsetKeys[0], "cuisine")
			}
			if _, err := repo.FindByID(context.Background(), l.ID.Hex()); err == nil {
				t.Error("lookup still present after delete")
			}
		})
	}
}
