package menu

import (
	"context"
	"errors"
	"testing"

	common_models "go-eventcrm/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeMenuRepo struct {
	items    map[string]*MenuItem
	packages map[string]*MenuPackage
	cascaded []string
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{
		items:    map[string]*MenuItem{},
		packages: map[string]*MenuPackage{},
	}
}

func (f *fakeMenuRepo) CreateItem(ctx context.Context, item *MenuItem) error {
	item.ID = primitive.NewObjectID()
	f.items[item.ID.Hex()] = item
	return nil
}

func (f *fakeMenuRepo) FindItemByID(ctx context.Context, id string) (*MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeMenuRepo) ListItems(ctx context.Context) ([]MenuItem, error) {
	out := make([]MenuItem, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, *item)
	}
	return out, nil
}

func (f *fakeMenuRepo) CountItemsByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := f.items[id.Hex()]; ok {
			n++
		}
	}
	return n, nil
}

func (f *fakeMenuRepo) UpdateItem(ctx context.Context, id string, item *MenuItem) error {
	if _, ok := f.items[id]; !ok {
		return mongo.ErrNoDocuments
	}
	f.items[id] = item
	return nil
}

func (f *fakeMenuRepo) DeleteItemCascade(ctx context.Context, id string) error {
	item, ok := f.items[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.items, id)
	for _, pkg := range f.packages {
		kept := make([]primitive.ObjectID, 0, len(pkg.ItemIDs))
		for _, ref := range pkg.ItemIDs {
			if ref != item.ID {
				kept = append(kept, ref)
			}
		}
		pkg.ItemIDs = kept
	}
	f.cascaded = append(f.cascaded, id)
	return nil
}

func (f *fakeMenuRepo) CreatePackage(ctx context.Context, pkg *MenuPackage) error {
	pkg.ID = primitive.NewObjectID()
	f.packages[pkg.ID.Hex()] = pkg
	return nil
}

func (f *fakeMenuRepo) FindPackageByID(ctx context.Context, id string) (*MenuPackage, error) {
	pkg, ok := f.packages[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return pkg, nil
}

func (f *fakeMenuRepo) ListPackages(ctx context.Context) ([]MenuPackage, error) {
	out := make([]MenuPackage, 0, len(f.packages))
	for _, pkg := range f.packages {
		out = append(out, *pkg)
	}
	return out, nil
}

func (f *fakeMenuRepo) UpdatePackage(ctx context.Context, id string, pkg *MenuPackage) error {
	if _, ok := f.packages[id]; !ok {
		return mongo.ErrNoDocuments
	}
	f.packages[id] = pkg
	return nil
}

func (f *fakeMenuRepo) DeletePackage(ctx context.Context, id string) error {
	if _, ok := f.packages[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.packages, id)
	return nil
}

type noopAudit struct{}

func (noopAudit) LogChange(ctx context.Context, action common_models.AuditAction, module, recordID string, changes map[string]common_models.Change) error {
	return nil
}

func (noopAudit) ListEntries(ctx context.Context, module string, limit int64) ([]common_models.AuditLog, error) {
	return nil, nil
}

func seedItems(t *testing.T, repo *fakeMenuRepo, names ...string) []primitive.ObjectID {
	t.Helper()
	ids := make([]primitive.ObjectID, 0, len(names))
	for _, name := range names {
		item := &MenuItem{Name: name}
		if err := repo.CreateItem(context.Background(), item); err != nil {
			t.Fatalf("CreateItem(%q) error = %v", name, err)
		}
		ids = append(ids, item.ID)
	}
	return ids
}

func TestCreatePackageValidatesItemIDs(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewMenuService(repo, noopAudit{})
	ids := seedItems(t, repo, "Dolma", "Plov")

	tests := []struct {
		name    string
		itemIDs []primitive.ObjectID
		wantErr error
	}{
		{"Empty package is fine", nil, nil},
		{"All known items", ids, nil},
		{"Unknown item rejected", append([]primitive.ObjectID{primitive.NewObjectID()}, ids...), ErrUnknownItems},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePackage(context.Background(), &MenuPackage{Name: "Standard", ItemIDs: tt.itemIDs})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreatePackage() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdatePackageValidatesItemIDs(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewMenuService(repo, noopAudit{})
	ids := seedItems(t, repo, "Dolma")

	pkg, err := svc.CreatePackage(context.Background(), &MenuPackage{Name: "Standard", ItemIDs: ids})
	if err != nil {
		t.Fatalf("CreatePackage() error = %v", err)
	}

	bad := &MenuPackage{Name: "Standard", ItemIDs: []primitive.ObjectID{primitive.NewObjectID()}}
	if err := svc.UpdatePackage(context.Background(), pkg.ID.Hex(), bad); !errors.Is(err, ErrUnknownItems) {
		t.Errorf("UpdatePackage() error = %v, want ErrUnknownItems", err)
	}

	stored, _ := repo.FindPackageByID(context.Background(), pkg.ID.Hex())
	if len(stored.ItemIDs) != 1 || stored.ItemIDs[0] != ids[0] {
		t.Errorf("stored item_ids = %v, want unchanged %v", stored.ItemIDs, ids)
	}
}

func TestDeleteItemLeavesNoPackageReferences(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := NewMenuService(repo, noopAudit{})
	ids := seedItems(t, repo, "Dolma", "Plov", "Qutab")

	standard, err := svc.CreatePackage(context.Background(), &MenuPackage{Name: "Standard", ItemIDs: ids})
	if err != nil {
		t.Fatalf("CreatePackage() error = %v", err)
	}
	light, err := svc.CreatePackage(context.Background(), &MenuPackage{Name: "Light", ItemIDs: ids[:2]})
	if err != nil {
		t.Fatalf("CreatePackage() error = %v", err)
	}

	if err := svc.DeleteItem(context.Background(), ids[0].Hex()); err != nil {
		t.Fatalf("DeleteItem() error = %v", err)
	}
	if len(repo.cascaded) != 1 || repo.cascaded[0] != ids[0].Hex() {
		t.Errorf("cascade calls = %v, want one for %s", repo.cascaded, ids[0].Hex())
	}

	// Re-fetched packages must not reference the deleted item anymore.
	for _, pkgID := range []string{standard.ID.Hex(), light.ID.Hex()} {
		pkg, err := svc.GetPackageByID(context.Background(), pkgID)
		if err != nil {
			t.Fatalf("GetPackageByID(%s) error = %v", pkgID, err)
		}
		for _, ref := range pkg.ItemIDs {
			if ref == ids[0] {
				t.Errorf("package %q still references deleted item %s", pkg.Name, ids[0].Hex())
			}
		}
	}
	standardAfter, _ := svc.GetPackageByID(context.Background(), standard.ID.Hex())
	if len(standardAfter.ItemIDs) != 2 {
		t.Errorf("Standard item_ids = %v, want the two surviving items", standardAfter.ItemIDs)
	}

	if err := svc.DeleteItem(context.Background(), primitive.NewObjectID().Hex()); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("DeleteItem() on missing item error = %v, want mongo.ErrNoDocuments", err)
	}
}
