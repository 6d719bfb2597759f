package repertoire

import (
	"context"
	"errors"
	"testing"

	common_models "go-eventcrm/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepertoireRepo struct {
	songs       map[string]*Song
	repertoires map[string]*Repertoire
}

func newFakeRepertoireRepo() *fakeRepertoireRepo {
	return &fakeRepertoireRepo{
		songs:       map[string]*Song{},
		repertoires: map[string]*Repertoire{},
	}
}

func (f *fakeRepertoireRepo) CreateSong(ctx context.Context, song *Song) error {
	song.ID = primitive.NewObjectID()
	f.songs[song.ID.Hex()] = song
	return nil
}

func (f *fakeRepertoireRepo) FindSongByID(ctx context.Context, id string) (*Song, error) {
	s, ok := f.songs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return s, nil
}

func (f *fakeRepertoireRepo) ListSongs(ctx context.Context) ([]Song, error) {
	out := make([]Song, 0, len(f.songs))
	for _, s := range f.songs {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeRepertoireRepo) UpdateSong(ctx context.Context, id string, song *Song) error {
	if _, ok := f.songs[id]; !ok {
		return mongo.ErrNoDocuments
	}
	f.songs[id] = song
	return nil
}

func (f *fakeRepertoireRepo) DeleteSongCascade(ctx context.Context, id string) error {
	song, ok := f.songs[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.songs, id)
	for _, rep := range f.repertoires {
		kept := make([]primitive.ObjectID, 0, len(rep.SongIDs))
		for _, ref := range rep.SongIDs {
			if ref != song.ID {
				kept = append(kept, ref)
			}
		}
		rep.SongIDs = kept
	}
	return nil
}

func (f *fakeRepertoireRepo) CreateRepertoire(ctx context.Context, rep *Repertoire) error {
	rep.ID = primitive.NewObjectID()
	f.repertoires[rep.ID.Hex()] = rep
	return nil
}

func (f *fakeRepertoireRepo) FindRepertoireByID(ctx context.Context, id string) (*Repertoire, error) {
	r, ok := f.repertoires[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return r, nil
}

func (f *fakeRepertoireRepo) ListRepertoires(ctx context.Context) ([]Repertoire, error) {
	out := make([]Repertoire, 0, len(f.repertoires))
	for _, r := range f.repertoires {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRepertoireRepo) UpdateRepertoire(ctx context.Context, id string, rep *Repertoire) error {
	if _, ok := f.repertoires[id]; !ok {
		return mongo.ErrNoDocuments
	}
	f.repertoires[id] = rep
	return nil
}

func (f *fakeRepertoireRepo) DeleteRepertoire(ctx context.Context, id string) error {
	if _, ok := f.repertoires[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.repertoires, id)
	return nil
}

type noopAudit struct{}

func (noopAudit) LogChange(ctx context.Context, action common_models.AuditAction, module, recordID string, changes map[string]common_models.Change) error {
	return nil
}

func (noopAudit) ListEntries(ctx context.Context, module string, limit int64) ([]common_models.AuditLog, error) {
	return nil, nil
}

func seedSongs(t *testing.T, svc RepertoireService, titles ...string) []primitive.ObjectID {
	t.Helper()
	ids := make([]primitive.ObjectID, 0, len(titles))
	for _, title := range titles {
		song, err := svc.CreateSong(context.Background(), &Song{Title: title})
		if err != nil {
			t.Fatalf("CreateSong(%q) error = %v", title, err)
		}
		ids = append(ids, song.ID)
	}
	return ids
}

func TestDeleteSongLeavesNoRepertoireReferences(t *testing.T) {
	repo := newFakeRepertoireRepo()
	svc := NewRepertoireService(repo, noopAudit{})
	ids := seedSongs(t, svc, "Sarı Gəlin", "Küçələrə su səpmişəm", "Ay Lachin")

	wedding, err := svc.CreateRepertoire(context.Background(), &Repertoire{Name: "Wedding", SongIDs: ids})
	if err != nil {
		t.Fatalf("CreateRepertoire() error = %v", err)
	}
	folk, err := svc.CreateRepertoire(context.Background(), &Repertoire{Name: "Folk", SongIDs: ids[:2]})
	if err != nil {
		t.Fatalf("CreateRepertoire() error = %v", err)
	}

	if err := svc.DeleteSong(context.Background(), ids[0].Hex()); err != nil {
		t.Fatalf("DeleteSong() error = %v", err)
	}
	if _, err := svc.GetSongByID(context.Background(), ids[0].Hex()); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("GetSongByID() after delete error = %v, want mongo.ErrNoDocuments", err)
	}

	// Re-fetched repertoires must not reference the deleted song, and
	// the surviving ids keep their order.
	for _, repID := range []string{wedding.ID.Hex(), folk.ID.Hex()} {
		rep, err := svc.GetRepertoireByID(context.Background(), repID)
		if err != nil {
			t.Fatalf("GetRepertoireByID(%s) error = %v", repID, err)
		}
		for _, ref := range rep.SongIDs {
			if ref == ids[0] {
				t.Errorf("repertoire %q still references deleted song %s", rep.Name, ids[0].Hex())
			}
		}
	}
	weddingAfter, _ := svc.GetRepertoireByID(context.Background(), wedding.ID.Hex())
	if len(weddingAfter.SongIDs) != 2 || weddingAfter.SongIDs[0] != ids[1] || weddingAfter.SongIDs[1] != ids[2] {
		t.Errorf("Wedding song_ids = %v, want [%s %s]", weddingAfter.SongIDs, ids[1].Hex(), ids[2].Hex())
	}

	if err := svc.DeleteSong(context.Background(), primitive.NewObjectID().Hex()); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("DeleteSong() on missing song error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestDeleteRepertoireKeepsSongs(t *testing.T) {
	repo := newFakeRepertoireRepo()
	svc := NewRepertoireService(repo, noopAudit{})
	ids := seedSongs(t, svc, "Sarı Gəlin")

	rep, err := svc.CreateRepertoire(context.Background(), &Repertoire{Name: "Wedding", SongIDs: ids})
	if err != nil {
		t.Fatalf("CreateRepertoire() error = %v", err)
	}

	if err := svc.DeleteRepertoire(context.Background(), rep.ID.Hex()); err != nil {
		t.Fatalf("DeleteRepertoire() error = %v", err)
	}

	if _, err := svc.GetSongByID(context.Background(), ids[0].Hex()); err != nil {
		t.Errorf("GetSongByID() after repertoire delete error = %v, songs must survive", err)
	}
}
