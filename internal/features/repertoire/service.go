package repertoire

import (
	"context"

	common_models "go-eventcrm/internal/common/models"
	"go-eventcrm/internal/features/audit"
)

type RepertoireService interface {
	CreateSong(ctx context.Context, song *Song) (*Song, error)
	GetSongByID(ctx context.Context, id string) (*Song, error)
	ListSongs(ctx context.Context) ([]Song, error)
	UpdateSong(ctx context.Context, id string, song *Song) error
	DeleteSong(ctx context.Context, id string) error

	CreateRepertoire(ctx context.Context, rep *Repertoire) (*Repertoire, error)
	GetRepertoireByID(ctx context.Context, id string) (*Repertoire, error)
	ListRepertoires(ctx context.Context) ([]Repertoire, error)
	UpdateRepertoire(ctx context.Context, id string, rep *Repertoire) error
	DeleteRepertoire(ctx context.Context, id string) error
}

type RepertoireServiceImpl struct {
	Repo         RepertoireRepository
	AuditService audit.AuditService
}

func NewRepertoireService(repo RepertoireRepository, auditService audit.AuditService) RepertoireService {
	return &RepertoireServiceImpl{
		Repo:         repo,
		AuditService: auditService,
	}
}

func (s *RepertoireServiceImpl) CreateSong(ctx context.Context, song *Song) (*Song, error) {
	if err := s.Repo.CreateSong(ctx, song); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, "songs", song.ID.Hex(), map[string]common_models.Change{
		"title": {New: song.Title},
	})

	return song, nil
}

func (s *RepertoireServiceImpl) GetSongByID(ctx context.Context, id string) (*Song, error) {
	return s.Repo.FindSongByID(ctx, id)
}

func (s *RepertoireServiceImpl) ListSongs(ctx context.Context) ([]Song, error) {
	return s.Repo.ListSongs(ctx)
}

func (s *RepertoireServiceImpl) UpdateSong(ctx context.Context, id string, song *Song) error {
	if err := s.Repo.UpdateSong(ctx, id, song); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "songs", id, map[string]common_models.Change{
		"title": {New: song.Title},
	})

	return nil
}

func (s *RepertoireServiceImpl) DeleteSong(ctx context.Context, id string) error {
	song, err := s.Repo.FindSongByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Repo.DeleteSongCascade(ctx, id); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, "songs", id, map[string]common_models.Change{
		"title": {Old: song.Title},
	})

	return nil
}

func (s *RepertoireServiceImpl) CreateRepertoire(ctx context.Context, rep *Repertoire) (*Repertoire, error) {
	if err := s.Repo.CreateRepertoire(ctx, rep); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, "repertoires", rep.ID.Hex(), map[string]common_models.Change{
		"name": {New: rep.Name},
	})

	return rep, nil
}

func (s *RepertoireServiceImpl) GetRepertoireByID(ctx context.Context, id string) (*Repertoire, error) {
	return s.Repo.FindRepertoireByID(ctx, id)
}

func (s *RepertoireServiceImpl) ListRepertoires(ctx context.Context) ([]Repertoire, error) {
	return s.Repo.ListRepertoires(ctx)
}

func (s *RepertoireServiceImpl) UpdateRepertoire(ctx context.Context, id string, rep *Repertoire) error {
	if err := s.Repo.UpdateRepertoire(ctx, id, rep); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "repertoires", id, map[string]common_models.Change{
		"name": {New: rep.Name},
	})

	return nil
}

func (s *RepertoireServiceImpl) DeleteRepertoire(ctx context.Context, id string) error {
	rep, err := s.Repo.FindRepertoireByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Repo.DeleteRepertoire(ctx, id); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, "repertoires", id, map[string]common_models.Change{
		"name": {Old: rep.Name},
	})

	return nil
}
