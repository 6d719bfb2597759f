package venue

import (
	"bytes"
	"context"
	"fmt"

	common_models "go-eventcrm/internal/common/models"
	"go-eventcrm/internal/features/audit"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VenueService interface {
	CreateVenue(ctx context.Context) (*Venue, error)
	GetVenueByID(ctx context.Context, id string) (*Venue, error)
	ListVenues(ctx context.Context) ([]Venue, error)
	UpdateVenue(ctx context.Context, id string, venue *Venue) (*Venue, error)
	DeleteVenue(ctx context.Context, id string) error
	AssignPackages(ctx context.Context, id string, packageIDs []string) (*Venue, error)
	ExportExcel(ctx context.Context) (*bytes.Buffer, error)
}

type VenueServiceImpl struct {
	VenueRepo    VenueRepository
	AuditService audit.AuditService
}

func NewVenueService(venueRepo VenueRepository, auditService audit.AuditService) VenueService {
	return &VenueServiceImpl{
		VenueRepo:    venueRepo,
		AuditService: auditService,
	}
}

// CreateVenue materializes a placeholder document the operator edits
// afterwards. No input is taken.
func (s *VenueServiceImpl) CreateVenue(ctx context.Context) (*Venue, error) {
	venue := NewPlaceholderVenue()
	if err := s.VenueRepo.Create(ctx, venue); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, "venues", venue.ID.Hex(), map[string]common_models.Change{
		"name": {New: venue.Name},
	})

	return venue, nil
}

func (s *VenueServiceImpl) GetVenueByID(ctx context.Context, id string) (*Venue, error) {
	return s.VenueRepo.FindByID(ctx, id)
}

func (s *VenueServiceImpl) ListVenues(ctx context.Context) ([]Venue, error) {
	return s.VenueRepo.List(ctx)
}

func (s *VenueServiceImpl) UpdateVenue(ctx context.Context, id string, venue *Venue) (*Venue, error) {
	before, err := s.VenueRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.VenueRepo.Replace(ctx, id, venue); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "venues", id, map[string]common_models.Change{
		"name": {Old: before.Name, New: venue.Name},
	})

	return venue, nil
}

func (s *VenueServiceImpl) DeleteVenue(ctx context.Context, id string) error {
	venue, err := s.VenueRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.VenueRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, "venues", id, map[string]common_models.Change{
		"name": {Old: venue.Name},
	})

	return nil
}

func (s *VenueServiceImpl) AssignPackages(ctx context.Context, id string, packageIDs []string) (*Venue, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(packageIDs))
	for _, pid := range packageIDs {
		if oid, err := primitive.ObjectIDFromHex(pid); err == nil {
			objectIDs = append(objectIDs, oid)
		}
	}

	if err := s.VenueRepo.AssignPackages(ctx, id, objectIDs); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionAssign, "venues", id, map[string]common_models.Change{
		"assigned_package_ids": {New: packageIDs},
	})

	return s.VenueRepo.FindByID(ctx, id)
}

var exportHeaders = []string{
	"Name", "Address", "District", "Capacity Min", "Capacity Max",
	"Base Rental Fee", "Contact Person", "Contact Phone",
	"Price Per Person From", "Price Per Person To", "Alcohol Allowed",
	"Outside Catering", "Created At",
}

// ExportExcel renders the venue list as an xlsx workbook.
func (s *VenueServiceImpl) ExportExcel(ctx context.Context) (*bytes.Buffer, error) {
	venues, err := s.VenueRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Venues"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, v := range venues {
		values := []interface{}{
			v.Name, v.Address, v.District, v.CapacityMin, v.CapacityMax,
			v.BaseRentalFee, v.Contact.Person, v.Contact.Phone,
			v.Policies.PricePerPersonAznFrom, v.Policies.PricePerPersonAznTo,
			yesNo(v.Policies.AlcoholAllowed), yesNo(v.Policies.OutsideCateringOK),
			v.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
