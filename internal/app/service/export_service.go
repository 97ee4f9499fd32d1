package service

import (
	"fmt"

	"github.com/Circulx/Profile-management/internal/app/repository"
	"github.com/Circulx/Profile-management/pkg/logger"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Profiles"

type ExportService interface {
	ExportProfiles() (*excelize.File, error)
}

type exportService struct {
	profileRepo repository.ProfileRepository
}

func NewExportService(profileRepo repository.ProfileRepository) ExportService {
	return &exportService{profileRepo: profileRepo}
}

// ExportProfiles builds an xlsx workbook of all business profiles,
// newest first, for the ops review queue.
func (s *exportService) ExportProfiles() (*excelize.File, error) {
	profiles, err := s.profileRepo.List()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", exportSheet)

	headers := []string{
		"Business ID", "Legal Entity Name", "Trade Name", "GSTIN",
		"Entity Type", "Country", "State", "City", "Pincode",
		"Status", "Created At",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for rowIdx, profile := range profiles {
		row := []interface{}{
			profile.BusinessID,
			profile.LegalEntityName,
			profile.TradeName,
			profile.GSTIN,
			profile.BusinessEntityType,
			profile.Country,
			profile.State,
			profile.City,
			profile.Pincode,
			string(profile.Status),
			profile.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write export row %d: %w", rowIdx+2, err)
			}
		}
	}

	logger.Info("Profile export workbook built", map[string]interface{}{
		"profiles": len(profiles),
	})
	return f, nil
}
