package internal

import (
	"campaign-lab/domain"
	"campaign-lab/errors"
	"campaign-lab/repositories"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

// SeedCharacter is a character with its starting inventory.
type SeedCharacter struct {
	domain.Character
	Inventory []domain.Item `json:"inventory" validate:"dive"`
}

// SeedFile is the JSON document accepted by the seed command.
type SeedFile struct {
	Campaigns  []domain.CampaignContent `json:"campaigns" validate:"dive"`
	Characters []SeedCharacter          `json:"characters" validate:"dive"`
}

type SeedReport struct {
	Campaigns  int
	Characters int
	Items      int
}

// ReadSeedFile decodes and validates a seed document. Content is also checked
// for referential integrity before anything is written.
func ReadSeedFile(r io.Reader) (SeedFile, error) {
	var file SeedFile
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return SeedFile{}, fmt.Errorf("%w: %v", errors.ErrInvalidContent, err)
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(file); err != nil {
		return SeedFile{}, fmt.Errorf("%w: %v", errors.ErrInvalidContent, err)
	}
	for _, campaign := range file.Campaigns {
		if _, err := campaign.Snapshot(); err != nil {
			return SeedFile{}, err
		}
	}
	return file, nil
}

// Seed writes campaigns, characters and inventories. Stored campaigns are
// replaced as a whole.
func Seed(
	file SeedFile,
	content repositories.IContentRepository,
	characters repositories.ICharacterRepository,
	inventory repositories.IInventoryRepository,
) (SeedReport, error) {
	var report SeedReport
	for _, campaign := range file.Campaigns {
		if err := content.StoreCampaign(campaign); err != nil {
			return report, fmt.Errorf("campaign %s: %w", campaign.Campaign.ID, err)
		}
		report.Campaigns++
	}
	for _, character := range file.Characters {
		if err := characters.StoreCharacter(character.Character); err != nil {
			return report, fmt.Errorf("character %s: %w", character.ID, err)
		}
		report.Characters++
		if len(character.Inventory) == 0 {
			continue
		}
		if err := inventory.AddItems(character.ID, character.Inventory...); err != nil {
			return report, fmt.Errorf("inventory of %s: %w", character.ID, err)
		}
		report.Items += len(character.Inventory)
	}
	return report, nil
}
