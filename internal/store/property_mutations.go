package store

import (
	"time"

	"github.com/MKhiriev/go-deed-keeper/models"
)

// Mutations shared by the SQL and flat-file repositories. Each of them
// implies the listing went on chain, so each marks the entry confirmed.

func newPropertyEntry(idHex string, now time.Time) models.PropertyEntry {
	return models.PropertyEntry{
		IDHex:     idHex,
		Images:    []string{},
		CreatedAt: &now,
	}
}

func applyConfirm(e *models.PropertyEntry, owner string) {
	e.Confirmed = true
	if owner != "" {
		e.Owner = owner
	}
}

func applyToken(e *models.PropertyEntry, tokenAddress, owner string) {
	applyConfirm(e, owner)
	if tokenAddress != "" {
		e.TokenAddress = tokenAddress
	}
}

func applyDetails(e *models.PropertyEntry, housingValue string, images []string, owner string) {
	applyConfirm(e, owner)
	if housingValue != "" {
		e.HousingValue = housingValue
	}
	if len(images) > MaxImagesPerUpdate {
		images = images[:MaxImagesPerUpdate]
	}
	for _, img := range images {
		if img != "" {
			e.Images = append(e.Images, img)
		}
	}
}
