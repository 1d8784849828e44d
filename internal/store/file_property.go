// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-deed-keeper/internal/identifier"
	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/models"
)

// filePropertyRepository is the flat-file implementation of
// [PropertyRepository]. The registry is a JSON array of entries
// (the data/id.json layout) that is re-read on every call, so manual edits
// are picked up, and rewritten atomically through a temp file and rename.
//
// All calls are serialized by mu.
type filePropertyRepository struct {
	path   string
	logger *logger.Logger
	now    func() time.Time

	mu sync.Mutex
}

// NewFilePropertyRepository opens the registry at path, creating an empty
// one (and its directory) when the file does not exist.
func NewFilePropertyRepository(path string, log *logger.Logger) (PropertyRepository, error) {
	r := &filePropertyRepository{
		path:   path,
		logger: log,
		now:    func() time.Time { return time.Now().UTC() },
	}
	if err := r.ensureFile(); err != nil {
		log.Err(err).Str("func", "NewFilePropertyRepository").Str("path", path).Msg("error creating registry file")
		return nil, err
	}

	log.Debug().Str("path", path).Msg("creating file property repository")
	return r, nil
}

func (r *filePropertyRepository) ensureFile() error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat registry file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create registry dir: %w", err)
	}
	return r.write([]models.PropertyEntry{})
}

// ExistingIDs implements [PropertyRepository].
func (r *filePropertyRepository) ExistingIDs(ctx context.Context) (identifier.IDSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	ids := identifier.NewIDSet()
	for _, e := range entries {
		ids.Add(e.IDHex)
	}
	return ids, nil
}

// Reserve implements [PropertyRepository].
func (r *filePropertyRepository) Reserve(ctx context.Context, entry models.PropertyEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(ctx)
	if err != nil {
		return err
	}
	if indexOf(entries, entry.IDHex) >= 0 {
		return ErrIdentifierTaken
	}

	if entry.CreatedAt == nil {
		now := r.now()
		entry.CreatedAt = &now
	}
	if entry.Images == nil {
		entry.Images = []string{}
	}
	entry.Confirmed = false

	return r.save(ctx, append(entries, entry))
}

// Confirm implements [PropertyRepository].
func (r *filePropertyRepository) Confirm(ctx context.Context, idHex, owner string) error {
	_, err := r.mutate(ctx, idHex, func(e *models.PropertyEntry) {
		applyConfirm(e, owner)
	})
	return err
}

// SetToken implements [PropertyRepository].
func (r *filePropertyRepository) SetToken(ctx context.Context, idHex, tokenAddress, owner string) (models.PropertyEntry, error) {
	return r.mutate(ctx, idHex, func(e *models.PropertyEntry) {
		applyToken(e, tokenAddress, owner)
	})
}

// UpdateDetails implements [PropertyRepository].
func (r *filePropertyRepository) UpdateDetails(ctx context.Context, idHex, housingValue string, images []string, owner string) (models.PropertyEntry, error) {
	return r.mutate(ctx, idHex, func(e *models.PropertyEntry) {
		applyDetails(e, housingValue, images, owner)
	})
}

func (r *filePropertyRepository) mutate(ctx context.Context, idHex string, fn func(*models.PropertyEntry)) (models.PropertyEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(ctx)
	if err != nil {
		return models.PropertyEntry{}, err
	}

	i := indexOf(entries, idHex)
	if i < 0 {
		entries = append(entries, newPropertyEntry(idHex, r.now()))
		i = len(entries) - 1
	}
	fn(&entries[i])

	if err := r.save(ctx, entries); err != nil {
		return models.PropertyEntry{}, err
	}
	return entries[i], nil
}

// Get implements [PropertyRepository].
func (r *filePropertyRepository) Get(ctx context.Context, idHex string) (models.PropertyEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(ctx)
	if err != nil {
		return models.PropertyEntry{}, err
	}

	i := indexOf(entries, idHex)
	if i < 0 {
		return models.PropertyEntry{}, ErrPropertyNotFound
	}
	return entries[i], nil
}

// List implements [PropertyRepository].
func (r *filePropertyRepository) List(ctx context.Context) ([]models.PropertyEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].IDHex < entries[j].IDHex })
	return entries, nil
}

// ReleaseExpired implements [PropertyRepository].
func (r *filePropertyRepository) ReleaseExpired(ctx context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(ctx)
	if err != nil {
		return 0, err
	}

	kept := entries[:0]
	var released int64
	for _, e := range entries {
		if !e.Confirmed && e.CreatedAt != nil && e.CreatedAt.Before(before) {
			released++
			continue
		}
		kept = append(kept, e)
	}

	if released == 0 {
		return 0, nil
	}
	if err := r.save(ctx, kept); err != nil {
		return 0, err
	}
	return released, nil
}

func indexOf(entries []models.PropertyEntry, idHex string) int {
	for i := range entries {
		if entries[i].IDHex == idHex {
			return i
		}
	}
	return -1
}

// load reads and normalizes the registry. A missing file is an empty
// registry; a file that is not a JSON array is [ErrRegistryCorrupt].
func (r *filePropertyRepository) load(ctx context.Context) ([]models.PropertyEntry, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.PropertyEntry{}, nil
		}
		log.Err(err).Str("func", "filePropertyRepository.load").Msg("error reading registry file")
		return nil, fmt.Errorf("read registry file: %w", err)
	}

	entries, err := decodeRegistry(data)
	if err != nil {
		log.Err(err).Str("func", "filePropertyRepository.load").Str("path", r.path).Msg("error decoding registry file")
		return nil, err
	}
	return entries, nil
}

func (r *filePropertyRepository) save(ctx context.Context, entries []models.PropertyEntry) error {
	if err := r.write(entries); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "filePropertyRepository.save").Msg("error writing registry file")
		return err
	}
	return nil
}

// write replaces the registry file atomically.
func (r *filePropertyRepository) write(entries []models.PropertyEntry) error {
	payload, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp registry file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp registry file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp registry file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace registry file: %w", err)
	}
	return nil
}

// decodeRegistry accepts every shape the registry has had over time:
// bare identifier strings, objects keyed by "idHex" or "id", numeric housing
// values and non-string images. Entries without a valid identifier are
// dropped. When an identifier occurs more than once the most complete entry
// (highest [models.PropertyEntry.Score]) wins, the first one on a tie.
func decodeRegistry(data []byte) ([]models.PropertyEntry, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []models.PropertyEntry{}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegistryCorrupt, err)
	}

	entries := make([]models.PropertyEntry, 0, len(raw))
	positions := make(map[string]int, len(raw))
	for _, item := range raw {
		entry, ok := normalizeEntry(item)
		if !ok {
			continue
		}

		if pos, seen := positions[entry.IDHex]; seen {
			if entry.Score() > entries[pos].Score() {
				entries[pos] = entry
			}
			continue
		}
		positions[entry.IDHex] = len(entries)
		entries = append(entries, entry)
	}

	return entries, nil
}

func normalizeEntry(item json.RawMessage) (models.PropertyEntry, bool) {
	var id string
	if err := json.Unmarshal(item, &id); err == nil {
		id = strings.ToUpper(strings.TrimSpace(id))
		if !identifier.IsValid(id) {
			return models.PropertyEntry{}, false
		}
		return models.PropertyEntry{IDHex: id, Images: []string{}, Confirmed: true}, true
	}

	var obj map[string]any
	if err := json.Unmarshal(item, &obj); err != nil || obj == nil {
		return models.PropertyEntry{}, false
	}

	id = looseString(obj["idHex"])
	if id == "" {
		id = looseString(obj["id"])
	}
	id = strings.ToUpper(strings.TrimSpace(id))
	if !identifier.IsValid(id) {
		return models.PropertyEntry{}, false
	}

	entry := models.PropertyEntry{
		IDHex:        id,
		Images:       []string{},
		HousingValue: looseString(obj["housingValue"]),
		TokenAddress: strictString(obj["tokenAddress"]),
		Owner:        strictString(obj["owner"]),
		Encrypted:    strictString(obj["encrypted"]),
		// Entries written before reservations existed were all confirmed.
		Confirmed: true,
	}

	if images, ok := obj["images"].([]any); ok {
		for _, img := range images {
			if s, ok := img.(string); ok {
				entry.Images = append(entry.Images, s)
			}
		}
	}
	if confirmed, ok := obj["confirmed"].(bool); ok {
		entry.Confirmed = confirmed
	}
	if createdAt, ok := obj["createdAt"].(string); ok {
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			entry.CreatedAt = &t
		}
	}

	return entry, true
}

// looseString renders strings and numbers, and drops anything else.
func looseString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	}
	return ""
}

func strictString(v any) string {
	s, _ := v.(string)
	return s
}
