package player

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
)

const saveFileExt = ".yaml"

type fileRepository struct {
	dir   string
	clock clock.Clock
}

// FileConfig contains configuration for the YAML file player repository.
type FileConfig struct {
	// Dir holds one <id>.yaml file per player. It is created on first save.
	Dir   string
	Clock clock.Clock
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Dir", cfg.Dir, vb)
	return vb.Build()
}

// NewFile creates a player repository that keeps saves as YAML files
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &fileRepository{
		dir:   cfg.Dir,
		clock: c,
	}, nil
}

func (r *fileRepository) path(id string) (string, error) {
	if id == "" {
		return "", errors.InvalidArgument(errPlayerIDEmpty)
	}
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", errors.InvalidArgumentf("player ID %q cannot be used as a file name", id)
	}
	return filepath.Join(r.dir, id+saveFileExt), nil
}

func (r *fileRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}
	path, err := r.path(input.PlayerData.ID)
	if err != nil {
		return nil, err
	}

	saved := *input.PlayerData
	saved.SavedAt = r.clock.Now()

	data, err := yaml.Marshal(&saved)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player data")
	}

	if err := os.MkdirAll(r.dir, 0o750); err != nil {
		return nil, errors.Wrapf(err, "failed to create save directory")
	}

	// A save is replaced in one rename.
	tmp, err := os.CreateTemp(r.dir, saved.ID+".*.tmp")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create save file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return nil, errors.Wrapf(err, "failed to write save file")
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to write save file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return nil, errors.Wrapf(err, "failed to save player")
	}

	slog.DebugContext(ctx, "Saved player",
		"player_id", saved.ID,
		"path", path,
	)
	return &SaveOutput{PlayerData: &saved}, nil
}

func (r *fileRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	path, err := r.path(input.ID)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("player with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to read save file")
	}

	var data entities.PlayerData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "saved player %s is corrupt", input.ID)
	}
	if data.ID != input.ID {
		return nil, errors.DataLossf("saved player %s holds data for %q", input.ID, data.ID)
	}

	return &GetOutput{PlayerData: &data}, nil
}

func (r *fileRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	path, err := r.path(input.ID)
	if err != nil {
		return nil, err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("player with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to delete save file")
	}
	return &DeleteOutput{}, nil
}

func (r *fileRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &ListOutput{IDs: []string{}}, nil
		}
		return nil, errors.Wrapf(err, "failed to list save directory")
	}

	ids := []string{}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != saveFileExt {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), saveFileExt))
	}
	sort.Strings(ids)

	return &ListOutput{IDs: ids}, nil
}
