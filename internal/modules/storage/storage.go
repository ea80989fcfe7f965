package storage

import (
	"context"
	"fmt"

	"github.com/reusedev/plant-hub/config"
	"github.com/reusedev/plant-hub/internal/modules/storage/ali"
	"github.com/reusedev/plant-hub/internal/modules/storage/local"
)

// ImageSaver stores uploaded photos and returns the reference kept in the history.
type ImageSaver interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
	Delete(ctx context.Context, ref string) error
}

var GSaver ImageSaver

func Init(cfg *config.Config) error {
	switch cfg.StorageSupplier {
	case config.StorageLocal:
		GSaver = local.New(cfg.Local.UploadDir, cfg.Local.URLPrefix)
	case config.StorageAliOss:
		GSaver = ali.InitOSS(cfg.AliOss)
	default:
		return fmt.Errorf("unknown storage supplier %q", cfg.StorageSupplier)
	}
	return nil
}
