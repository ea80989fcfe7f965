package local

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Storage struct {
	dir       string
	urlPrefix string
}

func New(dir, urlPrefix string) *Storage {
	return &Storage{dir: dir, urlPrefix: urlPrefix}
}

func (s *Storage) Save(_ context.Context, name string, data []byte) (string, error) {
	name = filepath.Base(name)
	if err := SaveFile(bytes.NewReader(data), filepath.Join(s.dir, name)); err != nil {
		return "", err
	}
	return s.urlPrefix + name, nil
}

// Delete removes the file behind ref. A file that is already gone is not an error.
func (s *Storage) Delete(_ context.Context, ref string) error {
	name, ok := strings.CutPrefix(ref, s.urlPrefix)
	if !ok || name == "" {
		return fmt.Errorf("not a local image reference: %s", ref)
	}
	err := DeleteFile(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func SaveFile(f io.Reader, path string) error {
	dir := filepath.Dir(path)
	err := os.MkdirAll(dir, 0770)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = io.Copy(file, f)
	if err != nil {
		return err
	}
	return nil
}

func DeleteFile(path string) error {
	return os.Remove(path)
}
