package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// File — адаптер плоского JSON-хранилища: одна коллекция в одном файле,
// каждая запись перезаписывает файл целиком. Два адаптера на одном пути
// не поддерживаются.
type File struct {
	path string
}

func NewFile(path string) *File { return &File{path: path} }

// Load читает коллекцию в v. Отсутствие файла — не ошибка:
// возвращается (false, nil), v остаётся пустым.
func (f *File) Load(v any) (bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, f.path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("%w: decode %s: %v", ErrStorageUnavailable, f.path, err)
	}
	return true, nil
}

// Save перезаписывает коллекцию: пишем во временный файл и переименовываем,
// чтобы при падении не остался обрезанный файл.
func (f *File) Save(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrStorageUnavailable, f.path, err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", ErrStorageUnavailable, f.path, err)
	}
	return nil
}
