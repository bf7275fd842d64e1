package tokenio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jmswll/yoauth/constants"
	"github.com/jmswll/yoauth/models"
)

// ErrNoToken indicates that no token file exists yet.
var ErrNoToken = errors.New(constants.ErrMsgNoToken)

// ReadToken loads the persisted token record. Returns ErrNoToken if the file
// does not exist.
func ReadToken(path string) (models.TokenRecord, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.TokenRecord{}, ErrNoToken
	}
	if err != nil {
		return models.TokenRecord{}, err
	}

	var token models.TokenRecord
	if err := json.Unmarshal(data, &token); err != nil {
		return models.TokenRecord{}, fmt.Errorf("token file %s is not valid JSON: %w", path, err)
	}

	return token, nil
}

// WriteToken overwrites the token file with the given record.
func WriteToken(path string, token models.TokenRecord) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}

	return writeFileAtomic(path, data)
}

// WriteProfile persists a userinfo response body verbatim.
func WriteProfile(path string, body []byte) error {
	return writeFileAtomic(path, body)
}

// Delete removes the file at path. A file that is already gone is not an
// error.
func Delete(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path, so an interrupted write never leaves a partial file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}
