package inpfile

import (
	"os"

	"github.com/google/uuid"
)

// WriteFileAtomic writes data to a uniquely named temporary file in
// the target directory, fsyncs it, and renames it over path. This
// prevents corruption from crashes mid-write.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp := path + "." + uuid.NewString() + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
