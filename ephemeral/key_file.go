package ephemeral

import (
	"fmt"
	"os"
	"sync"

	"ebs-image-builder/collection"
)

var liveKeyFiles = struct {
	sync.Mutex
	files map[*KeyFile]struct{}
}{files: map[*KeyFile]struct{}{}}

// KeyFile is a private key written to local disk for the lifetime of one run
type KeyFile struct {
	path    string
	mutex   sync.Mutex
	removed bool
}

// WriteKeyFile stores material in a new file readable only by the current user
func WriteKeyFile(name string, material []byte) (*KeyFile, error) {
	f, err := os.CreateTemp("", name+"-*.pem")
	if err != nil {
		return nil, fmt.Errorf("creating key file: %w", err)
	}

	keyFile := &KeyFile{path: f.Name()}

	if err := f.Chmod(0o600); err != nil {
		_ = f.Close()
		_ = keyFile.Remove()
		return nil, fmt.Errorf("restricting key file permissions: %w", err)
	}

	if _, err := f.Write(material); err != nil {
		_ = f.Close()
		_ = keyFile.Remove()
		return nil, fmt.Errorf("writing key file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = keyFile.Remove()
		return nil, fmt.Errorf("closing key file: %w", err)
	}

	liveKeyFiles.Lock()
	liveKeyFiles.files[keyFile] = struct{}{}
	liveKeyFiles.Unlock()

	return keyFile, nil
}

func (k *KeyFile) Path() string {
	return k.path
}

// Remove deletes the file. Removing twice is not an error.
func (k *KeyFile) Remove() error {
	k.mutex.Lock()
	defer k.mutex.Unlock()

	if k.removed {
		return nil
	}

	err := os.Remove(k.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing key file %s: %w", k.path, err)
	}

	k.removed = true

	liveKeyFiles.Lock()
	delete(liveKeyFiles.files, k)
	liveKeyFiles.Unlock()

	return nil
}

// RemoveKeyFiles removes every key file written by this process which has not
// been removed yet. It is meant for signal handlers.
func RemoveKeyFiles() error {
	liveKeyFiles.Lock()
	files := make([]*KeyFile, 0, len(liveKeyFiles.files))
	for k := range liveKeyFiles.files {
		files = append(files, k)
	}
	liveKeyFiles.Unlock()

	errs := collection.Error{}
	for _, k := range files {
		errs.Add(k.Remove())
	}
	return errs.Error()
}
