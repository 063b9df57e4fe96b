package canaries

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Signature is a .sig file found while scanning a folder.
type Signature struct {
	Path    string
	Created time.Time
}

// ScanSignatures lists the .sig files directly inside folder, newest first.
//
// Creation time comes from the filesystem and is best effort: copies and
// some filesystems don't keep it. Equal timestamps fall back to name order
// so repeated runs over the same tree always agree.
func ScanSignatures(folder string) ([]Signature, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", folder, err)
	}

	sigs := make([]Signature, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), SignatureSuffix) {
			continue
		}
		path := filepath.Join(folder, entry.Name())
		created, err := creationTime(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		sigs = append(sigs, Signature{Path: path, Created: created})
	}

	if len(sigs) == 0 {
		return nil, &InputError{Path: folder, Err: ErrNoSignatures}
	}

	sortNewestFirst(sigs)
	return sigs, nil
}

// sortNewestFirst orders by creation time descending, then by path.
func sortNewestFirst(sigs []Signature) {
	sort.Slice(sigs, func(i, j int) bool {
		if !sigs[i].Created.Equal(sigs[j].Created) {
			return sigs[i].Created.After(sigs[j].Created)
		}
		return sigs[i].Path < sigs[j].Path
	})
}
