package canaries

import (
	"path/filepath"

	"github.com/enescakir/emoji"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Collector walks folders and gathers their signed messages.
type Collector struct {
	Log    logrus.FieldLogger
	Policy Policy
	// Jobs bounds how many folders are read at once. Anything below 2 reads
	// them one after another.
	Jobs int
}

// NewCollector returns a sequential collector using PolicyAll.
func NewCollector(log logrus.FieldLogger) *Collector {
	return &Collector{Log: log, Policy: PolicyAll, Jobs: 1}
}

// Collect returns the signed messages of every folder, folders in the order
// given and messages newest first within each folder. The error returned is
// the one from the earliest failing folder, whatever the number of jobs.
func (c *Collector) Collect(folders []string) ([]SignedMessage, error) {
	results := make([][]SignedMessage, len(folders))
	errs := make([]error, len(folders))

	if c.Jobs < 2 {
		for i, folder := range folders {
			results[i], errs[i] = c.CollectFolder(folder)
			if errs[i] != nil {
				return nil, errs[i]
			}
		}
	} else {
		var g errgroup.Group
		g.SetLimit(c.Jobs)
		for i, folder := range folders {
			g.Go(func() error {
				results[i], errs[i] = c.CollectFolder(folder)
				return nil
			})
		}
		_ = g.Wait()
	}

	var all []SignedMessage
	for i := range folders {
		if errs[i] != nil {
			return nil, errs[i]
		}
		all = append(all, results[i]...)
	}
	return all, nil
}

// CollectFolder scans one folder and loads each of its pairs.
func (c *Collector) CollectFolder(folder string) ([]SignedMessage, error) {
	sigs, err := ScanSignatures(folder)
	if err != nil {
		return nil, err
	}

	name := ""
	if c.Policy == PolicySingle {
		if len(sigs) > 1 {
			return nil, &InputError{Path: folder, Err: ErrTooManySignatures}
		}
		name = filepath.Base(filepath.Clean(folder))
	}

	c.Log.Infof("%v Found %d signature(s) in %s", emoji.OpenFileFolder, len(sigs), folder)

	msgs := make([]SignedMessage, 0, len(sigs))
	for _, sig := range sigs {
		msg, err := LoadPair(c.Log, sig, name)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}
