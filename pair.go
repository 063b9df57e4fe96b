package canaries

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/enescakir/emoji"
	"github.com/sirupsen/logrus"
)

// LoadPair reads a signature and the message it signs. The record is named
// name, or after the message path when name is empty.
func LoadPair(log logrus.FieldLogger, sig Signature, name string) (SignedMessage, error) {
	messagePath := MessagePath(sig.Path)

	info, err := os.Stat(messagePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return SignedMessage{}, &InputError{Path: messagePath, Err: ErrMissingMessage}
		}
		return SignedMessage{}, fmt.Errorf("failed to stat %s: %w", messagePath, err)
	}
	if !info.Mode().IsRegular() {
		return SignedMessage{}, &InputError{Path: messagePath, Err: fmt.Errorf("%w: not a regular file", ErrMissingMessage)}
	}

	message, err := readText(messagePath)
	if err != nil {
		return SignedMessage{}, err
	}
	signature, err := readText(sig.Path)
	if err != nil {
		return SignedMessage{}, err
	}

	if name == "" {
		name = messagePath
	}
	log.Infof("%v Loaded %s with signature %s", emoji.Memo, messagePath, sig.Path)

	return SignedMessage{
		Name:      name,
		Message:   message,
		Signature: signature,
		Created:   sig.Created,
	}, nil
}

// readText reads a whole file and insists it is UTF-8.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("failed to read %s: not valid UTF-8", path)
	}
	return string(data), nil
}
