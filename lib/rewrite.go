package lib

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// RewriteMakefiles walks root and replaces every occurrence of from with to
// in each file named exactly "Makefile", preserving file modes. Returns the
// paths that were rewritten. Files that do not contain the substring are
// left unwritten. Generated Makefiles reference the virtualenv bin
// directory, which is named Scripts on Windows.
func RewriteMakefiles(root, from, to string) ([]string, error) {
	var rewritten []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || d.Name() != "Makefile" {
			return nil
		}

		contents, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "reading %s", path)
		}

		if !bytes.Contains(contents, []byte(from)) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return errors.Wrapf(err, "stat %s", path)
		}

		replaced := bytes.ReplaceAll(contents, []byte(from), []byte(to))
		if err := os.WriteFile(path, replaced, info.Mode()); err != nil {
			return errors.Wrapf(err, "writing %s", path)
		}

		rewritten = append(rewritten, path)
		return nil
	})

	return rewritten, err
}
