package filesystem

import (
	"bytes"
	"os"
	"path/filepath"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

// encodeJSON renders v with sorted map keys, two-space indentation and a trailing newline.
// The result is owned by the caller.
func encodeJSON(v any) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	enc := sonic.ConfigStd.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, crerr.Wrap(err, "encode json")
	}
	return append([]byte(nil), buf.B...), nil
}

// writeFileAtomic replaces path with data via a sibling temp file. It reports false and leaves
// the file alone when the content is already identical.
func writeFileAtomic(path string, data []byte) (bool, error) {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, crerr.Wrapf(err, "create dir for %s", path)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return false, crerr.Wrapf(err, "write %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return false, crerr.Wrapf(err, "rename %s", tmp)
	}
	return true, nil
}
