// Package walker orchestrates the per-file Dumper/Applier pipeline over a
// directory tree (spec §4.5, the "Directory Walker" component — "not
// algorithmically interesting" on its own, but it owns the tree JSON
// shape and the deterministic-ordering policy).
package walker

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MyNameIsTrez/grugast/internal/applier"
	"github.com/MyNameIsTrez/grugast/internal/dumper"
	"github.com/MyNameIsTrez/grugast/internal/jsonvalue"
	"github.com/MyNameIsTrez/grugast/internal/parser"
	"github.com/MyNameIsTrez/grugast/internal/sourcefile"
	"github.com/maruel/natural"
)

// DumpTree walks rootDir and writes the tree-shaped JSON document of
// spec §6.2 ("Tree JSON") to w. Only files whose name ends in ext are
// included. When sortEntries is true, directory and file names within
// each directory are ordered with natural sort (§4.6's REDESIGN); when
// false, the host's raw directory iteration order is used as-is.
func DumpTree(w io.Writer, rootDir, ext string, sortEntries bool) error {
	bw := bufio.NewWriter(w)
	if err := dumpDir(bw, rootDir, ext, sortEntries); err != nil {
		return err
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}
	return bw.Flush()
}

func dumpDir(w *bufio.Writer, dir, ext string, sortEntries bool) error {
	f, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}
	entries, err := f.ReadDir(-1) // directory order, unlike os.ReadDir
	f.Close()
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var dirNames, fileNames []string
	for _, e := range entries {
		name := e.Name()
		if name == "." || name == ".." {
			continue
		}
		if e.IsDir() {
			dirNames = append(dirNames, name)
		} else if strings.HasSuffix(name, ext) {
			fileNames = append(fileNames, name)
		}
	}

	if sortEntries {
		sort.Slice(dirNames, func(i, j int) bool { return natural.Less(dirNames[i], dirNames[j]) })
		sort.Slice(fileNames, func(i, j int) bool { return natural.Less(fileNames[i], fileNames[j]) })
	}

	w.WriteString("{")
	wroteField := false

	if len(dirNames) > 0 {
		w.WriteString(`"dirs":{`)
		for i, name := range dirNames {
			if i > 0 {
				w.WriteString(",")
			}
			writeJSONKey(w, name)
			if err := dumpDir(w, filepath.Join(dir, name), ext, sortEntries); err != nil {
				return err
			}
		}
		w.WriteString("}")
		wroteField = true
	}

	if len(fileNames) > 0 {
		if wroteField {
			w.WriteString(",")
		}
		w.WriteString(`"files":{`)
		for i, name := range fileNames {
			if i > 0 {
				w.WriteString(",")
			}
			writeJSONKey(w, name)
			if err := dumpFileInto(w, filepath.Join(dir, name)); err != nil {
				return err
			}
		}
		w.WriteString("}")
	}

	w.WriteString("}")
	return nil
}

func writeJSONKey(w *bufio.Writer, name string) {
	w.WriteString(`"`)
	w.WriteString(dumper.EscapeString(name))
	w.WriteString(`":`)
}

func dumpFileInto(w *bufio.Writer, path string) error {
	src, err := sourcefile.Read(path)
	if err != nil {
		return err
	}
	p, err := parser.New(src)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	file, err := p.ParseFile()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := dumper.DumpFile(&buf, file); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	w.Write(bytes.TrimRight(buf.Bytes(), "\n"))
	return nil
}

// ApplyTree reconstructs a directory tree under rootDir from a tree-shaped
// JSON document (spec §6.2). Pre-existing directories are not an error
// (Property 4: mkdir idempotence). Only "files" entries whose key ends in
// ext are written out.
func ApplyTree(root *jsonvalue.Value, rootDir, ext string, opts applier.Options) error {
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", rootDir, err)
	}
	return applyDir(root, rootDir, ext, opts)
}

func applyDir(node *jsonvalue.Value, dir, ext string, opts applier.Options) error {
	if node == nil || node.Kind() != jsonvalue.KindObject {
		return fmt.Errorf("%s: expected a JSON object", dir)
	}

	keys := node.ObjectKeys()
	idx := 0
	var dirs, files *jsonvalue.Value

	if idx < len(keys) && keys[idx] == "dirs" {
		dirs = node.ObjectGet("dirs")
		if dirs.Kind() != jsonvalue.KindObject {
			return fmt.Errorf("%s: \"dirs\" must be an object", dir)
		}
		idx++
	}
	if idx < len(keys) && keys[idx] == "files" {
		files = node.ObjectGet("files")
		if files.Kind() != jsonvalue.KindObject {
			return fmt.Errorf("%s: \"files\" must be an object", dir)
		}
		idx++
	}
	if idx != len(keys) {
		return fmt.Errorf("%s: unexpected field %q (expected only \"dirs\" then \"files\")", dir, keys[idx])
	}

	if dirs != nil {
		for _, name := range dirs.ObjectKeys() {
			childDir := filepath.Join(dir, name)
			if err := os.MkdirAll(childDir, 0o755); err != nil {
				return fmt.Errorf("creating directory %s: %w", childDir, err)
			}
			if err := applyDir(dirs.ObjectGet(name), childDir, ext, opts); err != nil {
				return err
			}
		}
	}

	if files != nil {
		for _, name := range files.ObjectKeys() {
			if !strings.HasSuffix(name, ext) {
				continue
			}
			var buf bytes.Buffer
			if err := applier.ApplyFile(&buf, files.ObjectGet(name), opts); err != nil {
				return fmt.Errorf("%s: %w", filepath.Join(dir, name), err)
			}
			if err := sourcefile.Write(filepath.Join(dir, name), buf.String()); err != nil {
				return err
			}
		}
	}

	return nil
}
