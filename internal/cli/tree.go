package cli

import (
	"path/filepath"

	"github.com/disiqueira/gotree/v3"
)

// fileTree renders slash-separated relative paths as a directory tree.
type fileTree struct {
	tree gotree.Tree
	dirs map[string]gotree.Tree
}

func newFileTree(rootLabel string) fileTree {
	return fileTree{tree: gotree.New(rootLabel), dirs: make(map[string]gotree.Tree)}
}

func (t fileTree) dir(dirPath string) gotree.Tree {
	if dirPath == "." {
		return t.tree
	}
	dir, ok := t.dirs[dirPath]
	if !ok {
		dir = t.dir(filepath.Dir(dirPath)).Add(filepath.Base(dirPath))
		t.dirs[dirPath] = dir
	}
	return dir
}

// insert adds the file at relPath with a label prefix such as "[3] ".
func (t fileTree) insert(relPath, prefix string) {
	t.dir(filepath.Dir(relPath)).Add(prefix + filepath.Base(relPath))
}

func (t fileTree) render() string {
	return t.tree.Print()
}
