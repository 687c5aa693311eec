// Package codebase tracks the PDDL files of a workspace and answers the
// editor-facing queries against them.
package codebase

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/pddls/pddls/pddl"
	"github.com/pddls/pddls/pddl/completion"
	"github.com/pddls/pddls/pddl/parser"
)

type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
	engine  *completion.Engine
}

// FileInfo is the parsed snapshot of one file. Tree and Info are replaced
// wholesale on every update and never mutated in place, so readers may hold
// them across lock boundaries.
type FileInfo struct {
	Path    string
	Content []byte
	Tree    *parser.Tree
	Info    *pddl.DomainInfo
}

func New(rootDir string) *Codebase {
	return &Codebase{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
		engine:  completion.NewEngine(),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

func (c *Codebase) Engine() *completion.Engine {
	return c.engine
}

func (c *Codebase) ScanAll() error {
	return filepath.Walk(c.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) == ".pddl" {
			c.ScanFile(path)
		}
		return nil
	})
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	c.UpdateFile(path, content)
	return nil
}

func (c *Codebase) UpdateFile(path string, content []byte) {
	tree := parser.Parse(content, filepath.Base(path))
	info := pddl.InfoFromTree(tree)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = &FileInfo{
		Path:    path,
		Content: content,
		Tree:    tree,
		Info:    info,
	}
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// FindDomain returns the info of the domain file declaring the given name,
// if any file in the workspace does.
func (c *Codebase) FindDomain(name string) *pddl.DomainInfo {
	if name == "" {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, f := range c.files {
		if f.Info != nil && f.Info.DomainRef == "" && f.Info.Name == name {
			return f.Info
		}
	}
	return nil
}

// domainFor resolves the declarations visible from a file: a domain file sees
// its own, a problem file sees the domain it names.
func (c *Codebase) domainFor(f *FileInfo) *pddl.DomainInfo {
	if f.Info == nil {
		return nil
	}
	if f.Info.DomainRef != "" {
		if domain := c.FindDomain(f.Info.DomainRef); domain != nil {
			return domain
		}
	}
	return f.Info
}

// CompletionsAt computes the completion items for a byte offset into the
// file's last known content.
func (c *Codebase) CompletionsAt(ctx context.Context, path string, offset int, kind completion.TriggerKind, triggerCharacter string) []completion.Item {
	f := c.GetFile(path)
	if f == nil {
		return nil
	}
	return c.engine.Complete(ctx, completion.Request{
		Tree:             f.Tree,
		Offset:           offset,
		TriggerKind:      kind,
		TriggerCharacter: triggerCharacter,
		Domain:           c.domainFor(f),
	})
}
