package codebase

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/pddls/pddls/pddl/completion"
	"github.com/pddls/pddls/pddl/parser"
)

const lsName = "pddls"

var log = commonlog.GetLogger("pddls.lsp")

type LSPServer struct {
	codebase *Codebase
	watcher  *FileWatcher
	handler  protocol.Handler
	server   *server.Server
	version  string

	// ctx is cancelled on shutdown so in-flight completion work stops with
	// the server.
	ctx    context.Context
	cancel context.CancelFunc
}

func NewLSPServer(version string) *LSPServer {
	ctx, cancel := context.WithCancel(context.Background())
	ls := &LSPServer{
		version: version,
		ctx:     ctx,
		cancel:  cancel,
	}

	ls.handler = protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentDidSave:    ls.textDocumentDidSave,
		TextDocumentCompletion: ls.textDocumentCompletion,
		TextDocumentHover:      ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.codebase = New(rootDir)
	ls.watcher = NewFileWatcher(ls.codebase)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	triggerChars := []string{"(", ":", "?", "-"}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: triggerChars,
	}
	capabilities.HoverProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if err := ls.codebase.ScanAll(); err != nil {
		log.Errorf("workspace scan %s: %v", ls.codebase.RootDir(), err)
	}
	ls.watcher.Start()
	log.Infof("workspace scanned: %s", ls.codebase.RootDir())
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	ls.cancel()
	if ls.watcher != nil {
		ls.watcher.Stop()
	}
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.codebase.UpdateFile(path, []byte(params.TextDocument.Text))
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.codebase.UpdateFile(path, []byte(textChange.Text))
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.codebase.UpdateFile(path, []byte(*params.Text))
	} else {
		ls.codebase.ScanFile(path)
	}
	return nil
}

func (ls *LSPServer) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (result any, err error) {
	// A panic in completion must never take the server down with it.
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("completion panic: %v", r)
			result = []protocol.CompletionItem{}
			err = nil
		}
	}()

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	file := ls.codebase.GetFile(path)
	if file == nil {
		return nil, nil
	}

	offset := parser.OffsetForPosition(file.Content, int(params.Position.Line), int(params.Position.Character))

	kind := completion.TriggerInvoked
	triggerCharacter := ""
	if params.Context != nil {
		kind = completion.TriggerKind(params.Context.TriggerKind)
		if params.Context.TriggerCharacter != nil {
			triggerCharacter = *params.Context.TriggerCharacter
		}
	}

	items := ls.codebase.CompletionsAt(ls.ctx, path, offset, kind, triggerCharacter)

	protocolItems := make([]protocol.CompletionItem, 0, len(items))
	for _, item := range items {
		protocolItems = append(protocolItems, toProtocolItem(item, file.Content))
	}
	return protocolItems, nil
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (result *protocol.Hover, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("hover panic: %v", r)
			result = nil
			err = nil
		}
	}()

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	file := ls.codebase.GetFile(path)
	if file == nil || file.Tree == nil {
		return nil, nil
	}

	offset := parser.OffsetForPosition(file.Content, int(params.Position.Line), int(params.Position.Character))
	node := file.Tree.NodeAt(offset)
	if node == nil {
		return nil, nil
	}

	label := ""
	switch node.Kind {
	case parser.TokenKeyword:
		label = node.Text()
	case parser.TokenOpenBracketOperator:
		label = node.SectionName()
	default:
		if parent := node.Parent; parent != nil && parent.Kind == parser.TokenOpenBracketOperator {
			label = parent.SectionName()
		}
	}
	if label == "" {
		return nil, nil
	}

	detail, doc, ok := ls.codebase.Engine().Doc(label)
	if !ok || doc == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: "**" + detail + "**\n\n" + doc,
		},
	}, nil
}

func toProtocolItem(item completion.Item, content []byte) protocol.CompletionItem {
	kind := toProtocolKind(item.Kind)
	detail := item.Detail
	insertText := item.InsertText
	filterText := item.FilterText
	sortText := item.SortText

	format := protocol.InsertTextFormatPlainText
	if item.Snippet {
		format = protocol.InsertTextFormatSnippet
	}

	out := protocol.CompletionItem{
		Label:            item.Label,
		Kind:             &kind,
		Detail:           &detail,
		InsertText:       &insertText,
		InsertTextFormat: &format,
		FilterText:       &filterText,
		SortText:         &sortText,
	}
	if item.Documentation != "" {
		out.Documentation = protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: item.Documentation,
		}
	}
	if item.Replace != nil {
		startLine, startChar := parser.PositionForOffset(content, item.Replace.Start)
		endLine, endChar := parser.PositionForOffset(content, item.Replace.End)
		out.TextEdit = &protocol.TextEdit{
			Range: protocol.Range{
				Start: protocol.Position{Line: protocol.UInteger(startLine), Character: protocol.UInteger(startChar)},
				End:   protocol.Position{Line: protocol.UInteger(endLine), Character: protocol.UInteger(endChar)},
			},
			NewText: item.InsertText,
		}
	}
	return out
}

func toProtocolKind(kind completion.ItemKind) protocol.CompletionItemKind {
	switch kind {
	case completion.ItemSection:
		return protocol.CompletionItemKindKeyword
	case completion.ItemStructure:
		return protocol.CompletionItemKindSnippet
	case completion.ItemRequirement:
		return protocol.CompletionItemKindEnumMember
	case completion.ItemOperator:
		return protocol.CompletionItemKindOperator
	case completion.ItemTimeQualifier:
		return protocol.CompletionItemKindKeyword
	case completion.ItemVariable:
		return protocol.CompletionItemKindVariable
	case completion.ItemTypeName:
		return protocol.CompletionItemKindClass
	case completion.ItemPredicate:
		return protocol.CompletionItemKindFunction
	case completion.ItemFunction:
		return protocol.CompletionItemKindFunction
	default:
		return protocol.CompletionItemKindText
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
