package session

import (
	"errors"
	"fmt"

	"github.com/vvka-141/vdir/internal/command"
	"github.com/vvka-141/vdir/internal/render"
	"github.com/vvka-141/vdir/internal/resolver"
	"github.com/vvka-141/vdir/internal/tree"
)

const noSubdirectories = "No subdirectories"

// Session is one interpreter state: a directory tree and the active path.
type Session struct {
	tree *tree.Tree
	path tree.Path
}

// New starts a session at the root of an empty tree.
func New() *Session {
	return &Session{tree: tree.New()}
}

// Tree returns the session's directory tree.
func (s *Session) Tree() *tree.Tree {
	return s.tree
}

// Path returns a copy of the active path.
func (s *Session) Path() tree.Path {
	return s.path.Clone()
}

// ExecuteLine parses and executes one script line. A parse failure yields
// a single diagnostic line and a *command.ParseError.
func (s *Session) ExecuteLine(line string) ([]string, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		return []string{err.Error()}, err
	}
	return s.Execute(cmd)
}

// Execute runs cmd and returns its output block, echo first.
// If the command could not be applied, the returned error is the tree state
// error whose message is already the last line of the block.
func (s *Session) Execute(cmd command.Command) ([]string, error) {
	out := []string{cmd.Echo()}

	var (
		lines []string
		err   error
	)
	switch cmd.Action {
	case command.ActionDir:
		lines, err = s.dir()
	case command.ActionMkdir:
		err = s.mkdir(cmd.Source)
	case command.ActionCd:
		err = s.cd(cmd.Source)
	case command.ActionUp:
		err = s.up()
	case command.ActionMv:
		err = s.mv(cmd.Source, cmd.Segments())
	case command.ActionTree:
		lines, err = s.drawTree()
	default:
		err = fmt.Errorf("unsupported action %q", cmd.Action)
	}

	out = append(out, lines...)
	if err != nil {
		out = append(out, err.Error())
	}
	return out, err
}

func (s *Session) active() (tree.Location, error) {
	loc, ok := s.tree.Resolve(s.path)
	if !ok {
		return tree.Location{}, errors.New("current path no longer resolves: " + s.path.String())
	}
	return loc, nil
}

func (s *Session) dir() ([]string, error) {
	loc, err := s.active()
	if err != nil {
		return nil, err
	}
	lines := []string{fmt.Sprintf("Directory of %s:", loc.Path)}
	if rows := render.Listing(loc.Node); len(rows) > 0 {
		return append(lines, rows...), nil
	}
	return append(lines, noSubdirectories), nil
}

func (s *Session) mkdir(name string) error {
	loc, err := s.active()
	if err != nil {
		return err
	}
	if !loc.Node.Insert(name, nil) {
		return tree.ErrExists
	}
	return nil
}

func (s *Session) cd(name string) error {
	loc, err := s.active()
	if err != nil {
		return err
	}
	if !loc.Node.Has(name) {
		return tree.ErrNotExist
	}
	s.path = s.path.Push(name)
	return nil
}

func (s *Session) up() error {
	parent, ok := s.path.Pop()
	if !ok {
		return tree.ErrAtRoot
	}
	s.path = parent
	return nil
}

func (s *Session) mv(source string, segments []string) error {
	loc, err := s.active()
	if err != nil {
		return err
	}
	if !loc.Node.Has(source) {
		return tree.ErrNotExist
	}

	target, err := resolver.Resolve(s.tree, s.path, source, segments)
	if err != nil {
		return err
	}

	// The target path never runs through source, so it still resolves
	// after the detach.
	dest, ok := s.tree.Resolve(target.Parent)
	if !ok {
		return tree.ErrNotExist
	}
	subtree, _ := loc.Node.Remove(source)
	if !dest.Node.Insert(target.Key, subtree) {
		loc.Node.Insert(source, subtree)
		return tree.ErrExists
	}
	return nil
}

func (s *Session) drawTree() ([]string, error) {
	loc, err := s.active()
	if err != nil {
		return nil, err
	}
	lines := []string{fmt.Sprintf("Tree of %s:", loc.Path), "."}
	return append(lines, render.Tree(loc.Node)...), nil
}
