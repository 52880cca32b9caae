// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package pt

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/go-air/pdr/inter"
	"github.com/go-air/pdr/logic"
	"github.com/go-air/pdr/z"
)

// File is the YAML form of a problem.  Formulas are s-expressions in
// which ?i denotes rule variable i or, in frames and cores, argument i of
// the predicate.
type File struct {
	Predicates []PredicateSpec `yaml:"predicates"`
	Constants  []ConstantSpec  `yaml:"constants,omitempty"`
	Rules      []RuleSpec      `yaml:"rules"`
	Frames     []FrameSpec     `yaml:"frames,omitempty"`
	Obligation ObligationSpec  `yaml:"obligation"`
}

type PredicateSpec struct {
	Name string   `yaml:"name"`
	Args []string `yaml:"args"`
}

type ConstantSpec struct {
	Name string `yaml:"name"`
	Sort string `yaml:"sort"`
}

type RuleSpec struct {
	Vars       []string `yaml:"vars,omitempty"`
	Head       string   `yaml:"head"`
	Tail       []string `yaml:"tail,omitempty"`
	Constraint []string `yaml:"constraint,omitempty"`
}

// FrameSpec lists lemmas of a frame.  A nil Level denotes invariants.
type FrameSpec struct {
	Predicate string   `yaml:"predicate"`
	Level     *int     `yaml:"level,omitempty"`
	Lemmas    []string `yaml:"lemmas"`
}

type ObligationSpec struct {
	Predicate string     `yaml:"predicate"`
	Level     int        `yaml:"level"`
	Core      []string   `yaml:"core"`
	Parents   []NodeSpec `yaml:"parents,omitempty"`
}

// NodeSpec is an ancestor obligation, nearest first in
// ObligationSpec.Parents.
type NodeSpec struct {
	Predicate string `yaml:"predicate"`
	Level     int    `yaml:"level"`
}

// Problem is a loaded problem: a system and a proof obligation with the
// core blocking it.
type Problem struct {
	C      *logic.C
	System *System
	Node   *Node
	Core   []z.Term
}

// Load reads the problem file at path.
func Load(path string, newChecker func(*logic.C) inter.Checker, log logrus.FieldLogger) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening problem %s", path)
	}
	defer f.Close()
	p, err := Decode(f, newChecker, log)
	if err != nil {
		return nil, errors.Wrapf(err, "problem %s", path)
	}
	return p, nil
}

// Decode reads a problem from r.  Checkers for the system are created by
// newChecker over the problem's term arena.
func Decode(r io.Reader, newChecker func(*logic.C) inter.Checker, log logrus.FieldLogger) (*Problem, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decoding problem")
	}
	return f.Build(newChecker, log)
}

func sorts(names []string) ([]z.Sort, error) {
	res := make([]z.Sort, len(names))
	for i, n := range names {
		res[i] = z.ParseSort(n)
		if res[i] == z.SortNone {
			return nil, errors.Errorf("unknown sort %q", n)
		}
	}
	return res, nil
}

// Build creates the problem described by f.
func (f *File) Build(newChecker func(*logic.C) inter.Checker, log logrus.FieldLogger) (*Problem, error) {
	c := logic.NewC()
	s := NewSystem(c, func() inter.Checker { return newChecker(c) }, log)
	for _, p := range f.Predicates {
		dom, err := sorts(p.Args)
		if err != nil {
			return nil, errors.Wrapf(err, "predicate %s", p.Name)
		}
		if _, ok := c.LookupDecl(p.Name); ok {
			return nil, errors.Errorf("predicate %s declared twice", p.Name)
		}
		s.Add(c.Declare(p.Name, z.SortBool, dom...))
	}
	for _, k := range f.Constants {
		srt := z.ParseSort(k.Sort)
		if srt == z.SortNone {
			return nil, errors.Errorf("constant %s: unknown sort %q", k.Name, k.Sort)
		}
		if _, ok := c.LookupDecl(k.Name); ok {
			return nil, errors.Errorf("constant %s declared twice", k.Name)
		}
		c.Const(k.Name, srt)
	}
	for i, rs := range f.Rules {
		r, err := rs.build(c)
		if err != nil {
			return nil, errors.Wrapf(err, "rule %d", i)
		}
		if err := s.AddRule(r); err != nil {
			return nil, err
		}
	}
	for _, fs := range f.Frames {
		t, err := lookup(s, fs.Predicate)
		if err != nil {
			return nil, errors.Wrap(err, "frame")
		}
		level := Infinity
		if fs.Level != nil {
			level = *fs.Level
		}
		for _, l := range fs.Lemmas {
			m, err := t.parse(l)
			if err != nil {
				return nil, errors.Wrapf(err, "frame %s", fs.Predicate)
			}
			t.AddLemma(level, m)
		}
	}
	ob := &f.Obligation
	var parent *Node
	for i := len(ob.Parents) - 1; i >= 0; i-- {
		ps := ob.Parents[i]
		t, err := lookup(s, ps.Predicate)
		if err != nil {
			return nil, errors.Wrap(err, "obligation parent")
		}
		parent = NewNode(t, ps.Level, parent)
	}
	t, err := lookup(s, ob.Predicate)
	if err != nil {
		return nil, errors.Wrap(err, "obligation")
	}
	p := &Problem{C: c, System: s, Node: NewNode(t, ob.Level, parent)}
	for _, l := range ob.Core {
		m, err := t.parse(l)
		if err != nil {
			return nil, errors.Wrap(err, "obligation core")
		}
		p.Core = append(p.Core, m)
	}
	if len(p.Core) == 0 {
		return nil, errors.New("obligation has an empty core")
	}
	return p, nil
}

func lookup(s *System, name string) (*Transformer, error) {
	d, ok := s.c.LookupDecl(name)
	if !ok {
		return nil, errors.Errorf("unknown predicate %q", name)
	}
	t, ok := s.Lookup(d)
	if !ok {
		return nil, errors.Errorf("%q is not a predicate", name)
	}
	return t, nil
}

// parse parses a formula over the arguments of t as ?i and returns it
// over the signature of t.
func (t *Transformer) parse(src string) (z.Term, error) {
	c := t.s.c
	m, err := c.Parse(src, c.DeclDomain(t.head)...)
	if err != nil {
		return z.TermNull, err
	}
	if c.Sort(m) != z.SortBool {
		return z.TermNull, errors.Errorf("%s is not a formula", src)
	}
	return c.Subst(m, t.sigs), nil
}

func (rs *RuleSpec) build(c *logic.C) (*inter.Rule, error) {
	vs, err := sorts(rs.Vars)
	if err != nil {
		return nil, err
	}
	head, err := c.Parse(rs.Head, vs...)
	if err != nil {
		return nil, errors.Wrap(err, "head")
	}
	if c.Decl(head) == z.DeclNull || c.Sort(head) != z.SortBool {
		return nil, errors.Errorf("head %s is not a predicate application", rs.Head)
	}
	r := &inter.Rule{Head: head, Uninterp: len(rs.Tail)}
	for _, src := range rs.Tail {
		a, err := c.Parse(src, vs...)
		if err != nil {
			return nil, errors.Wrap(err, "tail")
		}
		if c.Decl(a) == z.DeclNull {
			return nil, errors.Errorf("tail %s is not a predicate application", src)
		}
		r.Tail = append(r.Tail, a)
	}
	for _, src := range rs.Constraint {
		a, err := c.Parse(src, vs...)
		if err != nil {
			return nil, errors.Wrap(err, "constraint")
		}
		r.Tail = append(r.Tail, a)
	}
	return r, nil
}
