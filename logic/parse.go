// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/go-air/pdr/z"
)

// Parse reads a single term from the s-expression s.  Symbols must be
// declared in c.  A free variable ?i has sort vars[i].
//
// The accepted syntax is the one produced by String: true, false,
// numerals (3, 2.5, 3.0, (/ 1 2)), constants, ?i, (p args...) for declared
// predicates, not, and, or, =>, =, <=, >=, <, >, +, -, *, mod, and
// (exists (Sort...) body), (forall (Sort...) body).
func (c *C) Parse(s string, vars ...z.Sort) (z.Term, error) {
	toks := tokenize(s)
	p := &parser{c: c, toks: toks, scopes: [][]z.Sort{vars}}
	t, err := p.term()
	if err != nil {
		return z.TermNull, errors.Wrapf(err, "parse %q", s)
	}
	if p.pos != len(p.toks) {
		return z.TermNull, errors.Errorf("parse %q: trailing input at %q", s, p.toks[p.pos])
	}
	return t, nil
}

// MustParse is like Parse but panics on error.
func (c *C) MustParse(s string, vars ...z.Sort) z.Term {
	t, err := c.Parse(s, vars...)
	if err != nil {
		panic(err)
	}
	return t
}

func tokenize(s string) []string {
	var toks []string
	i := 0
	for i < len(s) {
		r := rune(s[i])
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(' || r == ')':
			toks = append(toks, s[i:i+1])
			i++
		default:
			j := i
			for j < len(s) && s[j] != '(' && s[j] != ')' && !unicode.IsSpace(rune(s[j])) {
				j++
			}
			toks = append(toks, s[i:j])
			i = j
		}
	}
	return toks
}

type parser struct {
	c      *C
	toks   []string
	pos    int
	scopes [][]z.Sort // innermost last, free variables first
}

func (p *parser) next() (string, error) {
	if p.pos >= len(p.toks) {
		return "", errors.New("unexpected end of input")
	}
	t := p.toks[p.pos]
	p.pos++
	return t, nil
}

func (p *parser) expect(tok string) error {
	t, err := p.next()
	if err != nil {
		return err
	}
	if t != tok {
		return errors.Errorf("expected %q, got %q", tok, t)
	}
	return nil
}

func (p *parser) term() (z.Term, error) {
	tok, err := p.next()
	if err != nil {
		return z.TermNull, err
	}
	switch tok {
	case ")":
		return z.TermNull, errors.New("unexpected )")
	case "(":
		return p.compound()
	}
	return p.atom(tok)
}

func (p *parser) atom(tok string) (z.Term, error) {
	c := p.c
	switch {
	case tok == "true":
		return c.T, nil
	case tok == "false":
		return c.F, nil
	case tok[0] == '?':
		i, err := strconv.Atoi(tok[1:])
		if err != nil || i < 0 {
			return z.TermNull, errors.Errorf("bad variable %q", tok)
		}
		s, ok := p.varSort(i)
		if !ok {
			return z.TermNull, errors.Errorf("unbound variable %q", tok)
		}
		return c.Var(i, s), nil
	case tok[0] == '-' || unicode.IsDigit(rune(tok[0])):
		r, ok := new(big.Rat).SetString(tok)
		if !ok {
			return z.TermNull, errors.Errorf("bad numeral %q", tok)
		}
		s := z.SortInt
		if strings.Contains(tok, ".") {
			s = z.SortReal
		}
		return c.Num(r, s), nil
	}
	d, ok := c.LookupDecl(tok)
	if !ok {
		return z.TermNull, errors.Errorf("undeclared symbol %q", tok)
	}
	if len(c.DeclDomain(d)) != 0 {
		return z.TermNull, errors.Errorf("%q used as a constant", tok)
	}
	return c.App(d), nil
}

func (p *parser) varSort(i int) (z.Sort, bool) {
	for k := len(p.scopes) - 1; k >= 0; k-- {
		sc := p.scopes[k]
		if i < len(sc) {
			return sc[i], sc[i] != z.SortNone
		}
		i -= len(sc)
	}
	return z.SortNone, false
}

func (p *parser) args() ([]z.Term, error) {
	var res []z.Term
	for p.pos < len(p.toks) && p.toks[p.pos] != ")" {
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, p.expect(")")
}

func (p *parser) compound() (z.Term, error) {
	c := p.c
	head, err := p.next()
	if err != nil {
		return z.TermNull, err
	}
	if head == "exists" || head == "forall" {
		return p.quant(head)
	}
	args, err := p.args()
	if err != nil {
		return z.TermNull, err
	}
	arity := func(lo, hi int) error {
		if len(args) < lo || (hi >= 0 && len(args) > hi) {
			return errors.Errorf("%s: wrong number of arguments %d", head, len(args))
		}
		return nil
	}
	sorted := func(want func(z.Sort) bool, what string) error {
		for _, a := range args {
			if !want(c.Sort(a)) {
				return errors.Errorf("%s: argument %s is not %s", head, c.String(a), what)
			}
		}
		return nil
	}
	isBool := func(s z.Sort) bool { return s == z.SortBool }
	isArith := z.Sort.IsArith
	switch head {
	case "not":
		if err := firstErr(arity(1, 1), sorted(isBool, "Bool")); err != nil {
			return z.TermNull, err
		}
		return c.Not(args[0]), nil
	case "and", "or":
		if err := sorted(isBool, "Bool"); err != nil {
			return z.TermNull, err
		}
		if head == "and" {
			return c.Ands(args...), nil
		}
		return c.Ors(args...), nil
	case "=>":
		if err := firstErr(arity(2, 2), sorted(isBool, "Bool")); err != nil {
			return z.TermNull, err
		}
		return c.Implies(args[0], args[1]), nil
	case "=":
		if err := arity(2, 2); err != nil {
			return z.TermNull, err
		}
		sa, sb := c.Sort(args[0]), c.Sort(args[1])
		if sa != sb && !(sa.IsArith() && sb.IsArith()) {
			return z.TermNull, errors.Errorf("=: sort mismatch %s %s", sa, sb)
		}
		return c.Eq(args[0], args[1]), nil
	case "<=", ">=", "<", ">":
		if err := firstErr(arity(2, 2), sorted(isArith, "arithmetic")); err != nil {
			return z.TermNull, err
		}
		op := map[string]z.Op{"<=": z.OpLe, ">=": z.OpGe, "<": z.OpLt, ">": z.OpGt}[head]
		return c.cmp(op, args[0], args[1]), nil
	case "+":
		if err := firstErr(arity(1, -1), sorted(isArith, "arithmetic")); err != nil {
			return z.TermNull, err
		}
		return c.Add(args...), nil
	case "-":
		if err := firstErr(arity(1, -1), sorted(isArith, "arithmetic")); err != nil {
			return z.TermNull, err
		}
		if len(args) == 1 {
			return c.Neg(args[0]), nil
		}
		res := args[0]
		for _, a := range args[1:] {
			res = c.Sub(res, a)
		}
		return res, nil
	case "*":
		if err := firstErr(arity(2, 2), sorted(isArith, "arithmetic")); err != nil {
			return z.TermNull, err
		}
		if k, ok := c.IsNum(args[0]); ok {
			return c.Mul(k, args[1]), nil
		}
		if k, ok := c.IsNum(args[1]); ok {
			return c.Mul(k, args[0]), nil
		}
		return z.TermNull, errors.New("*: non linear multiplication")
	case "/":
		if err := arity(2, 2); err != nil {
			return z.TermNull, err
		}
		a, oka := c.IsNum(args[0])
		b, okb := c.IsNum(args[1])
		if !oka || !okb || b.Sign() == 0 {
			return z.TermNull, errors.New("/: only numeral division is supported")
		}
		return c.Num(a.Quo(a, b), z.SortReal), nil
	case "mod":
		if err := firstErr(arity(2, 2), sorted(func(s z.Sort) bool { return s == z.SortInt }, "Int")); err != nil {
			return z.TermNull, err
		}
		return c.Mod(args[0], args[1]), nil
	}
	d, ok := c.LookupDecl(head)
	if !ok {
		return z.TermNull, errors.Errorf("undeclared symbol %q", head)
	}
	dom := c.DeclDomain(d)
	if len(dom) != len(args) {
		return z.TermNull, errors.Errorf("%s expects %d arguments, got %d", head, len(dom), len(args))
	}
	for i, a := range args {
		if s := c.Sort(a); s != dom[i] && !(s.IsArith() && dom[i].IsArith()) {
			return z.TermNull, errors.Errorf("%s: argument %d has sort %s, want %s", head, i, s, dom[i])
		}
	}
	return c.App(d, args...), nil
}

func (p *parser) quant(head string) (z.Term, error) {
	if err := p.expect("("); err != nil {
		return z.TermNull, err
	}
	var sorts []z.Sort
	for {
		tok, err := p.next()
		if err != nil {
			return z.TermNull, err
		}
		if tok == ")" {
			break
		}
		s := z.ParseSort(tok)
		if s == z.SortNone {
			return z.TermNull, errors.Errorf("%s: unknown sort %q", head, tok)
		}
		sorts = append(sorts, s)
	}
	p.scopes = append(p.scopes, sorts)
	body, err := p.term()
	p.scopes = p.scopes[:len(p.scopes)-1]
	if err != nil {
		return z.TermNull, err
	}
	if err := p.expect(")"); err != nil {
		return z.TermNull, err
	}
	if head == "exists" {
		return p.c.Exists(sorts, body), nil
	}
	return p.c.Forall(sorts, body), nil
}

func firstErr(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}
