package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/prilive-com/tgwire/wire"
)

// Suite is a named list of fixture cases, usually kept next to the
// fixtures it points at.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`

	dir string // fixture paths are relative to the suite file
}

// Case is one fixture and what decoding it must produce.
type Case struct {
	Name    string `yaml:"name"`
	Target  string `yaml:"target"`
	File    string `yaml:"file,omitempty"`
	Payload string `yaml:"payload,omitempty"`
	Expect  Expect `yaml:"expect"`
}

// Expect lists the checks for a case. Empty fields are not checked; a
// case with an Error expects decoding to fail with that kind.
type Expect struct {
	Variants []string `yaml:"variants,omitempty"`
	Shapes   []string `yaml:"shapes,omitempty"`
	Exact    bool     `yaml:"exact,omitempty"`
	Error    string   `yaml:"error,omitempty"`
}

// LoadSuite reads and validates a suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

// Validate checks that every case can be run.
func (s *Suite) Validate() error {
	if len(s.Cases) == 0 {
		return errors.New("suite has no cases")
	}
	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if err := c.validate(); err != nil {
			return fmt.Errorf("case %d (%s): %w", i+1, c.Name, err)
		}
		if seen[c.Name] {
			return fmt.Errorf("case %d: duplicate name %q", i+1, c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

func (c Case) validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if _, err := lookupTarget(c.Target); err != nil {
		return err
	}
	if (c.File == "") == (c.Payload == "") {
		return errors.New("exactly one of file and payload is required")
	}
	if c.Expect.Error != "" {
		if _, ok := errorKinds[c.Expect.Error]; !ok {
			return fmt.Errorf("unknown error kind %q (known: %s)", c.Expect.Error, strings.Join(errorKindNames(), ", "))
		}
		if len(c.Expect.Variants) > 0 || len(c.Expect.Shapes) > 0 || c.Expect.Exact {
			return errors.New("an expected error excludes variants, shapes and exact")
		}
	}
	return nil
}

// CaseResult is the outcome of one case.
type CaseResult struct {
	Name     string   `wire:"name"`
	Target   string   `wire:"target"`
	Passed   bool     `wire:"passed"`
	Variants []string `wire:"variants,omitempty"`
	Shapes   []string `wire:"shapes,omitempty"`
	Error    string   `wire:"error,omitempty"`
	Failure  string   `wire:"failure,omitempty"`
	Duration string   `wire:"duration"`
}

// Run decodes every case and collects the results into a report.
func (s *Suite) Run() *Report {
	r := NewReport(s.Name)
	for _, c := range s.Cases {
		r.Add(s.run(c))
	}
	r.Finalize()
	return r
}

func (s *Suite) run(c Case) CaseResult {
	start := time.Now()
	res := CaseResult{Name: c.Name, Target: c.Target}
	res.Failure = s.check(c, &res)
	res.Passed = res.Failure == ""
	res.Duration = time.Since(start).String()
	return res
}

// check runs c and returns why it failed, or "" when it passed.
func (s *Suite) check(c Case, res *CaseResult) string {
	data := []byte(c.Payload)
	if c.File != "" {
		var err error
		if data, err = os.ReadFile(filepath.Join(s.dir, c.File)); err != nil {
			return err.Error()
		}
	}
	tgt, err := lookupTarget(c.Target)
	if err != nil {
		return err.Error()
	}

	in, err := wire.Parse(data)
	var d decoded
	if err == nil {
		d, err = tgt.decode(in)
	}
	if err != nil {
		res.Error = err.Error()
		switch {
		case c.Expect.Error == "":
			return "unexpected error: " + err.Error()
		case !errorKinds[c.Expect.Error](err):
			return fmt.Sprintf("expected %s, got %s", c.Expect.Error, describeKind(err))
		}
		return ""
	}

	res.Variants = d.Variants
	res.Shapes = d.Shapes
	switch e := c.Expect; {
	case e.Error != "":
		return fmt.Sprintf("expected %s, decoded %s", e.Error, strings.Join(d.Variants, ", "))
	case len(e.Variants) > 0 && !slices.Equal(e.Variants, d.Variants):
		return fmt.Sprintf("variants: expected [%s], got [%s]", strings.Join(e.Variants, ", "), strings.Join(d.Variants, ", "))
	case len(e.Shapes) > 0 && !slices.Equal(e.Shapes, d.Shapes):
		return fmt.Sprintf("shapes: expected [%s], got [%s]", strings.Join(e.Shapes, ", "), strings.Join(d.Shapes, ", "))
	case e.Exact && !d.Exact(in):
		return "round trip differs: " + d.Encoded.String()
	}
	return ""
}

func describeKind(err error) string {
	if kind := errorKind(err); kind != "" {
		return kind
	}
	return "unclassified error"
}
