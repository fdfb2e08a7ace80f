// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// mkapi reads the //sys lines of its input files and writes the
// entry point table and DriverManager methods for them.
//
//	go run mkapi.go -output zapi.go api.go
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"regexp"
	"strings"
)

var output = flag.String("output", "", "output file name (standard output if omitted)")

var sysRE = regexp.MustCompile(`^//sys\s+(\w+)\((.*)\)\s*\(ret SQLRETURN\)\s*$`)

type param struct {
	name, typ string
}

type fn struct {
	name   string
	params []param
}

func parse(line string) (*fn, error) {
	m := sysRE.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("could not parse %q", line)
	}
	f := &fn{name: m[1]}
	if strings.TrimSpace(m[2]) == "" {
		return f, nil
	}
	for _, p := range strings.Split(m[2], ",") {
		a := strings.Fields(p)
		if len(a) != 2 {
			return nil, fmt.Errorf("could not parse parameter %q of %s", p, f.name)
		}
		f.params = append(f.params, param{name: a[0], typ: a[1]})
	}
	return f, nil
}

func readFuncs(files []string) ([]*fn, error) {
	var funcs []*fn
	seen := make(map[string]bool)
	for _, file := range files {
		r, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		s := bufio.NewScanner(r)
		for s.Scan() {
			line := strings.TrimSpace(s.Text())
			if !strings.HasPrefix(line, "//sys") {
				continue
			}
			f, err := parse(line)
			if err != nil {
				r.Close()
				return nil, err
			}
			if seen[f.name] {
				r.Close()
				return nil, fmt.Errorf("%s declared twice", f.name)
			}
			seen[f.name] = true
			funcs = append(funcs, f)
		}
		r.Close()
		if err := s.Err(); err != nil {
			return nil, err
		}
	}
	return funcs, nil
}

func generate(funcs []*fn) []byte {
	var b bytes.Buffer
	b.WriteString("// Code generated by 'go generate'; DO NOT EDIT.\n\npackage api\n\nimport \"unsafe\"\n\nvar _ unsafe.Pointer\n\nconst (\n")
	for i, f := range funcs {
		if i == 0 {
			fmt.Fprintf(&b, "\tproc%s procID = iota\n", f.name)
		} else {
			fmt.Fprintf(&b, "\tproc%s\n", f.name)
		}
	}
	b.WriteString("\tprocCount\n)\n\nvar prototypes = [procCount]prototype{\n")
	for _, f := range funcs {
		types := make([]string, len(f.params))
		for i, p := range f.params {
			types[i] = fmt.Sprintf("%q", p.typ)
		}
		fmt.Fprintf(&b, "\tproc%s: {%q, []string{%s}},\n", f.name, f.name, strings.Join(types, ", "))
	}
	b.WriteString("}\n")
	for _, f := range funcs {
		decl := make([]string, len(f.params))
		args := ""
		for i, p := range f.params {
			decl[i] = p.name + " " + p.typ
			if strings.HasPrefix(p.typ, "*") {
				args += ", uintptr(unsafe.Pointer(" + p.name + "))"
			} else {
				args += ", uintptr(" + p.name + ")"
			}
		}
		fmt.Fprintf(&b, "\nfunc (m *DriverManager) %s(%s) (ret SQLRETURN, err error) {\n\treturn m.call(proc%s%s)\n}\n",
			f.name, strings.Join(decl, ", "), f.name, args)
	}
	return b.Bytes()
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatal("no input files")
	}
	funcs, err := readFuncs(flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	src, err := format.Source(generate(funcs))
	if err != nil {
		log.Fatal(err)
	}
	if *output == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*output, src, 0644); err != nil {
		log.Fatal(err)
	}
}
